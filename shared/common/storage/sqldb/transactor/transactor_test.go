package transactor

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostCommitHooks(t *testing.T) {
	h := &postCommitHooks{}
	var calls []string
	h.register(func(ctx context.Context) error { calls = append(calls, "first"); return nil })
	h.register(func(ctx context.Context) error { calls = append(calls, "second"); return errors.New("second failed") })
	h.register(func(ctx context.Context) error { calls = append(calls, "third"); return nil })

	err := h.run(context.Background())

	assert.Equal(t, []string{"first", "second", "third"}, calls)
	assert.EqualError(t, err, "second failed")
}

func TestHooksFromContext(t *testing.T) {
	_, outermost := hooksFromContext(context.Background())
	assert.True(t, outermost)

	h := &postCommitHooks{}
	got, outermost := hooksFromContext(hooksToContext(context.Background(), h))
	assert.False(t, outermost)
	assert.Same(t, h, got)
}

// integration tests run only when DB_DSN points to a postgres database
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("DB_DSN not set; skipping DB integration test")
	}
	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	// temp table อยู่ได้เฉพาะ connection เดียว
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TEMP TABLE IF NOT EXISTS transactor_test (v int NOT NULL)`)
	require.NoError(t, err)
	return db
}

func countRows(t *testing.T, dbtx DBTX) int {
	t.Helper()
	var n int
	require.NoError(t, dbtx.GetContext(context.Background(), &n, `SELECT count(*) FROM transactor_test`))
	return n
}

func TestWithinTransaction_Integration(t *testing.T) {
	db := openTestDB(t)

	tx, dbCtx := New(db, WithNestedTransactionStrategy(NestedTransactionsSavepoints))
	ctx := context.Background()

	t.Run("error rolls back every statement", func(t *testing.T) {
		_, _ = db.Exec(`TRUNCATE transactor_test`)
		hookCalled := false

		err := tx.WithinTransaction(ctx, func(ctx context.Context, register func(PostCommitHook)) error {
			_, err := dbCtx(ctx).ExecContext(ctx, `INSERT INTO transactor_test (v) VALUES (1), (2)`)
			require.NoError(t, err)
			register(func(ctx context.Context) error { hookCalled = true; return nil })
			return errors.New("abort")
		})

		assert.EqualError(t, err, "abort")
		assert.False(t, hookCalled)
		assert.Equal(t, 0, countRows(t, db))
	})

	t.Run("commit runs hooks once", func(t *testing.T) {
		_, _ = db.Exec(`TRUNCATE transactor_test`)
		hookCalls := 0

		err := tx.WithinTransaction(ctx, func(ctx context.Context, register func(PostCommitHook)) error {
			assert.True(t, IsWithinTransaction(ctx))
			_, err := dbCtx(ctx).ExecContext(ctx, `INSERT INTO transactor_test (v) VALUES (1)`)
			if err != nil {
				return err
			}
			register(func(ctx context.Context) error { hookCalls++; return nil })

			// ชั้นในที่ error จะ rollback เฉพาะ savepoint ของตัวเอง
			innerErr := tx.WithinTransaction(ctx, func(ctx context.Context, register func(PostCommitHook)) error {
				_, err := dbCtx(ctx).ExecContext(ctx, `INSERT INTO transactor_test (v) VALUES (2)`)
				require.NoError(t, err)
				return errors.New("inner abort")
			})
			assert.EqualError(t, innerErr, "inner abort")
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, hookCalls)
		assert.Equal(t, 1, countRows(t, db))
	})
}
