// Package sqldbtest เปิดฐานข้อมูลจริงสำหรับ integration test จะ skip เมื่อไม่ได้ตั้ง DB_DSN
package sqldbtest

import (
	"context"
	"os"
	"testing"

	"go-cartmaster/migrations"
	"go-cartmaster/shared/common/storage/sqldb/transactor"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

const lockKey = 72_410_001

// Open สร้าง schema ถ้ายังไม่มีและล้างข้อมูลทุกตารางก่อนคืน
func Open(t *testing.T) (*sqlx.DB, transactor.Transactor, transactor.DBTXContext) {
	t.Helper()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("DB_DSN not set; skipping DB integration test")
	}

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()

	// go test รันหลาย package พร้อมกัน ใช้ advisory lock ให้ test ที่ใช้ฐานข้อมูลรันทีละตัว
	lockConn, err := db.Connx(ctx)
	require.NoError(t, err)
	_, err = lockConn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, lockKey)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = lockConn.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, lockKey)
		lockConn.Close()
	})

	require.NoError(t, migrations.Up(ctx, db))
	_, err = db.ExecContext(ctx, `TRUNCATE card.cards, customer.customers, auth.administrators`)
	require.NoError(t, err)

	tx, dbCtx := transactor.New(db, transactor.WithNestedTransactionStrategy(transactor.NestedTransactionsSavepoints))
	return db, tx, dbCtx
}
