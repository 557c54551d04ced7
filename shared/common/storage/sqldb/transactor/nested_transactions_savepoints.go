package transactor

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/jmoiron/sqlx"
)

// NestedTransactionsSavepoints transaction ซ้อนจะใช้ SAVEPOINT
// ชั้นในที่ error จะ rollback เฉพาะส่วนของตัวเอง
func NestedTransactionsSavepoints(db sqlxDB, tx *sqlx.Tx) (sqlxDB, sqlxTx) {
	switch typedDB := db.(type) {
	case *sqlx.DB:
		return &nestedTransactionSavepoints{Tx: tx}, tx

	case *nestedTransactionSavepoints:
		return typedDB, typedDB

	default:
		panic("unsupported type")
	}
}

type nestedTransactionSavepoints struct {
	*sqlx.Tx
	depth int64
}

func (t *nestedTransactionSavepoints) BeginTxx(ctx context.Context, _ *sql.TxOptions) (*sqlx.Tx, error) {
	depth := atomic.AddInt64(&t.depth, 1)
	_, err := t.ExecContext(ctx, "SAVEPOINT sp_"+strconv.FormatInt(depth, 10))
	return t.Tx, err
}

func (t *nestedTransactionSavepoints) Commit() error {
	depth := atomic.LoadInt64(&t.depth)
	if _, err := t.Exec("RELEASE SAVEPOINT sp_" + strconv.FormatInt(depth, 10)); err != nil {
		return fmt.Errorf("failed to release savepoint: %w", err)
	}
	atomic.AddInt64(&t.depth, -1)
	return nil
}

func (t *nestedTransactionSavepoints) Rollback() error {
	depth := atomic.LoadInt64(&t.depth)
	if _, err := t.Exec("ROLLBACK TO SAVEPOINT sp_" + strconv.FormatInt(depth, 10)); err != nil {
		return fmt.Errorf("failed to rollback to savepoint: %w", err)
	}
	atomic.AddInt64(&t.depth, -1)
	return nil
}
