package transactor

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// NestedTransactionsNone transaction ซ้อนจะใช้ transaction เดิม
// commit/rollback ของชั้นในไม่มีผล ชั้นนอกสุดเป็นผู้ตัดสิน
func NestedTransactionsNone(db sqlxDB, tx *sqlx.Tx) (sqlxDB, sqlxTx) {
	switch typedDB := db.(type) {
	case *sqlx.DB:
		return &nestedTransactionNone{tx}, tx

	case *nestedTransactionNone:
		return typedDB, typedDB

	default:
		panic("unsupported type")
	}
}

type nestedTransactionNone struct {
	*sqlx.Tx
}

func (t *nestedTransactionNone) BeginTxx(_ context.Context, _ *sql.TxOptions) (*sqlx.Tx, error) {
	return t.Tx, nil
}

func (t *nestedTransactionNone) Commit() error {
	return nil
}

func (t *nestedTransactionNone) Rollback() error {
	return nil
}
