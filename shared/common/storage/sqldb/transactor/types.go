package transactor

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// DBTX คือ method ที่ใช้ร่วมกันได้ทั้ง *sqlx.DB และ *sqlx.Tx
type DBTX interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

type (
	sqlxDB interface {
		DBTX
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
	}

	sqlxTx interface {
		Commit() error
		Rollback() error
	}
)

var (
	_ sqlxDB = &sqlx.DB{}
	_ sqlxTx = &sqlx.Tx{}
)
