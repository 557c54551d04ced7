package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type closeDB func() error

type DBContext interface {
	DB() *sqlx.DB
}

type dbContext struct {
	db *sqlx.DB
}

var _ DBContext = (*dbContext)(nil)

// Options ค่าของ connection pool
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func NewDBContext(dsn string, opts ...Options) (DBContext, closeDB, error) {
	// ตรวจสอบ dsn แล้วเชื่อมต่อ database พร้อม ping
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect database: %w", err)
	}

	for _, o := range opts {
		if o.MaxOpenConns > 0 {
			db.SetMaxOpenConns(o.MaxOpenConns)
		}
		if o.MaxIdleConns > 0 {
			db.SetMaxIdleConns(o.MaxIdleConns)
		}
		if o.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(o.ConnMaxLifetime)
		}
	}

	return &dbContext{db: db},
		func() error {
			return db.Close()
		},
		nil
}

func (c *dbContext) DB() *sqlx.DB {
	return c.db
}

// Ping ใช้ใน health check
func Ping(ctx context.Context, dbCtx DBContext) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return dbCtx.DB().PingContext(ctx)
}
