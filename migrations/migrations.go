// Package migrations ฝังไฟล์ schema ไว้ใน binary ใช้ตอน DB_AUTO_MIGRATE=true และใน integration test
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed *.sql
var files embed.FS

// Up รันไฟล์ *.up.sql ทั้งหมดตามลำดับชื่อไฟล์ ทุกไฟล์เขียนแบบ IF NOT EXISTS จึงรันซ้ำได้
func Up(ctx context.Context, db *sqlx.DB) error {
	return run(ctx, db, ".up.sql", false)
}

// Down ย้อน schema ทั้งหมด ใช้ใน test เท่านั้น
func Down(ctx context.Context, db *sqlx.DB) error {
	return run(ctx, db, ".down.sql", true)
}

func run(ctx context.Context, db *sqlx.DB, suffix string, reverse bool) error {
	names, err := fs.Glob(files, "*"+suffix)
	if err != nil {
		return err
	}
	sort.Strings(names)
	if reverse {
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
	}

	for _, name := range names {
		body, err := files.ReadFile(name)
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(body)) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return fmt.Errorf("migration %s failed: %w", name, err)
		}
	}
	return nil
}
