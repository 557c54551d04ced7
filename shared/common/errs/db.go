package errs

import (
	"context"
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL error codes
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// HandleDBError แปลง error จาก database ให้เป็น AppError
func HandleDBError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return Wrap(ErrConflict, "duplicate value violates unique constraint "+pqErr.Constraint, err)
		case pgForeignKeyViolation:
			return Wrap(ErrDataIntegrity, "record is still referenced by "+pqErr.Constraint, err)
		case pgNotNullViolation, pgCheckViolation:
			return Wrap(ErrDataIntegrity, pqErr.Message, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(ErrDatabaseFailure, "database operation timed out", err)
	}

	return Wrap(ErrDatabaseFailure, err.Error(), err)
}

// IsUniqueViolation ใช้แยก unique constraint ที่ชนกันตามชื่อ constraint
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pgUniqueViolation && (constraint == "" || pqErr.Constraint == constraint)
}
