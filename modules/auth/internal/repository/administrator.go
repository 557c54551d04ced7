package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-cartmaster/modules/auth/internal/model"
	"go-cartmaster/shared/common/errs"
	"go-cartmaster/shared/common/storage/sqldb/transactor"

	"go.opentelemetry.io/otel/trace"
)

type AdministratorRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Administrator, error)
	CreateIfAbsent(ctx context.Context, admin *model.Administrator) (bool, error)
}

type administratorRepository struct {
	dbCtx transactor.DBTXContext
}

func NewAdministratorRepository(dbCtx transactor.DBTXContext) AdministratorRepository {
	return &administratorRepository{
		dbCtx: dbCtx,
	}
}

func (r *administratorRepository) FindByEmail(ctx context.Context, email string) (*model.Administrator, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:AdministratorRepository:FindByEmail")
	defer span.End()

	query := `
	SELECT *
	FROM auth.administrators
	WHERE email = $1
`
	// กำหนด timeout ของ query
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var admin model.Administrator
	err := r.dbCtx(ctx).QueryRowxContext(ctx, query, email).StructScan(&admin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding an administrator: %w", err))
	}
	return &admin, nil
}

// CreateIfAbsent คืน false เมื่อมีอีเมลนี้อยู่แล้ว ใช้กับ admin-seed
func (r *administratorRepository) CreateIfAbsent(ctx context.Context, admin *model.Administrator) (bool, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:AdministratorRepository:CreateIfAbsent")
	defer span.End()

	query := `
	INSERT INTO auth.administrators (id, email, password)
	VALUES ($1, $2, $3)
	ON CONFLICT (email) DO NOTHING
`
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.dbCtx(ctx).ExecContext(ctx, query, admin.ID, admin.Email, admin.Password)
	if err != nil {
		return false, errs.HandleDBError(fmt.Errorf("an error occurred while inserting administrator: %w", err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errs.HandleDBError(fmt.Errorf("an error occurred while inserting administrator: %w", err))
	}
	return n > 0, nil
}
