package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-cartmaster/modules/customer/internal/model"
	"go-cartmaster/shared/common/errs"
	"go-cartmaster/shared/common/storage/sqldb/transactor"

	"go.opentelemetry.io/otel/trace"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*model.Customer, error)
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
	FindAll(ctx context.Context) ([]*model.Customer, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

type customerRepository struct {
	dbCtx transactor.DBTXContext
}

func NewCustomerRepository(dbCtx transactor.DBTXContext) CustomerRepository {
	return &customerRepository{
		dbCtx: dbCtx,
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CustomerRepository:Create")
	defer span.End()

	query := `
	INSERT INTO customer.customers (id, name, email, password)
	VALUES ($1, $2, $3, $4)
	RETURNING *
	`

	// กำหนด timeout ของ query
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := r.dbCtx(ctx).
		QueryRowxContext(ctx, query, customer.ID, customer.Name, customer.Email, customer.Password).
		StructScan(customer) // นำค่า created_at, updated_at ใส่ใน struct customer
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while inserting customer: %w", err))
	}
	return nil
}

func (r *customerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CustomerRepository:ExistsByEmail")
	defer span.End()

	query := `SELECT 1 FROM customer.customers WHERE email = $1 LIMIT 1`

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exists int
	err := r.dbCtx(ctx).
		QueryRowxContext(ctx, query, email).
		Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, errs.HandleDBError(fmt.Errorf("an error occurred while checking email: %w", err))
	}
	return true, nil
}

func (r *customerRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CustomerRepository:FindByID")
	defer span.End()

	query := `
	SELECT *
	FROM customer.customers
	WHERE id = $1
`
	return r.findOne(ctx, query, id)
}

// FindByIDForUpdate ล็อกแถวไว้จนจบ transaction ต้องเรียกภายใน WithinTransaction
func (r *customerRepository) FindByIDForUpdate(ctx context.Context, id int64) (*model.Customer, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CustomerRepository:FindByIDForUpdate")
	defer span.End()

	query := `
	SELECT *
	FROM customer.customers
	WHERE id = $1
	FOR UPDATE
`
	return r.findOne(ctx, query, id)
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CustomerRepository:FindByEmail")
	defer span.End()

	query := `
	SELECT *
	FROM customer.customers
	WHERE email = $1
`
	return r.findOne(ctx, query, email)
}

func (r *customerRepository) findOne(ctx context.Context, query string, arg any) (*model.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var customer model.Customer
	err := r.dbCtx(ctx).QueryRowxContext(ctx, query, arg).StructScan(&customer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding a customer: %w", err))
	}

	return &customer, nil
}

func (r *customerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CustomerRepository:FindAll")
	defer span.End()

	query := `
	SELECT *
	FROM customer.customers
	ORDER BY id
`
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	customers := []*model.Customer{}
	if err := r.dbCtx(ctx).SelectContext(ctx, &customers, query); err != nil {
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while listing customers: %w", err))
	}
	return customers, nil
}

// DeleteByID คืน false เมื่อไม่มีแถวให้ลบ
func (r *customerRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CustomerRepository:DeleteByID")
	defer span.End()

	query := `DELETE FROM customer.customers WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.dbCtx(ctx).ExecContext(ctx, query, id)
	if err != nil {
		// ยังมีบัตรผูกอยู่จะได้ foreign key violation -> DataIntegrity
		return false, errs.HandleDBError(fmt.Errorf("an error occurred while deleting customer: %w", err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errs.HandleDBError(fmt.Errorf("an error occurred while deleting customer: %w", err))
	}
	return n > 0, nil
}
