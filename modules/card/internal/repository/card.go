package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-cartmaster/modules/card/internal/model"
	"go-cartmaster/shared/common/errs"
	"go-cartmaster/shared/common/storage/sqldb/transactor"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"
)

const NumberUniqueConstraint = "cards_number_key"

// ทุก query ที่คืนบัตรจะ JOIN เจ้าของมาด้วยเสมอ
const selectCardWithOwner = `
	SELECT t.id, t.number, t.expiration, t.network, t.status,
	       t.total_limit, t.available_limit, t.used_limit, t.owner_id,
	       t.created_at, t.updated_at,
	       c.id AS "owner.id", c.name AS "owner.name", c.email AS "owner.email"
`

type CardRepository interface {
	Create(ctx context.Context, card *model.Card) error
	FindByID(ctx context.Context, id int64) (*model.Card, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*model.Card, error)
	FindAll(ctx context.Context) ([]*model.Card, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]*model.Card, error)
	FindByOwners(ctx context.Context, ownerIDs []int64) ([]*model.Card, error)
	Update(ctx context.Context, card *model.Card) error
	Deactivate(ctx context.Context, id int64) (*model.Card, error)
	UpdateAvailableLimit(ctx context.Context, id int64, amount decimal.Decimal) (*model.Card, error)
	DeleteByOwner(ctx context.Context, ownerID int64) (int64, error)
}

type cardRepository struct {
	dbCtx transactor.DBTXContext
}

func NewCardRepository(dbCtx transactor.DBTXContext) CardRepository {
	return &cardRepository{
		dbCtx: dbCtx,
	}
}

func (r *cardRepository) Create(ctx context.Context, card *model.Card) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CardRepository:Create")
	defer span.End()

	query := `
	WITH t AS (
		INSERT INTO card.cards (id, number, expiration, network, status, total_limit, available_limit, used_limit, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING *
	)` + selectCardWithOwner + `
	FROM t
	JOIN customer.customers c ON c.id = t.owner_id
	`

	// กำหนด timeout ของ query
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := r.dbCtx(ctx).
		QueryRowxContext(ctx, query,
			card.ID, card.Number, card.Expiration, card.Network, card.Status,
			card.TotalLimit, card.AvailableLimit, card.UsedLimit, card.OwnerID).
		StructScan(card)
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while inserting card: %w", err))
	}
	return nil
}

func (r *cardRepository) FindByID(ctx context.Context, id int64) (*model.Card, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CardRepository:FindByID")
	defer span.End()

	query := selectCardWithOwner + `
	FROM card.cards t
	JOIN customer.customers c ON c.id = t.owner_id
	WHERE t.id = $1
	`
	return r.findOne(ctx, query, id)
}

// FindByIDForUpdate ล็อกแถวบัตรไว้จนจบ transaction ใช้กับ read -> apply -> write
func (r *cardRepository) FindByIDForUpdate(ctx context.Context, id int64) (*model.Card, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CardRepository:FindByIDForUpdate")
	defer span.End()

	query := selectCardWithOwner + `
	FROM card.cards t
	JOIN customer.customers c ON c.id = t.owner_id
	WHERE t.id = $1
	FOR NO KEY UPDATE OF t
	`
	return r.findOne(ctx, query, id)
}

func (r *cardRepository) findOne(ctx context.Context, query string, args ...any) (*model.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var card model.Card
	err := r.dbCtx(ctx).QueryRowxContext(ctx, query, args...).StructScan(&card)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding a card: %w", err))
	}
	return &card, nil
}

func (r *cardRepository) FindAll(ctx context.Context) ([]*model.Card, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CardRepository:FindAll")
	defer span.End()

	query := selectCardWithOwner + `
	FROM card.cards t
	JOIN customer.customers c ON c.id = t.owner_id
	ORDER BY t.id
	`
	return r.findMany(ctx, query)
}

func (r *cardRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*model.Card, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CardRepository:FindByOwner")
	defer span.End()

	query := selectCardWithOwner + `
	FROM card.cards t
	JOIN customer.customers c ON c.id = t.owner_id
	WHERE t.owner_id = $1
	ORDER BY t.id
	`
	return r.findMany(ctx, query, ownerID)
}

func (r *cardRepository) FindByOwners(ctx context.Context, ownerIDs []int64) ([]*model.Card, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CardRepository:FindByOwners")
	defer span.End()

	if len(ownerIDs) == 0 {
		return []*model.Card{}, nil
	}

	query, args, err := sqlx.In(selectCardWithOwner+`
	FROM card.cards t
	JOIN customer.customers c ON c.id = t.owner_id
	WHERE t.owner_id IN (?)
	ORDER BY t.owner_id, t.id
	`, ownerIDs)
	if err != nil {
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while building owners query: %w", err))
	}
	return r.findMany(ctx, sqlx.Rebind(sqlx.DOLLAR, query), args...)
}

func (r *cardRepository) findMany(ctx context.Context, query string, args ...any) ([]*model.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	cards := []*model.Card{}
	if err := r.dbCtx(ctx).SelectContext(ctx, &cards, query, args...); err != nil {
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while listing cards: %w", err))
	}
	return cards, nil
}

// Update เขียนทุก field ที่แก้ได้ ยกเว้น used_limit และ owner_id
func (r *cardRepository) Update(ctx context.Context, card *model.Card) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CardRepository:Update")
	defer span.End()

	query := `
	WITH t AS (
		UPDATE card.cards
		SET number = $2, expiration = $3, network = $4, status = $5,
		    total_limit = $6, available_limit = $7, updated_at = now()
		WHERE id = $1
		RETURNING *
	)` + selectCardWithOwner + `
	FROM t
	JOIN customer.customers c ON c.id = t.owner_id
	`

	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	err := r.dbCtx(ctx).
		QueryRowxContext(ctx, query,
			card.ID, card.Number, card.Expiration, card.Network, card.Status,
			card.TotalLimit, card.AvailableLimit).
		StructScan(card)
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while updating card: %w", err))
	}
	return nil
}

// Deactivate เป็น UPDATE เดียว เรียกซ้ำได้ผลเหมือนเดิม คืน nil เมื่อไม่พบบัตร
func (r *cardRepository) Deactivate(ctx context.Context, id int64) (*model.Card, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CardRepository:Deactivate")
	defer span.End()

	query := `
	WITH t AS (
		UPDATE card.cards
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING *
	)` + selectCardWithOwner + `
	FROM t
	JOIN customer.customers c ON c.id = t.owner_id
	`
	return r.findOne(ctx, query, id, model.StatusInactive)
}

// UpdateAvailableLimit เขียนทับเฉพาะ available_limit คืน nil เมื่อไม่พบบัตร
func (r *cardRepository) UpdateAvailableLimit(ctx context.Context, id int64, amount decimal.Decimal) (*model.Card, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CardRepository:UpdateAvailableLimit")
	defer span.End()

	query := `
	WITH t AS (
		UPDATE card.cards
		SET available_limit = $2, updated_at = now()
		WHERE id = $1
		RETURNING *
	)` + selectCardWithOwner + `
	FROM t
	JOIN customer.customers c ON c.id = t.owner_id
	`
	return r.findOne(ctx, query, id, amount)
}

func (r *cardRepository) DeleteByOwner(ctx context.Context, ownerID int64) (int64, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CardRepository:DeleteByOwner")
	defer span.End()

	query := `DELETE FROM card.cards WHERE owner_id = $1`

	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	res, err := r.dbCtx(ctx).ExecContext(ctx, query, ownerID)
	if err != nil {
		return 0, errs.HandleDBError(fmt.Errorf("an error occurred while deleting cards by owner: %w", err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errs.HandleDBError(fmt.Errorf("an error occurred while deleting cards by owner: %w", err))
	}
	return n, nil
}
