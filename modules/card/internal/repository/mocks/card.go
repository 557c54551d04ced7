// Package mocks เป็น testify mock ของ CardRepository สำหรับทดสอบ handler
package mocks

import (
	"context"

	"go-cartmaster/modules/card/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type CardRepository struct {
	mock.Mock
}

func (m *CardRepository) Create(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *CardRepository) FindByID(ctx context.Context, id int64) (*model.Card, error) {
	args := m.Called(ctx, id)
	return cardOrNil(args.Get(0)), args.Error(1)
}

func (m *CardRepository) FindByIDForUpdate(ctx context.Context, id int64) (*model.Card, error) {
	args := m.Called(ctx, id)
	return cardOrNil(args.Get(0)), args.Error(1)
}

func (m *CardRepository) FindAll(ctx context.Context) ([]*model.Card, error) {
	args := m.Called(ctx)
	return cardsOrNil(args.Get(0)), args.Error(1)
}

func (m *CardRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*model.Card, error) {
	args := m.Called(ctx, ownerID)
	return cardsOrNil(args.Get(0)), args.Error(1)
}

func (m *CardRepository) FindByOwners(ctx context.Context, ownerIDs []int64) ([]*model.Card, error) {
	args := m.Called(ctx, ownerIDs)
	return cardsOrNil(args.Get(0)), args.Error(1)
}

func (m *CardRepository) Update(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *CardRepository) Deactivate(ctx context.Context, id int64) (*model.Card, error) {
	args := m.Called(ctx, id)
	return cardOrNil(args.Get(0)), args.Error(1)
}

func (m *CardRepository) UpdateAvailableLimit(ctx context.Context, id int64, amount decimal.Decimal) (*model.Card, error) {
	args := m.Called(ctx, id, amount)
	return cardOrNil(args.Get(0)), args.Error(1)
}

func (m *CardRepository) DeleteByOwner(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func cardOrNil(v any) *model.Card {
	c, _ := v.(*model.Card)
	return c
}

func cardsOrNil(v any) []*model.Card {
	c, _ := v.([]*model.Card)
	return c
}
