// Package mocks เป็น testify mock ของ CustomerRepository สำหรับทดสอบ handler
package mocks

import (
	"context"

	"go-cartmaster/modules/customer/internal/model"

	"github.com/stretchr/testify/mock"
)

type CustomerRepository struct {
	mock.Mock
}

func (m *CustomerRepository) Create(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *CustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *CustomerRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	args := m.Called(ctx, id)
	return customerOrNil(args.Get(0)), args.Error(1)
}

func (m *CustomerRepository) FindByIDForUpdate(ctx context.Context, id int64) (*model.Customer, error) {
	args := m.Called(ctx, id)
	return customerOrNil(args.Get(0)), args.Error(1)
}

func (m *CustomerRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	args := m.Called(ctx, email)
	return customerOrNil(args.Get(0)), args.Error(1)
}

func (m *CustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]*model.Customer)
	return customers, args.Error(1)
}

func (m *CustomerRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func customerOrNil(v any) *model.Customer {
	c, _ := v.(*model.Customer)
	return c
}
