// Package mocks เป็น testify mock ของ AdministratorRepository
package mocks

import (
	"context"

	"go-cartmaster/modules/auth/internal/model"

	"github.com/stretchr/testify/mock"
)

type AdministratorRepository struct {
	mock.Mock
}

func (m *AdministratorRepository) FindByEmail(ctx context.Context, email string) (*model.Administrator, error) {
	args := m.Called(ctx, email)
	admin, _ := args.Get(0).(*model.Administrator)
	return admin, args.Error(1)
}

func (m *AdministratorRepository) CreateIfAbsent(ctx context.Context, admin *model.Administrator) (bool, error) {
	args := m.Called(ctx, admin)
	return args.Bool(0), args.Error(1)
}
