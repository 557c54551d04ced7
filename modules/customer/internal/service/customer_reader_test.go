package service

import (
	"context"
	"errors"
	"testing"

	"go-cartmaster/modules/customer/internal/model"
	"go-cartmaster/modules/customer/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetCustomerByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := new(mocks.CustomerRepository)
		repo.On("FindByID", mock.Anything, int64(7)).
			Return(&model.Customer{ID: 7, Name: "Ana", Email: "ana@gmail.com", Password: "x"}, nil)

		info, err := NewCustomerReader(repo).GetCustomerByID(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), info.ID)
		assert.Equal(t, "Ana", info.Name)
		assert.Equal(t, "ana@gmail.com", info.Email)
	})

	t.Run("missing returns nil", func(t *testing.T) {
		repo := new(mocks.CustomerRepository)
		repo.On("FindByID", mock.Anything, int64(8)).Return(nil, nil)

		info, err := NewCustomerReader(repo).GetCustomerByID(ctx, 8)

		require.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(mocks.CustomerRepository)
		repo.On("FindByID", mock.Anything, int64(9)).Return(nil, errors.New("boom"))

		_, err := NewCustomerReader(repo).GetCustomerByID(ctx, 9)

		assert.EqualError(t, err, "boom")
	})
}

func TestFindCredentialsByEmail(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	repo.On("FindByEmail", mock.Anything, "ana@gmail.com").
		Return(&model.Customer{ID: 7, Email: "ana@gmail.com", Password: "pw"}, nil)
	repo.On("FindByEmail", mock.Anything, "nobody@gmail.com").Return(nil, nil)

	reader := NewCustomerReader(repo)

	creds, err := reader.FindCredentialsByEmail(context.Background(), "ana@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "pw", creds.Password)
	assert.Equal(t, int64(7), creds.ID)

	creds, err = reader.FindCredentialsByEmail(context.Background(), "nobody@gmail.com")
	require.NoError(t, err)
	assert.Nil(t, creds)
}
