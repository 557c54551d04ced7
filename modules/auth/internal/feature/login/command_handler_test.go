package login

import (
	"context"
	"errors"
	"testing"

	"go-cartmaster/modules/auth/domainerrors"
	"go-cartmaster/modules/auth/internal/model"
	"go-cartmaster/modules/auth/internal/repository/mocks"
	"go-cartmaster/shared/common/errs"
	"go-cartmaster/shared/contract/customercontract"
	custmocks "go-cartmaster/shared/contract/customercontract/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCommand(email, password string) *LoginCommand {
	return &LoginCommand{LoginRequest: LoginRequest{Email: email, Password: password}}
}

func TestLogin_AdministratorWinsOverCustomer(t *testing.T) {
	adminRepo := new(mocks.AdministratorRepository)
	custRd := new(custmocks.CustomerReader)
	adminRepo.On("FindByEmail", mock.Anything, "admin@x.com").
		Return(&model.Administrator{ID: 1, Email: "admin@x.com", Password: "p"}, nil)

	res, err := NewLoginCommandHandler(adminRepo, custRd).Handle(context.Background(), newCommand("admin@x.com", "p"))

	require.NoError(t, err)
	assert.Equal(t, model.KindAdministrator, res.Kind)
	assert.Nil(t, res.CustomerID)
	custRd.AssertNotCalled(t, "FindCredentialsByEmail", mock.Anything, mock.Anything)
}

func TestLogin_Customer(t *testing.T) {
	adminRepo := new(mocks.AdministratorRepository)
	custRd := new(custmocks.CustomerReader)
	adminRepo.On("FindByEmail", mock.Anything, "ana@gmail.com").Return(nil, nil)
	custRd.On("FindCredentialsByEmail", mock.Anything, "ana@gmail.com").
		Return(&customercontract.CustomerCredentials{ID: 42, Email: "ana@gmail.com", Password: "secret"}, nil)

	res, err := NewLoginCommandHandler(adminRepo, custRd).Handle(context.Background(), newCommand("ana@gmail.com", "secret"))

	require.NoError(t, err)
	assert.Equal(t, model.KindCustomer, res.Kind)
	require.NotNil(t, res.CustomerID)
	assert.Equal(t, int64(42), *res.CustomerID)
}

func TestLogin_AdminWrongPasswordFallsBackToCustomer(t *testing.T) {
	adminRepo := new(mocks.AdministratorRepository)
	custRd := new(custmocks.CustomerReader)
	adminRepo.On("FindByEmail", mock.Anything, "both@gmail.com").
		Return(&model.Administrator{ID: 1, Email: "both@gmail.com", Password: "admin"}, nil)
	custRd.On("FindCredentialsByEmail", mock.Anything, "both@gmail.com").
		Return(&customercontract.CustomerCredentials{ID: 7, Email: "both@gmail.com", Password: "cust"}, nil)

	res, err := NewLoginCommandHandler(adminRepo, custRd).Handle(context.Background(), newCommand("both@gmail.com", "cust"))

	require.NoError(t, err)
	assert.Equal(t, model.KindCustomer, res.Kind)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		cred     *customercontract.CustomerCredentials
	}{
		{"unknown email", "nobody@gmail.com", "x", nil},
		{"wrong password", "ana@gmail.com", "wrong", &customercontract.CustomerCredentials{ID: 42, Email: "ana@gmail.com", Password: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adminRepo := new(mocks.AdministratorRepository)
			custRd := new(custmocks.CustomerReader)
			adminRepo.On("FindByEmail", mock.Anything, tt.email).Return(nil, nil)
			custRd.On("FindCredentialsByEmail", mock.Anything, tt.email).Return(tt.cred, nil)

			res, err := NewLoginCommandHandler(adminRepo, custRd).Handle(context.Background(), newCommand(tt.email, tt.password))

			assert.Nil(t, res)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
			assert.Equal(t, errs.ErrAuthentication, errs.GetErrorType(err))
			assert.Equal(t, "CREDENCIALES_INVALIDAS", err.Error())
		})
	}
}

func TestLogin_MissingCredentials(t *testing.T) {
	adminRepo := new(mocks.AdministratorRepository)
	custRd := new(custmocks.CustomerReader)

	_, err := NewLoginCommandHandler(adminRepo, custRd).Handle(context.Background(), newCommand("", ""))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	adminRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestLogin_RepositoryFailure(t *testing.T) {
	adminRepo := new(mocks.AdministratorRepository)
	custRd := new(custmocks.CustomerReader)
	adminRepo.On("FindByEmail", mock.Anything, "ana@gmail.com").Return(nil, errors.New("connection refused"))

	_, err := NewLoginCommandHandler(adminRepo, custRd).Handle(context.Background(), newCommand("ana@gmail.com", "x"))

	assert.EqualError(t, err, "connection refused")
}
