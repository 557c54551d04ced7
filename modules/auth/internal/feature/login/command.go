package login

import "go-cartmaster/modules/auth/internal/model"

type LoginCommand struct {
	LoginRequest
}

type LoginCommandResult struct {
	LoginResponse
}

func newAdministratorResult() *LoginCommandResult {
	return &LoginCommandResult{LoginResponse{Kind: model.KindAdministrator}}
}

func newCustomerResult(customerID int64) *LoginCommandResult {
	return &LoginCommandResult{LoginResponse{Kind: model.KindCustomer, CustomerID: &customerID}}
}
