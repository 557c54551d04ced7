package register

import "go-cartmaster/modules/customer/dto"

type RegisterCustomerCommand struct {
	RegisterCustomerRequest
}

type RegisterCustomerCommandResult struct {
	*dto.CustomerResponse
}

func NewRegisterCustomerCommandResult(id int64, name, email string) *RegisterCustomerCommandResult {
	return &RegisterCustomerCommandResult{
		CustomerResponse: dto.NewCustomerResponse(id, name, email, nil),
	}
}
