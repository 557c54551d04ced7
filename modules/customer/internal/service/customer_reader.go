package service

import (
	"context"

	"go-cartmaster/modules/customer/internal/repository"
	"go-cartmaster/shared/common/logger"
	"go-cartmaster/shared/contract/customercontract"
)

type customerReader struct {
	custRepo repository.CustomerRepository
}

func NewCustomerReader(custRepo repository.CustomerRepository) customercontract.CustomerReader {
	return &customerReader{custRepo: custRepo}
}

func (s *customerReader) GetCustomerByID(ctx context.Context, id int64) (*customercontract.CustomerInfo, error) {
	customer, err := s.custRepo.FindByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return customercontract.NewCustomerInfo(customer.ID, customer.Name, customer.Email), nil
}

func (s *customerReader) FindCredentialsByEmail(ctx context.Context, email string) (*customercontract.CustomerCredentials, error) {
	customer, err := s.custRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return &customercontract.CustomerCredentials{
		ID:       customer.ID,
		Email:    customer.Email,
		Password: customer.Password,
	}, nil
}
