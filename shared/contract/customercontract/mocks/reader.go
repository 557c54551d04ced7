// Package mocks เป็น testify mock ของ CustomerReader สำหรับโมดูลที่ใช้ข้อมูลลูกค้า
package mocks

import (
	"context"

	"go-cartmaster/shared/contract/customercontract"

	"github.com/stretchr/testify/mock"
)

type CustomerReader struct {
	mock.Mock
}

var _ customercontract.CustomerReader = (*CustomerReader)(nil)

func (m *CustomerReader) GetCustomerByID(ctx context.Context, id int64) (*customercontract.CustomerInfo, error) {
	args := m.Called(ctx, id)
	info, _ := args.Get(0).(*customercontract.CustomerInfo)
	return info, args.Error(1)
}

func (m *CustomerReader) FindCredentialsByEmail(ctx context.Context, email string) (*customercontract.CustomerCredentials, error) {
	args := m.Called(ctx, email)
	creds, _ := args.Get(0).(*customercontract.CustomerCredentials)
	return creds, args.Error(1)
}
