package list

import "go-cartmaster/modules/customer/dto"

type ListCustomersQuery struct{}

type ListCustomersQueryResult struct {
	Customers []*dto.CustomerResponse
}
