package deletebyid

type DeleteCustomerCommand struct {
	ID int64
}
