package deletewithcards

type DeleteCustomerWithCardsCommand struct {
	ID int64
}

type DeleteCustomerWithCardsCommandResult struct {
	DeletedCards int64
}
