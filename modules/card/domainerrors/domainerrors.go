package domainerrors

import "go-cartmaster/shared/common/errs"

var (
	ErrCardNotFound        = errs.ResourceNotFoundError("the card with given id was not found")
	ErrOwnerNotFound       = errs.ResourceNotFoundError("the customer with given id was not found")
	ErrDuplicateCardNumber = errs.ConflictError("card number already exists")
	ErrNegativeAmount      = errs.InputValidationError("amounts must not be negative")
)
