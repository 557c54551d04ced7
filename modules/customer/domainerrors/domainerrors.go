package domainerrors

import "go-cartmaster/shared/common/errs"

var (
	ErrEmailExists           = errs.ConflictError("El correo ya está registrado")
	ErrInvalidEmailFormat    = errs.ConflictError("Formato de correo inválido")
	ErrEmailDomainNotAllowed = errs.ConflictError("Solo se permiten correos @gmail.com o @correo.com")
	ErrCustomerNotFound      = errs.ResourceNotFoundError("the customer with given id was not found")
)
