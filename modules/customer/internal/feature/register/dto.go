package register

import (
	"errors"
	"strings"
)

type RegisterCustomerRequest struct {
	Name     string `json:"clienteNombre"`
	Email    string `json:"clienteCorreo"`
	Password string `json:"clienteContrasena"`
}

// Validate ตรวจเฉพาะ field ที่ต้องมี รูปแบบอีเมลเป็น business rule ตรวจใน handler
func (r *RegisterCustomerRequest) Validate() error {
	var errs []error
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, errors.New("clienteNombre is required"))
	}
	if r.Email == "" {
		errs = append(errs, errors.New("clienteCorreo is required"))
	}
	if r.Password == "" {
		errs = append(errs, errors.New("clienteContrasena is required"))
	}
	return errors.Join(errs...)
}
