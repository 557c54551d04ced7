package model

import (
	"time"

	"go-cartmaster/shared/common/idgen"
)

const (
	KindAdministrator = "ADMINISTRADOR"
	KindCustomer      = "CLIENTE"
)

type Administrator struct {
	ID        int64     `db:"id"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}

func NewAdministrator(email, password string) *Administrator {
	return &Administrator{
		ID:       idgen.GenerateTimeRandomID(),
		Email:    email,
		Password: password,
	}
}

// PasswordMatches เทียบแบบตรงตัว รหัสผ่านเก็บแบบ plain text
func (a *Administrator) PasswordMatches(password string) bool {
	return a.Password == password
}
