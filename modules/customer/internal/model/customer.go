package model

import (
	"regexp"
	"strings"
	"time"

	"go-cartmaster/shared/common/idgen"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}$`)

// โดเมนที่รับสมัครได้ เทียบแบบตรงตัวอักษร
var AllowedEmailDomains = []string{"gmail.com", "correo.com"}

type Customer struct {
	ID        int64     `db:"id"` // tag db ใช้สำหรับ StructScan() ของ sqlx
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func NewCustomer(name, email, password string) *Customer {
	return &Customer{
		ID:       idgen.GenerateTimeRandomID(),
		Name:     name,
		Email:    email,
		Password: password,
	}
}

func IsValidEmailFormat(email string) bool {
	return emailPattern.MatchString(email)
}

func IsAllowedEmailDomain(email string) bool {
	for _, d := range AllowedEmailDomains {
		if strings.HasSuffix(email, "@"+d) {
			return true
		}
	}
	return false
}
