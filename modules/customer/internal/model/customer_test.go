package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmailFormat(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ana@gmail.com", true},
		{"ana.perez+tag@correo.com", true},
		{"ana@mail.example.travel", false}, // tld ยาวเกิน 6
		{"ana@", false},
		{"not-an-email", false},
		{"ana@gmail", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmailFormat(tt.email))
		})
	}
}

func TestIsAllowedEmailDomain(t *testing.T) {
	assert.True(t, IsAllowedEmailDomain("ana@gmail.com"))
	assert.True(t, IsAllowedEmailDomain("ana@correo.com"))
	assert.False(t, IsAllowedEmailDomain("ana@yahoo.com"))
	assert.False(t, IsAllowedEmailDomain("ana@notgmail.com"))
	assert.False(t, IsAllowedEmailDomain("ana@GMAIL.COM"))
}

func TestNewCustomer(t *testing.T) {
	a := NewCustomer("Ana", "ana@gmail.com", "secret")
	b := NewCustomer("Ben", "ben@gmail.com", "secret")

	assert.NotZero(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "Ana", a.Name)
	assert.Equal(t, "secret", a.Password)
}
