package customercontract

import (
	"context"

	"go-cartmaster/shared/common/registry"
)

const (
	CustomerReaderKey registry.ServiceKey = "customer:contract:reader"
)

type CustomerInfo struct {
	ID    int64  `json:"clienteId"`
	Name  string `json:"clienteNombre"`
	Email string `json:"clienteCorreo"`
}

func NewCustomerInfo(id int64, name string, email string) *CustomerInfo {
	return &CustomerInfo{ID: id, Name: name, Email: email}
}

// CustomerCredentials ใช้เฉพาะตอน login รหัสผ่านเก็บแบบ plain text ตามระบบเดิม
type CustomerCredentials struct {
	ID       int64
	Email    string
	Password string
}

// CustomerReader คืน nil, nil เมื่อหาไม่เจอ ให้ผู้เรียกตัดสินใจเองว่าเป็น error แบบไหน
type CustomerReader interface {
	GetCustomerByID(ctx context.Context, id int64) (*CustomerInfo, error)
	FindCredentialsByEmail(ctx context.Context, email string) (*CustomerCredentials, error)
}
