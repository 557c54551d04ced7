package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-cartmaster/shared/common/errs"
	"go-cartmaster/shared/common/idgen"
	"go-cartmaster/shared/common/patch"

	"github.com/shopspring/decimal"
)

const (
	StatusActive   = "ACTIVO"
	StatusInactive = "INACTIVO"

	NumberLength     = 16
	ExpirationLength = 7
)

type Card struct {
	ID             int64           `db:"id"` // tag db ใช้สำหรับ StructScan() ของ sqlx
	Number         string          `db:"number"`
	Expiration     string          `db:"expiration"`
	Network        string          `db:"network"`
	Status         string          `db:"status"`
	TotalLimit     decimal.Decimal `db:"total_limit"`
	AvailableLimit decimal.Decimal `db:"available_limit"`
	UsedLimit      decimal.Decimal `db:"used_limit"`
	OwnerID        int64           `db:"owner_id"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	Owner          Owner           `db:"owner"` // ได้มาจากการ JOIN กับ customer.customers
}

type Owner struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

// NewCard ใช้สถานะ ACTIVO เมื่อไม่ได้ระบุ
func NewCard(ownerID int64, number, expiration, network, status string, totalLimit, availableLimit, usedLimit decimal.Decimal) *Card {
	if status == "" {
		status = StatusActive
	}
	return &Card{
		ID:             idgen.GenerateTimeRandomID(),
		Number:         number,
		Expiration:     expiration,
		Network:        network,
		Status:         status,
		TotalLimit:     totalLimit,
		AvailableLimit: availableLimit,
		UsedLimit:      usedLimit,
		OwnerID:        ownerID,
	}
}

// Validate ตรวจ invariant ที่ต้องเป็นจริงก่อนเขียนลงฐานข้อมูลทุกครั้ง
func (c *Card) Validate() error {
	var errList []error
	if len(c.Number) != NumberLength {
		errList = append(errList, fmt.Errorf("tarjetaNumero must have exactly %d characters", NumberLength))
	}
	if len(c.Expiration) != ExpirationLength {
		errList = append(errList, fmt.Errorf("tarjetaFechaVencimiento must have exactly %d characters", ExpirationLength))
	}
	if strings.TrimSpace(c.Network) == "" {
		errList = append(errList, errors.New("tarjetaFranquicia is required"))
	}
	if strings.TrimSpace(c.Status) == "" {
		errList = append(errList, errors.New("tarjetaEstado must not be empty"))
	}
	if c.TotalLimit.IsNegative() || c.AvailableLimit.IsNegative() || c.UsedLimit.IsNegative() {
		errList = append(errList, errors.New("amounts must not be negative"))
	}
	if err := errors.Join(errList...); err != nil {
		return errs.InputValidationError(err.Error())
	}
	return nil
}

func (c *Card) IsKnownStatus() bool {
	return c.Status == StatusActive || c.Status == StatusInactive
}

// AvailableExceedsTotal ไม่ถือเป็น error แต่ผู้เรียกควร log เตือน
func (c *Card) AvailableExceedsTotal() bool {
	return c.AvailableLimit.GreaterThan(c.TotalLimit)
}

func (c *Card) Deactivate() {
	c.Status = StatusInactive
}

// Changes เก็บ field ที่ partial update แก้ได้ ไม่มี UsedLimit เพราะไม่มี path ไหนเขียนค่านี้
type Changes struct {
	Number         patch.Field[string]
	Expiration     patch.Field[string]
	Network        patch.Field[string]
	Status         patch.Field[string]
	TotalLimit     patch.Field[decimal.Decimal]
	AvailableLimit patch.Field[decimal.Decimal]
}

// NullFields คืนชื่อ field ที่ถูกส่งมาเป็น null ซึ่ง Apply จะข้ามไป
func (ch Changes) NullFields() []string {
	var names []string
	add := func(null bool, name string) {
		if null {
			names = append(names, name)
		}
	}
	add(ch.Number.Null, "tarjetaNumero")
	add(ch.Expiration.Null, "tarjetaFechaVencimiento")
	add(ch.Network.Null, "tarjetaFranquicia")
	add(ch.Status.Null, "tarjetaEstado")
	add(ch.TotalLimit.Null, "tarjetaCupoTotal")
	add(ch.AvailableLimit.Null, "tarjetaCupoDisponible")
	return names
}

// Apply เขียนทับเฉพาะ field ที่ส่งมาพร้อมค่า field ที่ไม่ได้ส่งหรือเป็น null คงค่าเดิม
// แล้วตรวจ invariant ของผลลัพธ์
func (c *Card) Apply(ch Changes) error {
	ch.Number.Apply(&c.Number)
	ch.Expiration.Apply(&c.Expiration)
	ch.Network.Apply(&c.Network)
	ch.Status.Apply(&c.Status)
	ch.TotalLimit.Apply(&c.TotalLimit)
	ch.AvailableLimit.Apply(&c.AvailableLimit)
	return c.Validate()
}
