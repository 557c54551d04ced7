package create

import (
	"errors"

	"github.com/shopspring/decimal"
)

type CreateCardRequest struct {
	Number         string           `json:"tarjetaNumero"`
	Expiration     string           `json:"tarjetaFechaVencimiento"`
	Network        string           `json:"tarjetaFranquicia"`
	Status         string           `json:"tarjetaEstado"`
	TotalLimit     *decimal.Decimal `json:"tarjetaCupoTotal"`
	AvailableLimit *decimal.Decimal `json:"tarjetaCupoDisponible"`
	UsedLimit      *decimal.Decimal `json:"tarjetaCupoUtilizado"` // ไม่ส่งมาถือเป็น 0
}

// Validate ตรวจแค่ว่ามี cupo ส่งมา รูปแบบอื่น ๆ ตรวจที่ model
func (r *CreateCardRequest) Validate() error {
	var errs []error
	if r.TotalLimit == nil {
		errs = append(errs, errors.New("tarjetaCupoTotal is required"))
	}
	if r.AvailableLimit == nil {
		errs = append(errs, errors.New("tarjetaCupoDisponible is required"))
	}
	return errors.Join(errs...)
}
