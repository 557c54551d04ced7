package update

import (
	"go-cartmaster/modules/card/internal/model"
	"go-cartmaster/shared/common/patch"

	"github.com/shopspring/decimal"
)

// field ที่ไม่ได้ประกาศใน request แต่ละแบบจะถูกเมินตอน decode

// UpdateCardRequest แก้ได้เฉพาะสถานะและ cupo
type UpdateCardRequest struct {
	Status         patch.Field[string]          `json:"tarjetaEstado"`
	TotalLimit     patch.Field[decimal.Decimal] `json:"tarjetaCupoTotal"`
	AvailableLimit patch.Field[decimal.Decimal] `json:"tarjetaCupoDisponible"`
}

func (r UpdateCardRequest) Changes() model.Changes {
	return model.Changes{
		Status:         r.Status,
		TotalLimit:     r.TotalLimit,
		AvailableLimit: r.AvailableLimit,
	}
}

type UpdateCardExtendedRequest struct {
	Status         patch.Field[string]          `json:"tarjetaEstado"`
	Expiration     patch.Field[string]          `json:"tarjetaFechaVencimiento"`
	Network        patch.Field[string]          `json:"tarjetaFranquicia"`
	TotalLimit     patch.Field[decimal.Decimal] `json:"tarjetaCupoTotal"`
	AvailableLimit patch.Field[decimal.Decimal] `json:"tarjetaCupoDisponible"`
}

func (r UpdateCardExtendedRequest) Changes() model.Changes {
	return model.Changes{
		Status:         r.Status,
		Expiration:     r.Expiration,
		Network:        r.Network,
		TotalLimit:     r.TotalLimit,
		AvailableLimit: r.AvailableLimit,
	}
}

// UpdateCardGeneralDataRequest แก้ข้อมูลทั่วไป ไม่แตะ cupo
type UpdateCardGeneralDataRequest struct {
	Number     patch.Field[string] `json:"tarjetaNumero"`
	Expiration patch.Field[string] `json:"tarjetaFechaVencimiento"`
	Network    patch.Field[string] `json:"tarjetaFranquicia"`
	Status     patch.Field[string] `json:"tarjetaEstado"`
}

func (r UpdateCardGeneralDataRequest) Changes() model.Changes {
	return model.Changes{
		Number:     r.Number,
		Expiration: r.Expiration,
		Network:    r.Network,
		Status:     r.Status,
	}
}
