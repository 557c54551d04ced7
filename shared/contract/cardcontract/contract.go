package cardcontract

import (
	"github.com/shopspring/decimal"
)

type CardInfo struct {
	ID             int64           `json:"tarjetaId"`
	Number         string          `json:"tarjetaNumero"`
	Expiration     string          `json:"tarjetaFechaVencimiento"`
	Network        string          `json:"tarjetaFranquicia"`
	Status         string          `json:"tarjetaEstado"`
	TotalLimit     decimal.Decimal `json:"tarjetaCupoTotal"`
	AvailableLimit decimal.Decimal `json:"tarjetaCupoDisponible"`
	UsedLimit      decimal.Decimal `json:"tarjetaCupoUtilizado"`
}

// DeleteCardsByOwnerCommand ลบบัตรทั้งหมดของลูกค้า ต้องส่งภายใน transaction ของผู้เรียก
type DeleteCardsByOwnerCommand struct {
	OwnerID int64
}

type DeleteCardsByOwnerCommandResult struct {
	Deleted int64
}

type ListCardsByOwnersQuery struct {
	OwnerIDs []int64
}

type ListCardsByOwnersQueryResult struct {
	Cards map[int64][]CardInfo
}
