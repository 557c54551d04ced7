package dto

import (
	"go-cartmaster/modules/card/internal/model"
	"go-cartmaster/shared/contract/cardcontract"

	"github.com/shopspring/decimal"
)

type OwnerResponse struct {
	ID    int64  `json:"clienteId"`
	Name  string `json:"clienteNombre"`
	Email string `json:"clienteCorreo"`
}

type CardResponse struct {
	cardcontract.CardInfo
	Owner OwnerResponse `json:"cliente"`
}

// CardWithOwnerResponse เป็นรูปแบบแบนของ /tarjetas/con-clientes ใช้ชื่อ key คนละชุดกับ CardResponse
type CardWithOwnerResponse struct {
	ID             int64           `json:"tarjetaId"`
	Number         string          `json:"numeroTarjeta"`
	Expiration     string          `json:"fechaVencimiento"`
	Network        string          `json:"franquicia"`
	Status         string          `json:"estado"`
	TotalLimit     decimal.Decimal `json:"cupoTotal"`
	AvailableLimit decimal.Decimal `json:"cupoDisponible"`
	UsedLimit      decimal.Decimal `json:"cupoUtilizado"`
	Owner          struct {
		ID    int64  `json:"id"`
		Name  string `json:"nombre"`
		Email string `json:"correo"`
	} `json:"cliente"`
}

func NewCardInfo(c *model.Card) cardcontract.CardInfo {
	return cardcontract.CardInfo{
		ID:             c.ID,
		Number:         c.Number,
		Expiration:     c.Expiration,
		Network:        c.Network,
		Status:         c.Status,
		TotalLimit:     c.TotalLimit,
		AvailableLimit: c.AvailableLimit,
		UsedLimit:      c.UsedLimit,
	}
}

func NewCardResponse(c *model.Card) *CardResponse {
	return &CardResponse{
		CardInfo: NewCardInfo(c),
		Owner: OwnerResponse{
			ID:    c.Owner.ID,
			Name:  c.Owner.Name,
			Email: c.Owner.Email,
		},
	}
}

func NewCardResponses(cards []*model.Card) []*CardResponse {
	out := make([]*CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, NewCardResponse(c))
	}
	return out
}

func NewCardWithOwnerResponse(c *model.Card) *CardWithOwnerResponse {
	r := &CardWithOwnerResponse{
		ID:             c.ID,
		Number:         c.Number,
		Expiration:     c.Expiration,
		Network:        c.Network,
		Status:         c.Status,
		TotalLimit:     c.TotalLimit,
		AvailableLimit: c.AvailableLimit,
		UsedLimit:      c.UsedLimit,
	}
	r.Owner.ID = c.Owner.ID
	r.Owner.Name = c.Owner.Name
	r.Owner.Email = c.Owner.Email
	return r
}
