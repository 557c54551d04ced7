package dto

import "go-cartmaster/shared/contract/cardcontract"

// CustomerResponse ไม่มีรหัสผ่าน
type CustomerResponse struct {
	ID    int64                   `json:"clienteId"`
	Name  string                  `json:"clienteNombre"`
	Email string                  `json:"clienteCorreo"`
	Cards []cardcontract.CardInfo `json:"tarjetas"`
}

func NewCustomerResponse(id int64, name, email string, cards []cardcontract.CardInfo) *CustomerResponse {
	if cards == nil {
		cards = []cardcontract.CardInfo{}
	}
	return &CustomerResponse{
		ID:    id,
		Name:  name,
		Email: email,
		Cards: cards,
	}
}
