package getbyid

import "go-cartmaster/modules/card/dto"

type GetCardByIDQuery struct {
	ID int64
}

type GetCardByIDQueryResult struct {
	*dto.CardResponse
}
