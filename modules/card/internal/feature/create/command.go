package create

import "go-cartmaster/modules/card/dto"

type CreateCardCommand struct {
	OwnerID int64
	CreateCardRequest
}

type CreateCardCommandResult struct {
	*dto.CardResponse
}
