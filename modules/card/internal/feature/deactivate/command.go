package deactivate

import "go-cartmaster/modules/card/dto"

type DeactivateCardCommand struct {
	ID int64
}

type DeactivateCardCommandResult struct {
	*dto.CardResponse
}
