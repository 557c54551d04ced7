package update

import (
	"go-cartmaster/modules/card/dto"
	"go-cartmaster/modules/card/internal/model"
)

type UpdateCardCommand struct {
	ID      int64
	Changes model.Changes
}

type UpdateCardCommandResult struct {
	*dto.CardResponse
}
