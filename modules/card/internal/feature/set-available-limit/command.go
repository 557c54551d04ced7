package setavailablelimit

import (
	"go-cartmaster/modules/card/dto"

	"github.com/shopspring/decimal"
)

type SetAvailableLimitCommand struct {
	ID     int64
	Amount decimal.Decimal
}

type SetAvailableLimitCommandResult struct {
	*dto.CardResponse
}
