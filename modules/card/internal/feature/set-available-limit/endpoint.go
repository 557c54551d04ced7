package setavailablelimit

import (
	"bytes"

	"go-cartmaster/shared/common/errs"
	"go-cartmaster/shared/common/httputil"
	"go-cartmaster/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Put(path, setAvailableLimitHTTPHandler)
}

// SetAvailableLimit godoc
// @Summary		Set Available Limit
// @Description	Overwrite the available limit with a JSON number body
// @Tags			Card
// @Accept			json
// @Produce		json
// @Param			tarjetaId	path	int		true	"Card ID"
// @Param			amount		body	number	true	"New available limit"
// @Failure		400
// @Failure		404
// @Success		200	{object}	dto.CardResponse
// @Router			/tarjetas/{tarjetaId}/cupo-disponible [put]
func setAvailableLimitHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:SetAvailableLimit")
	defer span.End()

	id, err := httputil.ParamID(c, "tarjetaId")
	if err != nil {
		return err
	}

	amount, err := parseAmount(c.Body())
	if err != nil {
		return err
	}

	resp, err := mediator.Send[*SetAvailableLimitCommand, *SetAvailableLimitCommandResult](
		ctx,
		&SetAvailableLimitCommand{ID: id, Amount: amount},
	)
	if err != nil {
		return err
	}
	return c.JSON(resp.CardResponse)
}

// body เป็นตัวเลขเปล่า ๆ เช่น 1500.50
func parseAmount(body []byte) (decimal.Decimal, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return decimal.Zero, errs.InputValidationError("body must be a number")
	}
	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(body); err != nil {
		return decimal.Zero, errs.InputValidationError("body must be a number")
	}
	if amount.IsNegative() {
		return decimal.Zero, errs.InputValidationError("amount must not be negative")
	}
	return amount, nil
}
