package deactivate

import (
	"go-cartmaster/shared/common/httputil"
	"go-cartmaster/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Delete(path, deactivateCardHTTPHandler)
}

// DeactivateCard godoc
// @Summary		Deactivate Card
// @Description	Deactivate a card. Cards are never physically deleted here
// @Tags			Card
// @Produce		json
// @Param			tarjetaId	path	int	true	"Card ID"
// @Failure		404
// @Success		200	{object}	dto.CardResponse
// @Router			/tarjetas/{tarjetaId} [delete]
func deactivateCardHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:DeactivateCard")
	defer span.End()

	id, err := httputil.ParamID(c, "tarjetaId")
	if err != nil {
		return err
	}

	resp, err := mediator.Send[*DeactivateCardCommand, *DeactivateCardCommandResult](ctx, &DeactivateCardCommand{ID: id})
	if err != nil {
		return err
	}
	return c.JSON(resp.CardResponse)
}
