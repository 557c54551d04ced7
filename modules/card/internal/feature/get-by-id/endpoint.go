package getbyid

import (
	"go-cartmaster/shared/common/httputil"
	"go-cartmaster/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Get(path, getCardByIDHTTPHandler)
}

// GetCard godoc
// @Summary		Get Card
// @Description	Get a card by id
// @Tags			Card
// @Produce		json
// @Param			tarjetaId	path	int	true	"Card ID"
// @Failure		404
// @Success		200	{object}	dto.CardResponse
// @Router			/tarjetas/{tarjetaId} [get]
func getCardByIDHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:GetCardByID")
	defer span.End()

	id, err := httputil.ParamID(c, "tarjetaId")
	if err != nil {
		return err
	}

	resp, err := mediator.Send[*GetCardByIDQuery, *GetCardByIDQueryResult](ctx, &GetCardByIDQuery{ID: id})
	if err != nil {
		// จัดการ error response ที่ middleware
		return err
	}
	return c.JSON(resp.CardResponse)
}
