package create

import (
	"go-cartmaster/shared/common/errs"
	"go-cartmaster/shared/common/httputil"
	"go-cartmaster/shared/common/logger"
	"go-cartmaster/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Post(path, createCardHTTPHandler)
}

// CreateCard godoc
// @Summary		Create Card
// @Description	Create a card for an existing customer
// @Tags			Card
// @Accept			json
// @Produce		json
// @Param			clienteId	path	int					true	"Customer ID"
// @Param			card		body	CreateCardRequest	true	"Card Data"
// @Failure		400
// @Failure		404
// @Failure		409
// @Success		201	{object}	dto.CardResponse
// @Router			/tarjetas/crear/{clienteId} [post]
func createCardHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:CreateCard")
	defer span.End()

	ownerID, err := httputil.ParamID(c, "clienteId")
	if err != nil {
		return err
	}

	// แปลง request body -> dto
	var req CreateCardRequest
	if err := c.Bind().Body(&req); err != nil {
		// จัดการ error response ที่ middleware
		return errs.InputValidationError(err.Error())
	}

	logger.FromContext(ctx).Info("Received card", zap.Int64("owner_id", ownerID), zap.String("network", req.Network))

	if err := req.Validate(); err != nil {
		return errs.InputValidationError(err.Error())
	}

	resp, err := mediator.Send[*CreateCardCommand, *CreateCardCommandResult](
		ctx,
		&CreateCardCommand{OwnerID: ownerID, CreateCardRequest: req},
	)
	if err != nil {
		// จัดการ error response ที่ middleware
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp.CardResponse)
}
