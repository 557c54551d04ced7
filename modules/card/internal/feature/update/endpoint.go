package update

import (
	"go-cartmaster/modules/card/internal/model"
	"go-cartmaster/shared/common/errs"
	"go-cartmaster/shared/common/httputil"
	"go-cartmaster/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

type changeRequest interface {
	Changes() model.Changes
}

func NewEndpoint(router fiber.Router, path string) {
	router.Put(path, updateCardHTTPHandler)
}

func NewExtendedEndpoint(router fiber.Router, path string) {
	router.Put(path, updateCardExtendedHTTPHandler)
}

func NewGeneralDataEndpoint(router fiber.Router, path string) {
	router.Put(path, updateCardGeneralDataHTTPHandler)
}

// UpdateCard godoc
// @Summary		Update Card
// @Description	Partially update status and limits
// @Tags			Card
// @Accept			json
// @Produce		json
// @Param			tarjetaId	path	int					true	"Card ID"
// @Param			card		body	UpdateCardRequest	true	"Fields to change"
// @Failure		400
// @Failure		404
// @Success		200	{object}	dto.CardResponse
// @Router			/tarjetas/{tarjetaId} [put]
func updateCardHTTPHandler(c fiber.Ctx) error {
	return handleUpdate(c, "Endpoint:UpdateCard", &UpdateCardRequest{})
}

// UpdateCardExtended godoc
// @Summary		Update Card With Limits
// @Description	Partially update status, expiration, network and limits
// @Tags			Card
// @Accept			json
// @Produce		json
// @Param			tarjetaId	path	int							true	"Card ID"
// @Param			card		body	UpdateCardExtendedRequest	true	"Fields to change"
// @Failure		400
// @Failure		404
// @Success		200	{object}	dto.CardResponse
// @Router			/tarjetas/actualizar_con_cupos/{tarjetaId} [put]
func updateCardExtendedHTTPHandler(c fiber.Ctx) error {
	return handleUpdate(c, "Endpoint:UpdateCardExtended", &UpdateCardExtendedRequest{})
}

// UpdateCardGeneralData godoc
// @Summary		Update Card General Data
// @Description	Partially update number, expiration, network and status
// @Tags			Card
// @Accept			json
// @Produce		json
// @Param			tarjetaId	path	int								true	"Card ID"
// @Param			card		body	UpdateCardGeneralDataRequest	true	"Fields to change"
// @Failure		400
// @Failure		404
// @Failure		409
// @Success		200	{object}	dto.CardResponse
// @Router			/tarjetas/datos-generales/{tarjetaId} [put]
func updateCardGeneralDataHTTPHandler(c fiber.Ctx) error {
	return handleUpdate(c, "Endpoint:UpdateCardGeneralData", &UpdateCardGeneralDataRequest{})
}

func handleUpdate(c fiber.Ctx, spanName string, req changeRequest) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, spanName)
	defer span.End()

	id, err := httputil.ParamID(c, "tarjetaId")
	if err != nil {
		return err
	}

	// แปลง request body -> dto
	if err := c.Bind().Body(req); err != nil {
		// จัดการ error response ที่ middleware
		return errs.InputValidationError(err.Error())
	}

	resp, err := mediator.Send[*UpdateCardCommand, *UpdateCardCommandResult](
		ctx,
		&UpdateCardCommand{ID: id, Changes: req.Changes()},
	)
	if err != nil {
		return err
	}
	return c.JSON(resp.CardResponse)
}
