package deletebyid

import (
	deletewithcards "go-cartmaster/modules/customer/internal/feature/delete-with-cards"
	"go-cartmaster/shared/common/httputil"
	"go-cartmaster/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Delete(path, deleteCustomerHTTPHandler)
}

// DeleteCustomer godoc
// @Summary		Delete Customer
// @Description	Delete a customer together with all its cards. With cascade=false only the customer is deleted and the call fails while cards exist
// @Tags			Customer
// @Param			clienteId	path	int		true	"Customer ID"
// @Param			cascade		query	bool	false	"Delete owned cards too (default true)"
// @Failure		400
// @Failure		404
// @Failure		409
// @Failure		500
// @Success		200
// @Success		204
// @Router			/clientes/{clienteId} [delete]
func deleteCustomerHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:DeleteCustomer")
	defer span.End()

	id, err := httputil.ParamID(c, "clienteId")
	if err != nil {
		return err
	}
	cascade, err := httputil.QueryBool(c, "cascade", true)
	if err != nil {
		return err
	}

	if !cascade {
		if _, err := mediator.Send[*DeleteCustomerCommand, *mediator.NoResponse](ctx, &DeleteCustomerCommand{ID: id}); err != nil {
			// จัดการ error response ที่ middleware
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}

	_, err = mediator.Send[*deletewithcards.DeleteCustomerWithCardsCommand, *deletewithcards.DeleteCustomerWithCardsCommandResult](
		ctx,
		&deletewithcards.DeleteCustomerWithCardsCommand{ID: id},
	)
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}
