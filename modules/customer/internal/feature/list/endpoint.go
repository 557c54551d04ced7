package list

import (
	"go-cartmaster/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Get(path, listCustomersHTTPHandler)
}

// ListCustomers godoc
// @Summary		List Customers
// @Description	List every customer with their cards
// @Tags			Customer
// @Produce		json
// @Failure		500
// @Success		200	{array}	dto.CustomerResponse
// @Router			/clientes [get]
func listCustomersHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:ListCustomers")
	defer span.End()

	resp, err := mediator.Send[*ListCustomersQuery, *ListCustomersQueryResult](ctx, &ListCustomersQuery{})
	if err != nil {
		// จัดการ error response ที่ middleware
		return err
	}

	return c.JSON(resp.Customers)
}
