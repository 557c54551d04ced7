package register

import (
	"go-cartmaster/shared/common/errs"
	"go-cartmaster/shared/common/logger"
	"go-cartmaster/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Post(path, registerCustomerHTTPHandler)
}

// RegisterCustomer godoc
// @Summary		Register Customer
// @Description	Register a customer with a unique @gmail.com or @correo.com email
// @Tags			Customer
// @Accept			json
// @Produce		json
// @Param			customer	body	RegisterCustomerRequest	true	"Customer Data"
// @Failure		400
// @Failure		409
// @Failure		500
// @Success		201	{object}	dto.CustomerResponse
// @Router			/clientes/registro [post]
func registerCustomerHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:RegisterCustomer")
	defer span.End()

	// แปลง request body -> dto
	var req RegisterCustomerRequest
	if err := c.Bind().Body(&req); err != nil {
		// จัดการ error response ที่ middleware
		return errs.InputValidationError(err.Error())
	}

	// ห้าม log รหัสผ่าน
	logger.FromContext(ctx).Info("Received customer registration", zap.String("email", req.Email))

	resp, err := mediator.Send[*RegisterCustomerCommand, *RegisterCustomerCommandResult](
		ctx,
		&RegisterCustomerCommand{RegisterCustomerRequest: req},
	)
	if err != nil {
		// จัดการ error response ที่ middleware
		return err
	}

	// ตอบกลับด้วย status code 201 (created) และข้อมูลแบบ JSON
	return c.Status(fiber.StatusCreated).JSON(resp.CustomerResponse)
}
