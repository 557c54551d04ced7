package login

import (
	"go-cartmaster/modules/auth/domainerrors"
	"go-cartmaster/shared/common/logger"
	"go-cartmaster/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Post(path, loginHTTPHandler)
}

// Login godoc
// @Summary		Login
// @Description	Identify an administrator or a customer by email and password
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Param			credentials	body	LoginRequest	true	"Credentials"
// @Failure		401
// @Failure		500
// @Success		200	{object}	LoginResponse
// @Router			/clientes/login [post]
func loginHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:Login")
	defer span.End()

	// body ที่อ่านไม่ได้ถือว่า credentials ไม่ถูกต้อง
	var req LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return domainerrors.ErrInvalidCredentials
	}

	logger.FromContext(ctx).Info("Received login", zap.String("email", req.Email))

	resp, err := mediator.Send[*LoginCommand, *LoginCommandResult](
		ctx,
		&LoginCommand{LoginRequest: req},
	)
	if err != nil {
		// จัดการ error response ที่ middleware
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp.LoginResponse)
}
