package login

import (
	"context"

	"go-cartmaster/modules/auth/domainerrors"
	"go-cartmaster/modules/auth/internal/repository"
	"go-cartmaster/shared/common/logger"
	"go-cartmaster/shared/contract/customercontract"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type loginCommandHandler struct {
	adminRepo repository.AdministratorRepository
	custRd    customercontract.CustomerReader
}

func NewLoginCommandHandler(
	adminRepo repository.AdministratorRepository,
	custRd customercontract.CustomerReader) *loginCommandHandler {
	return &loginCommandHandler{
		adminRepo: adminRepo,
		custRd:    custRd,
	}
}

func (h *loginCommandHandler) Handle(ctx context.Context, cmd *LoginCommand) (*LoginCommandResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("command_handler")
	ctx, span := tracer.Start(ctx, "Handle:LoginCommand")
	defer span.End()

	if cmd.Email == "" || cmd.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	// ผู้ดูแลระบบมาก่อนเสมอ แม้จะมีลูกค้าใช้อีเมลเดียวกัน
	admin, err := h.adminRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}
	if admin != nil && admin.PasswordMatches(cmd.Password) {
		logger.FromContext(ctx).Info("administrator logged in", zap.Int64("administrator_id", admin.ID))
		return newAdministratorResult(), nil
	}

	cred, err := h.custRd.FindCredentialsByEmail(ctx, cmd.Email)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}
	if cred != nil && cred.Password == cmd.Password {
		logger.FromContext(ctx).Info("customer logged in", zap.Int64("customer_id", cred.ID))
		return newCustomerResult(cred.ID), nil
	}

	return nil, domainerrors.ErrInvalidCredentials
}
