package register

import (
	"context"

	"go-cartmaster/modules/customer/domainerrors"
	"go-cartmaster/modules/customer/internal/model"
	"go-cartmaster/modules/customer/internal/repository"
	"go-cartmaster/shared/common/errs"
	"go-cartmaster/shared/common/logger"
	"go-cartmaster/shared/common/storage/sqldb/transactor"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const emailUniqueConstraint = "customers_email_key"

type registerCustomerCommandHandler struct {
	transactor transactor.Transactor
	custRepo   repository.CustomerRepository
}

func NewRegisterCustomerCommandHandler(
	transactor transactor.Transactor,
	custRepo repository.CustomerRepository) *registerCustomerCommandHandler {
	return &registerCustomerCommandHandler{
		transactor: transactor,
		custRepo:   custRepo,
	}
}

func (h *registerCustomerCommandHandler) Handle(ctx context.Context, cmd *RegisterCustomerCommand) (*RegisterCustomerCommandResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("command_handler")
	ctx, span := tracer.Start(ctx, "Handle:RegisterCustomerCommand")
	defer span.End()

	// ตรวจสอบ business rule ตามลำดับ ข้อแรกที่ไม่ผ่านเป็นตัวกำหนด error
	if err := h.validateBusinessInvariant(ctx, cmd); err != nil {
		return nil, err
	}

	// อีเมลซ้ำต้องชนะ field ว่าง จึงตรวจ input หลัง business rule
	if err := cmd.Validate(); err != nil {
		return nil, errs.InputValidationError(err.Error())
	}

	customer := model.NewCustomer(cmd.Name, cmd.Email, cmd.Password)

	err := h.transactor.WithinTransaction(ctx, func(ctx context.Context, registerPostCommitHook func(transactor.PostCommitHook)) error {
		// เช็คซ้ำอีกรอบก่อน insert ส่วนที่ยังแข่งกันได้ให้ unique constraint จัดการ
		exists, err := h.custRepo.ExistsByEmail(ctx, customer.Email)
		if err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}
		if exists {
			return domainerrors.ErrEmailExists
		}

		if err := h.custRepo.Create(ctx, customer); err != nil {
			if errs.IsUniqueViolation(err, emailUniqueConstraint) {
				return domainerrors.ErrEmailExists
			}
			logger.FromContext(ctx).Error(err.Error())
			return err
		}

		registerPostCommitHook(func(ctx context.Context) error {
			logger.FromContext(ctx).Info("customer registered", zap.Int64("customer_id", customer.ID))
			return nil
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return NewRegisterCustomerCommandResult(customer.ID, customer.Name, customer.Email), nil
}

func (h *registerCustomerCommandHandler) validateBusinessInvariant(ctx context.Context, cmd *RegisterCustomerCommand) error {
	exists, err := h.custRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return err
	}
	if exists {
		return domainerrors.ErrEmailExists
	}

	if !model.IsValidEmailFormat(cmd.Email) {
		return domainerrors.ErrInvalidEmailFormat
	}

	if !model.IsAllowedEmailDomain(cmd.Email) {
		return domainerrors.ErrEmailDomainNotAllowed
	}
	return nil
}
