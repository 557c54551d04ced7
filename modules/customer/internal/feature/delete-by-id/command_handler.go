package deletebyid

import (
	"context"

	"go-cartmaster/modules/customer/domainerrors"
	"go-cartmaster/modules/customer/internal/repository"
	"go-cartmaster/shared/common/logger"
	"go-cartmaster/shared/common/mediator"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type deleteCustomerCommandHandler struct {
	custRepo repository.CustomerRepository
}

func NewDeleteCustomerCommandHandler(custRepo repository.CustomerRepository) *deleteCustomerCommandHandler {
	return &deleteCustomerCommandHandler{custRepo: custRepo}
}

// Handle ลบเฉพาะลูกค้า ถ้ายังมีบัตรอยู่ foreign key จะปฏิเสธและไม่มีอะไรถูกลบ
func (h *deleteCustomerCommandHandler) Handle(ctx context.Context, cmd *DeleteCustomerCommand) (*mediator.NoResponse, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("command_handler")
	ctx, span := tracer.Start(ctx, "Handle:DeleteCustomerCommand")
	defer span.End()

	deleted, err := h.custRepo.DeleteByID(ctx, cmd.ID)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error(), zap.Int64("customer_id", cmd.ID))
		return nil, err
	}
	if !deleted {
		return nil, domainerrors.ErrCustomerNotFound
	}
	return &mediator.NoResponse{}, nil
}
