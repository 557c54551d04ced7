package deletebyowner

import (
	"context"

	"go-cartmaster/modules/card/internal/repository"
	"go-cartmaster/shared/common/logger"
	"go-cartmaster/shared/contract/cardcontract"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type deleteCardsByOwnerCommandHandler struct {
	cardRepo repository.CardRepository
}

func NewDeleteCardsByOwnerCommandHandler(cardRepo repository.CardRepository) *deleteCardsByOwnerCommandHandler {
	return &deleteCardsByOwnerCommandHandler{cardRepo: cardRepo}
}

// Handle ลบบัตรจริงของลูกค้า ใช้ connection จาก context จึงอยู่ใน transaction ของผู้เรียก
func (h *deleteCardsByOwnerCommandHandler) Handle(ctx context.Context, cmd *cardcontract.DeleteCardsByOwnerCommand) (*cardcontract.DeleteCardsByOwnerCommandResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("command_handler")
	ctx, span := tracer.Start(ctx, "Handle:DeleteCardsByOwnerCommand")
	defer span.End()

	n, err := h.cardRepo.DeleteByOwner(ctx, cmd.OwnerID)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error(), zap.Int64("owner_id", cmd.OwnerID))
		return nil, err
	}
	return &cardcontract.DeleteCardsByOwnerCommandResult{Deleted: n}, nil
}
