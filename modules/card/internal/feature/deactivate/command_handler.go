package deactivate

import (
	"context"

	"go-cartmaster/modules/card/domainerrors"
	"go-cartmaster/modules/card/dto"
	"go-cartmaster/modules/card/internal/repository"
	"go-cartmaster/shared/common/logger"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type deactivateCardCommandHandler struct {
	cardRepo repository.CardRepository
}

func NewDeactivateCardCommandHandler(cardRepo repository.CardRepository) *deactivateCardCommandHandler {
	return &deactivateCardCommandHandler{cardRepo: cardRepo}
}

// Handle ไม่ลบบัตรจริง แค่เปลี่ยนสถานะเป็น INACTIVO ด้วย UPDATE เดียว
func (h *deactivateCardCommandHandler) Handle(ctx context.Context, cmd *DeactivateCardCommand) (*DeactivateCardCommandResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("command_handler")
	ctx, span := tracer.Start(ctx, "Handle:DeactivateCardCommand")
	defer span.End()

	card, err := h.cardRepo.Deactivate(ctx, cmd.ID)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}
	if card == nil {
		return nil, domainerrors.ErrCardNotFound
	}

	logger.FromContext(ctx).Info("card deactivated", zap.Int64("card_id", card.ID))
	return &DeactivateCardCommandResult{CardResponse: dto.NewCardResponse(card)}, nil
}
