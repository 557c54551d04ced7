package setavailablelimit

import (
	"context"

	"go-cartmaster/modules/card/domainerrors"
	"go-cartmaster/modules/card/dto"
	"go-cartmaster/modules/card/internal/cardlog"
	"go-cartmaster/modules/card/internal/repository"
	"go-cartmaster/shared/common/logger"

	"go.opentelemetry.io/otel/trace"
)

type setAvailableLimitCommandHandler struct {
	cardRepo repository.CardRepository
}

func NewSetAvailableLimitCommandHandler(cardRepo repository.CardRepository) *setAvailableLimitCommandHandler {
	return &setAvailableLimitCommandHandler{cardRepo: cardRepo}
}

// Handle เขียนทับ cupo disponible อย่างเดียว ไม่เทียบกับ cupo total
func (h *setAvailableLimitCommandHandler) Handle(ctx context.Context, cmd *SetAvailableLimitCommand) (*SetAvailableLimitCommandResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("command_handler")
	ctx, span := tracer.Start(ctx, "Handle:SetAvailableLimitCommand")
	defer span.End()

	if cmd.Amount.IsNegative() {
		return nil, domainerrors.ErrNegativeAmount
	}

	card, err := h.cardRepo.UpdateAvailableLimit(ctx, cmd.ID, cmd.Amount)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}
	if card == nil {
		return nil, domainerrors.ErrCardNotFound
	}

	cardlog.WarnSuspiciousState(ctx, card)
	return &SetAvailableLimitCommandResult{CardResponse: dto.NewCardResponse(card)}, nil
}
