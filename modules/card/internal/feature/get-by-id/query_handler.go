package getbyid

import (
	"context"

	"go-cartmaster/modules/card/domainerrors"
	"go-cartmaster/modules/card/dto"
	"go-cartmaster/modules/card/internal/repository"
	"go-cartmaster/shared/common/logger"

	"go.opentelemetry.io/otel/trace"
)

type getCardByIDQueryHandler struct {
	cardRepo repository.CardRepository
}

func NewGetCardByIDQueryHandler(cardRepo repository.CardRepository) *getCardByIDQueryHandler {
	return &getCardByIDQueryHandler{cardRepo: cardRepo}
}

func (h *getCardByIDQueryHandler) Handle(ctx context.Context, q *GetCardByIDQuery) (*GetCardByIDQueryResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("query_handler")
	ctx, span := tracer.Start(ctx, "Handle:GetCardByIDQuery")
	defer span.End()

	card, err := h.cardRepo.FindByID(ctx, q.ID)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}
	if card == nil {
		return nil, domainerrors.ErrCardNotFound
	}
	return &GetCardByIDQueryResult{CardResponse: dto.NewCardResponse(card)}, nil
}
