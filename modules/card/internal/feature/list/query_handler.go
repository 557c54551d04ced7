package list

import (
	"context"

	"go-cartmaster/modules/card/dto"
	"go-cartmaster/modules/card/internal/repository"
	"go-cartmaster/shared/common/logger"
	"go-cartmaster/shared/contract/cardcontract"

	"go.opentelemetry.io/otel/trace"
)

type listCardsQueryHandler struct {
	cardRepo repository.CardRepository
}

func NewListCardsQueryHandler(cardRepo repository.CardRepository) *listCardsQueryHandler {
	return &listCardsQueryHandler{cardRepo: cardRepo}
}

func (h *listCardsQueryHandler) Handle(ctx context.Context, _ *ListCardsQuery) (*ListCardsQueryResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("query_handler")
	ctx, span := tracer.Start(ctx, "Handle:ListCardsQuery")
	defer span.End()

	cards, err := h.cardRepo.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}
	return &ListCardsQueryResult{Cards: dto.NewCardResponses(cards)}, nil
}

type listCardsByOwnerQueryHandler struct {
	cardRepo repository.CardRepository
}

func NewListCardsByOwnerQueryHandler(cardRepo repository.CardRepository) *listCardsByOwnerQueryHandler {
	return &listCardsByOwnerQueryHandler{cardRepo: cardRepo}
}

func (h *listCardsByOwnerQueryHandler) Handle(ctx context.Context, q *ListCardsByOwnerQuery) (*ListCardsQueryResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("query_handler")
	ctx, span := tracer.Start(ctx, "Handle:ListCardsByOwnerQuery")
	defer span.End()

	cards, err := h.cardRepo.FindByOwner(ctx, q.OwnerID)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}
	return &ListCardsQueryResult{Cards: dto.NewCardResponses(cards)}, nil
}

type listCardsWithOwnersQueryHandler struct {
	cardRepo repository.CardRepository
}

func NewListCardsWithOwnersQueryHandler(cardRepo repository.CardRepository) *listCardsWithOwnersQueryHandler {
	return &listCardsWithOwnersQueryHandler{cardRepo: cardRepo}
}

func (h *listCardsWithOwnersQueryHandler) Handle(ctx context.Context, _ *ListCardsWithOwnersQuery) (*ListCardsWithOwnersQueryResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("query_handler")
	ctx, span := tracer.Start(ctx, "Handle:ListCardsWithOwnersQuery")
	defer span.End()

	cards, err := h.cardRepo.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	out := make([]*dto.CardWithOwnerResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, dto.NewCardWithOwnerResponse(c))
	}
	return &ListCardsWithOwnersQueryResult{Cards: out}, nil
}

// listCardsByOwnersQueryHandler ให้บริการ customer module ผ่าน contract
type listCardsByOwnersQueryHandler struct {
	cardRepo repository.CardRepository
}

func NewListCardsByOwnersQueryHandler(cardRepo repository.CardRepository) *listCardsByOwnersQueryHandler {
	return &listCardsByOwnersQueryHandler{cardRepo: cardRepo}
}

func (h *listCardsByOwnersQueryHandler) Handle(ctx context.Context, q *cardcontract.ListCardsByOwnersQuery) (*cardcontract.ListCardsByOwnersQueryResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("query_handler")
	ctx, span := tracer.Start(ctx, "Handle:ListCardsByOwnersQuery")
	defer span.End()

	cards, err := h.cardRepo.FindByOwners(ctx, q.OwnerIDs)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	byOwner := make(map[int64][]cardcontract.CardInfo, len(q.OwnerIDs))
	for _, c := range cards {
		byOwner[c.OwnerID] = append(byOwner[c.OwnerID], dto.NewCardInfo(c))
	}
	return &cardcontract.ListCardsByOwnersQueryResult{Cards: byOwner}, nil
}
