package list

import (
	"context"

	"go-cartmaster/modules/customer/dto"
	"go-cartmaster/modules/customer/internal/repository"
	"go-cartmaster/shared/common/logger"
	"go-cartmaster/shared/common/mediator"
	"go-cartmaster/shared/contract/cardcontract"

	"go.opentelemetry.io/otel/trace"
)

type listCustomersQueryHandler struct {
	custRepo repository.CustomerRepository
}

func NewListCustomersQueryHandler(custRepo repository.CustomerRepository) *listCustomersQueryHandler {
	return &listCustomersQueryHandler{custRepo: custRepo}
}

func (h *listCustomersQueryHandler) Handle(ctx context.Context, _ *ListCustomersQuery) (*ListCustomersQueryResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("query_handler")
	ctx, span := tracer.Start(ctx, "Handle:ListCustomersQuery")
	defer span.End()

	customers, err := h.custRepo.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	result := &ListCustomersQueryResult{Customers: make([]*dto.CustomerResponse, 0, len(customers))}
	if len(customers) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(customers))
	for _, c := range customers {
		ids = append(ids, c.ID)
	}

	// โหลดบัตรของทุกคนในครั้งเดียวผ่าน contract ของ card module
	cards, err := mediator.Send[*cardcontract.ListCardsByOwnersQuery, *cardcontract.ListCardsByOwnersQueryResult](
		ctx,
		&cardcontract.ListCardsByOwnersQuery{OwnerIDs: ids},
	)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	for _, c := range customers {
		result.Customers = append(result.Customers, dto.NewCustomerResponse(c.ID, c.Name, c.Email, cards.Cards[c.ID]))
	}
	return result, nil
}
