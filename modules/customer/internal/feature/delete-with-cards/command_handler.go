package deletewithcards

import (
	"context"

	"go-cartmaster/modules/customer/domainerrors"
	"go-cartmaster/modules/customer/internal/repository"
	"go-cartmaster/shared/common/logger"
	"go-cartmaster/shared/common/mediator"
	"go-cartmaster/shared/common/storage/sqldb/transactor"
	"go-cartmaster/shared/contract/cardcontract"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type deleteCustomerWithCardsCommandHandler struct {
	transactor transactor.Transactor
	custRepo   repository.CustomerRepository
}

func NewDeleteCustomerWithCardsCommandHandler(
	transactor transactor.Transactor,
	custRepo repository.CustomerRepository) *deleteCustomerWithCardsCommandHandler {
	return &deleteCustomerWithCardsCommandHandler{
		transactor: transactor,
		custRepo:   custRepo,
	}
}

func (h *deleteCustomerWithCardsCommandHandler) Handle(ctx context.Context, cmd *DeleteCustomerWithCardsCommand) (*DeleteCustomerWithCardsCommandResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("command_handler")
	ctx, span := tracer.Start(ctx, "Handle:DeleteCustomerWithCardsCommand")
	defer span.End()

	result := &DeleteCustomerWithCardsCommandResult{}

	// ลบบัตรและลูกค้าใน transaction เดียว ถ้าขั้นไหนพังให้ rollback ทั้งหมด
	err := h.transactor.WithinTransaction(ctx, func(ctx context.Context, registerPostCommitHook func(transactor.PostCommitHook)) error {
		// ล็อกแถวลูกค้าไว้ กันไม่ให้มีบัตรใหม่ผูกเข้ามาระหว่างลบ
		customer, err := h.custRepo.FindByIDForUpdate(ctx, cmd.ID)
		if err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}
		if customer == nil {
			return domainerrors.ErrCustomerNotFound
		}

		res, err := mediator.Send[*cardcontract.DeleteCardsByOwnerCommand, *cardcontract.DeleteCardsByOwnerCommandResult](
			ctx,
			&cardcontract.DeleteCardsByOwnerCommand{OwnerID: customer.ID},
		)
		if err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}
		result.DeletedCards = res.Deleted

		deleted, err := h.custRepo.DeleteByID(ctx, customer.ID)
		if err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}
		if !deleted {
			return domainerrors.ErrCustomerNotFound
		}

		registerPostCommitHook(func(ctx context.Context) error {
			logger.FromContext(ctx).Info("customer deleted with cards",
				zap.Int64("customer_id", customer.ID),
				zap.Int64("deleted_cards", result.DeletedCards))
			return nil
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
