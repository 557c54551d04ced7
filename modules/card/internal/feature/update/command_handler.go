package update

import (
	"context"

	"go-cartmaster/modules/card/domainerrors"
	"go-cartmaster/modules/card/dto"
	"go-cartmaster/modules/card/internal/cardlog"
	"go-cartmaster/modules/card/internal/model"
	"go-cartmaster/modules/card/internal/repository"
	"go-cartmaster/shared/common/errs"
	"go-cartmaster/shared/common/logger"
	"go-cartmaster/shared/common/storage/sqldb/transactor"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type updateCardCommandHandler struct {
	transactor transactor.Transactor
	cardRepo   repository.CardRepository
}

func NewUpdateCardCommandHandler(
	transactor transactor.Transactor,
	cardRepo repository.CardRepository) *updateCardCommandHandler {
	return &updateCardCommandHandler{
		transactor: transactor,
		cardRepo:   cardRepo,
	}
}

// Handle ทำ read -> apply -> write ใน transaction เดียว แถวถูกล็อกไว้ระหว่างนั้น
// patch ที่มาพร้อมกันจึงไม่ทับ field ของกันและกัน
func (h *updateCardCommandHandler) Handle(ctx context.Context, cmd *UpdateCardCommand) (*UpdateCardCommandResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("command_handler")
	ctx, span := tracer.Start(ctx, "Handle:UpdateCardCommand")
	defer span.End()

	if nulls := cmd.Changes.NullFields(); len(nulls) > 0 {
		logger.FromContext(ctx).Debug("null fields left unchanged", zap.Strings("fields", nulls))
	}

	var card *model.Card
	err := h.transactor.WithinTransaction(ctx, func(ctx context.Context, registerPostCommitHook func(transactor.PostCommitHook)) error {
		var err error
		card, err = h.cardRepo.FindByIDForUpdate(ctx, cmd.ID)
		if err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}
		if card == nil {
			return domainerrors.ErrCardNotFound
		}

		if err := card.Apply(cmd.Changes); err != nil {
			return err
		}

		if err := h.cardRepo.Update(ctx, card); err != nil {
			if errs.IsUniqueViolation(err, repository.NumberUniqueConstraint) {
				return domainerrors.ErrDuplicateCardNumber
			}
			logger.FromContext(ctx).Error(err.Error())
			return err
		}

		registerPostCommitHook(func(ctx context.Context) error {
			cardlog.WarnSuspiciousState(ctx, card)
			return nil
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateCardCommandResult{CardResponse: dto.NewCardResponse(card)}, nil
}
