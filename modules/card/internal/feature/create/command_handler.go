package create

import (
	"context"

	"go-cartmaster/modules/card/domainerrors"
	"go-cartmaster/modules/card/dto"
	"go-cartmaster/modules/card/internal/cardlog"
	"go-cartmaster/modules/card/internal/model"
	"go-cartmaster/modules/card/internal/repository"
	"go-cartmaster/shared/common/errs"
	"go-cartmaster/shared/common/logger"
	"go-cartmaster/shared/contract/customercontract"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"
)

type createCardCommandHandler struct {
	cardRepo    repository.CardRepository
	ownerReader customercontract.CustomerReader
}

func NewCreateCardCommandHandler(
	cardRepo repository.CardRepository,
	ownerReader customercontract.CustomerReader) *createCardCommandHandler {
	return &createCardCommandHandler{
		cardRepo:    cardRepo,
		ownerReader: ownerReader,
	}
}

func (h *createCardCommandHandler) Handle(ctx context.Context, cmd *CreateCardCommand) (*CreateCardCommandResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("command_handler")
	ctx, span := tracer.Start(ctx, "Handle:CreateCardCommand")
	defer span.End()

	if err := cmd.Validate(); err != nil {
		return nil, errs.InputValidationError(err.Error())
	}

	usedLimit := decimal.Zero
	if cmd.UsedLimit != nil {
		usedLimit = *cmd.UsedLimit
	}

	owner, err := h.ownerReader.GetCustomerByID(ctx, cmd.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domainerrors.ErrOwnerNotFound
	}

	card := model.NewCard(cmd.OwnerID, cmd.Number, cmd.Expiration, cmd.Network, cmd.Status,
		*cmd.TotalLimit, *cmd.AvailableLimit, usedLimit)
	if err := card.Validate(); err != nil {
		return nil, err
	}

	if err := h.cardRepo.Create(ctx, card); err != nil {
		if errs.IsUniqueViolation(err, repository.NumberUniqueConstraint) {
			return nil, domainerrors.ErrDuplicateCardNumber
		}
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	cardlog.WarnSuspiciousState(ctx, card)

	return &CreateCardCommandResult{CardResponse: dto.NewCardResponse(card)}, nil
}
