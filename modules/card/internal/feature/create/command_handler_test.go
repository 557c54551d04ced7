package create

import (
	"context"
	"testing"

	"go-cartmaster/modules/card/domainerrors"
	"go-cartmaster/modules/card/internal/model"
	"go-cartmaster/modules/card/internal/repository/mocks"
	"go-cartmaster/shared/common/errs"
	"go-cartmaster/shared/contract/customercontract"
	readermocks "go-cartmaster/shared/contract/customercontract/mocks"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func newCommand(ownerID int64) *CreateCardCommand {
	return &CreateCardCommand{
		OwnerID: ownerID,
		CreateCardRequest: CreateCardRequest{
			Number:         "4111111111111111",
			Expiration:     "12/2030",
			Network:        "VISA",
			TotalLimit:     amount(1000),
			AvailableLimit: amount(1000),
		},
	}
}

func TestCreateCard_Success(t *testing.T) {
	repo := new(mocks.CardRepository)
	reader := new(readermocks.CustomerReader)
	reader.On("GetCustomerByID", mock.Anything, int64(1)).
		Return(customercontract.NewCustomerInfo(1, "Ana", "ana@gmail.com"), nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Card) bool {
		return c.OwnerID == 1 && c.Status == model.StatusActive && c.UsedLimit.IsZero()
	})).Run(func(args mock.Arguments) {
		// จำลอง JOIN ที่ repository เติมข้อมูลเจ้าของให้
		c := args.Get(1).(*model.Card)
		c.Owner = model.Owner{ID: 1, Name: "Ana", Email: "ana@gmail.com"}
	}).Return(nil)

	res, err := NewCreateCardCommandHandler(repo, reader).Handle(context.Background(), newCommand(1))

	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.Equal(t, model.StatusActive, res.Status)
	assert.Equal(t, int64(1), res.Owner.ID)
	assert.Equal(t, "ana@gmail.com", res.Owner.Email)
	assert.True(t, res.UsedLimit.IsZero())
	repo.AssertExpectations(t)
}

func TestCreateCard_OwnerNotFound(t *testing.T) {
	repo := new(mocks.CardRepository)
	reader := new(readermocks.CustomerReader)
	reader.On("GetCustomerByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := NewCreateCardCommandHandler(repo, reader).Handle(context.Background(), newCommand(99))

	assert.ErrorIs(t, err, domainerrors.ErrOwnerNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCard_InvalidNumber(t *testing.T) {
	repo := new(mocks.CardRepository)
	reader := new(readermocks.CustomerReader)
	reader.On("GetCustomerByID", mock.Anything, int64(1)).
		Return(customercontract.NewCustomerInfo(1, "Ana", "ana@gmail.com"), nil)

	cmd := newCommand(1)
	cmd.Number = "123"
	_, err := NewCreateCardCommandHandler(repo, reader).Handle(context.Background(), cmd)

	assert.Equal(t, errs.ErrInputValidation, errs.GetErrorType(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCard_DuplicateNumber(t *testing.T) {
	repo := new(mocks.CardRepository)
	reader := new(readermocks.CustomerReader)
	reader.On("GetCustomerByID", mock.Anything, int64(1)).
		Return(customercontract.NewCustomerInfo(1, "Ana", "ana@gmail.com"), nil)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(errs.HandleDBError(&pq.Error{Code: "23505", Constraint: "cards_number_key"}))

	_, err := NewCreateCardCommandHandler(repo, reader).Handle(context.Background(), newCommand(1))

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateCardNumber)
	assert.Equal(t, 409, errs.GetHTTPStatus(err))
}

func TestCreateCardRequest_Validate(t *testing.T) {
	req := CreateCardRequest{Number: "4111111111111111"}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tarjetaCupoTotal is required")
}

func TestCreateCard_KeepsUsedLimitFromRequest(t *testing.T) {
	repo := new(mocks.CardRepository)
	reader := new(readermocks.CustomerReader)
	reader.On("GetCustomerByID", mock.Anything, int64(1)).
		Return(customercontract.NewCustomerInfo(1, "Ana", "ana@gmail.com"), nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Card) bool {
		return c.UsedLimit.Equal(decimal.NewFromInt(200))
	})).Return(nil)

	cmd := newCommand(1)
	cmd.UsedLimit = amount(200)
	res, err := NewCreateCardCommandHandler(repo, reader).Handle(context.Background(), cmd)

	require.NoError(t, err)
	assert.True(t, res.UsedLimit.Equal(decimal.NewFromInt(200)))
	repo.AssertExpectations(t)
}

func TestCreateCard_NegativeUsedLimit(t *testing.T) {
	repo := new(mocks.CardRepository)
	reader := new(readermocks.CustomerReader)
	reader.On("GetCustomerByID", mock.Anything, int64(1)).
		Return(customercontract.NewCustomerInfo(1, "Ana", "ana@gmail.com"), nil)

	cmd := newCommand(1)
	cmd.UsedLimit = amount(-1)
	_, err := NewCreateCardCommandHandler(repo, reader).Handle(context.Background(), cmd)

	assert.Equal(t, errs.ErrInputValidation, errs.GetErrorType(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCard_MissingLimits(t *testing.T) {
	repo := new(mocks.CardRepository)
	reader := new(readermocks.CustomerReader)

	cmd := newCommand(1)
	cmd.TotalLimit = nil
	cmd.AvailableLimit = nil
	var err error
	assert.NotPanics(t, func() {
		_, err = NewCreateCardCommandHandler(repo, reader).Handle(context.Background(), cmd)
	})

	assert.Equal(t, errs.ErrInputValidation, errs.GetErrorType(err))
	reader.AssertNotCalled(t, "GetCustomerByID", mock.Anything, mock.Anything)
}
