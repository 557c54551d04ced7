package list

import (
	"context"
	"testing"

	"go-cartmaster/modules/card/internal/model"
	"go-cartmaster/modules/card/internal/repository/mocks"
	"go-cartmaster/shared/contract/cardcontract"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func card(id, ownerID int64) *model.Card {
	return &model.Card{
		ID:             id,
		Number:         "4111111111111111",
		Expiration:     "12/2030",
		Network:        "VISA",
		Status:         model.StatusActive,
		TotalLimit:     decimal.NewFromInt(100),
		AvailableLimit: decimal.NewFromInt(100),
		OwnerID:        ownerID,
		Owner:          model.Owner{ID: ownerID, Name: "Owner", Email: "owner@gmail.com"},
	}
}

func TestListCards(t *testing.T) {
	repo := new(mocks.CardRepository)
	repo.On("FindAll", mock.Anything).Return([]*model.Card{card(1, 10), card(2, 20)}, nil)

	res, err := NewListCardsQueryHandler(repo).Handle(context.Background(), &ListCardsQuery{})

	require.NoError(t, err)
	require.Len(t, res.Cards, 2)
	// ทุกใบมีข้อมูลเจ้าของติดมาด้วย
	assert.Equal(t, int64(10), res.Cards[0].Owner.ID)
	assert.Equal(t, int64(20), res.Cards[1].Owner.ID)
}

func TestListCardsByOwner_UnknownOwnerIsEmpty(t *testing.T) {
	repo := new(mocks.CardRepository)
	repo.On("FindByOwner", mock.Anything, int64(77)).Return([]*model.Card{}, nil)

	res, err := NewListCardsByOwnerQueryHandler(repo).Handle(context.Background(), &ListCardsByOwnerQuery{OwnerID: 77})

	require.NoError(t, err)
	assert.NotNil(t, res.Cards)
	assert.Empty(t, res.Cards)
}

func TestListCardsWithOwners(t *testing.T) {
	repo := new(mocks.CardRepository)
	repo.On("FindAll", mock.Anything).Return([]*model.Card{card(1, 10)}, nil)

	res, err := NewListCardsWithOwnersQueryHandler(repo).Handle(context.Background(), &ListCardsWithOwnersQuery{})

	require.NoError(t, err)
	require.Len(t, res.Cards, 1)
	assert.Equal(t, "4111111111111111", res.Cards[0].Number)
	assert.Equal(t, int64(10), res.Cards[0].Owner.ID)
}

func TestListCardsByOwners(t *testing.T) {
	repo := new(mocks.CardRepository)
	repo.On("FindByOwners", mock.Anything, []int64{10, 20, 30}).
		Return([]*model.Card{card(1, 10), card(2, 10), card(3, 20)}, nil)

	res, err := NewListCardsByOwnersQueryHandler(repo).Handle(context.Background(),
		&cardcontract.ListCardsByOwnersQuery{OwnerIDs: []int64{10, 20, 30}})

	require.NoError(t, err)
	assert.Len(t, res.Cards[10], 2)
	assert.Len(t, res.Cards[20], 1)
	assert.Empty(t, res.Cards[30])
	assert.Equal(t, int64(3), res.Cards[20][0].ID)
}
