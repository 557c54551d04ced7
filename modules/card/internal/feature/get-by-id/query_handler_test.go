package getbyid

import (
	"context"
	"testing"

	"go-cartmaster/modules/card/domainerrors"
	"go-cartmaster/modules/card/internal/model"
	"go-cartmaster/modules/card/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetCardByID(t *testing.T) {
	repo := new(mocks.CardRepository)
	repo.On("FindByID", mock.Anything, int64(1)).Return(&model.Card{ID: 1, Number: "4111111111111111"}, nil)
	repo.On("FindByID", mock.Anything, int64(2)).Return(nil, nil)
	h := NewGetCardByIDQueryHandler(repo)

	res, err := h.Handle(context.Background(), &GetCardByIDQuery{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", res.Number)

	_, err = h.Handle(context.Background(), &GetCardByIDQuery{ID: 2})
	assert.ErrorIs(t, err, domainerrors.ErrCardNotFound)
}
