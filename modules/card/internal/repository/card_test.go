package repository

import (
	"context"
	"testing"

	"go-cartmaster/modules/card/internal/model"
	"go-cartmaster/shared/common/errs"
	"go-cartmaster/shared/common/storage/sqldb/sqldbtest"
	"go-cartmaster/shared/common/storage/sqldb/transactor"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardRepository_Integration(t *testing.T) {
	db, tx, dbCtx := sqldbtest.Open(t)
	repo := NewCardRepository(dbCtx)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `
		INSERT INTO customer.customers (id, name, email, password)
		VALUES (1, 'Ana', 'ana@gmail.com', 'x'), (2, 'Ben', 'ben@correo.com', 'y')`)
	require.NoError(t, err)

	card := model.NewCard(1, "4111111111111111", "12/2030", "VISA", "",
		decimal.RequireFromString("1000.50"), decimal.RequireFromString("800"), decimal.RequireFromString("200.50"))

	t.Run("create returns stored card with owner", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, card))
		assert.Equal(t, "Ana", card.Owner.Name)
		assert.Equal(t, model.StatusActive, card.Status)
		assert.True(t, card.TotalLimit.Equal(decimal.RequireFromString("1000.50")))
	})

	t.Run("round trip by id", func(t *testing.T) {
		got, err := repo.FindByID(ctx, card.ID)
		require.NoError(t, err)
		assert.Equal(t, card.Number, got.Number)
		assert.Equal(t, card.Expiration, got.Expiration)
		assert.True(t, got.AvailableLimit.Equal(card.AvailableLimit))
		assert.True(t, got.UsedLimit.Equal(decimal.RequireFromString("200.50")))
		assert.Equal(t, "ana@gmail.com", got.Owner.Email)
	})

	t.Run("duplicate number", func(t *testing.T) {
		dup := model.NewCard(2, "4111111111111111", "01/2031", "MASTERCARD", "", decimal.Zero, decimal.Zero, decimal.Zero)
		err := repo.Create(ctx, dup)
		assert.True(t, errs.IsUniqueViolation(err, NumberUniqueConstraint))
	})

	t.Run("update inside transaction leaves used limit alone", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `UPDATE card.cards SET used_limit = 42 WHERE id = $1`, card.ID)
		require.NoError(t, err)

		err = tx.WithinTransaction(ctx, func(ctx context.Context, _ func(transactor.PostCommitHook)) error {
			locked, err := repo.FindByIDForUpdate(ctx, card.ID)
			require.NoError(t, err)
			locked.TotalLimit = decimal.NewFromInt(5000)
			locked.UsedLimit = decimal.NewFromInt(999)
			return repo.Update(ctx, locked)
		})
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, card.ID)
		require.NoError(t, err)
		assert.True(t, got.TotalLimit.Equal(decimal.NewFromInt(5000)))
		assert.True(t, got.UsedLimit.Equal(decimal.NewFromInt(42)))
	})

	t.Run("deactivate is idempotent", func(t *testing.T) {
		first, err := repo.Deactivate(ctx, card.ID)
		require.NoError(t, err)
		second, err := repo.Deactivate(ctx, card.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusInactive, first.Status)
		assert.Equal(t, model.StatusInactive, second.Status)

		missing, err := repo.Deactivate(ctx, -1)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("available limit only", func(t *testing.T) {
		got, err := repo.UpdateAvailableLimit(ctx, card.ID, decimal.NewFromInt(9000))
		require.NoError(t, err)
		assert.True(t, got.AvailableLimit.Equal(decimal.NewFromInt(9000)))
		assert.True(t, got.TotalLimit.Equal(decimal.NewFromInt(5000)))
	})

	t.Run("list by owners and delete by owner", func(t *testing.T) {
		other := model.NewCard(2, "5555555555554444", "01/2031", "MASTERCARD", "", decimal.Zero, decimal.Zero, decimal.Zero)
		require.NoError(t, repo.Create(ctx, other))

		cards, err := repo.FindByOwners(ctx, []int64{1, 2, 3})
		require.NoError(t, err)
		assert.Len(t, cards, 2)

		byOwner, err := repo.FindByOwner(ctx, 3)
		require.NoError(t, err)
		assert.Empty(t, byOwner)

		n, err := repo.DeleteByOwner(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, other.ID, all[0].ID)
	})
}
