package repository

import (
	"context"
	"testing"

	"go-cartmaster/modules/auth/internal/model"
	"go-cartmaster/shared/common/storage/sqldb/sqldbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdministratorRepository_Integration(t *testing.T) {
	_, _, dbCtx := sqldbtest.Open(t)
	repo := NewAdministratorRepository(dbCtx)
	ctx := context.Background()

	created, err := repo.CreateIfAbsent(ctx, model.NewAdministrator("root@correo.com", "admin"))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(ctx, model.NewAdministrator("root@correo.com", "other"))
	require.NoError(t, err)
	assert.False(t, created)

	admin, err := repo.FindByEmail(ctx, "root@correo.com")
	require.NoError(t, err)
	assert.True(t, admin.PasswordMatches("admin"))

	admin, err = repo.FindByEmail(ctx, "nobody@correo.com")
	require.NoError(t, err)
	assert.Nil(t, admin)
}
