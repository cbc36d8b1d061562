package surface_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TennisClubService/internal/domain"
	"github.com/m04kA/SMC-TennisClubService/internal/infra/storage/crud"
	"github.com/m04kA/SMC-TennisClubService/internal/infra/storage/surface"
	"github.com/m04kA/SMC-TennisClubService/internal/testutil"
)

func TestRepository_SoftDeleteLifecycle(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := surface.NewRepository(db)
	ctx := context.Background()

	clay, err := repo.Create(ctx, &domain.Surface{Name: "Clay", PricePerMinute: decimal.RequireFromString("0.5")})
	require.NoError(t, err)
	require.NotZero(t, clay.ID)

	_, err = repo.Create(ctx, &domain.Surface{Name: "Clay", PricePerMinute: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, surface.ErrSurfaceAlreadyExists)

	active, err := repo.GetActiveByID(ctx, clay.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.5").Equal(active.PricePerMinute))

	require.NoError(t, repo.SoftDelete(ctx, clay.ID))
	assert.ErrorIs(t, repo.SoftDelete(ctx, clay.ID), crud.ErrNotFound)

	_, err = repo.GetActiveByID(ctx, clay.ID)
	assert.ErrorIs(t, err, surface.ErrSurfaceNotFound)
	assert.ErrorIs(t, err, crud.ErrNotFound)

	// прямой поиск по id видит удаленную запись
	deleted, err := repo.FindByID(ctx, clay.ID)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// имя освобождается после удаления
	_, err = repo.Create(ctx, &domain.Surface{Name: "Clay", PricePerMinute: decimal.NewFromInt(1)})
	require.NoError(t, err)
}

func TestRepository_UpdateOnlyLiveRows(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := surface.NewRepository(db)
	ctx := context.Background()

	grass, err := repo.Create(ctx, &domain.Surface{Name: "Grass", PricePerMinute: decimal.RequireFromString("0.8")})
	require.NoError(t, err)

	grass.PricePerMinute = decimal.RequireFromString("0.9")
	updated, err := repo.Update(ctx, grass.ID, grass)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.9").Equal(updated.PricePerMinute))

	require.NoError(t, repo.SoftDelete(ctx, grass.ID))
	_, err = repo.Update(ctx, grass.ID, grass)
	assert.ErrorIs(t, err, crud.ErrNotFound)

	_, err = repo.FindByID(ctx, 999999)
	assert.ErrorIs(t, err, crud.ErrNotFound)
}

func TestRepository_CreateReturnsStoredRow(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := surface.NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Surface{Name: "Grass", PricePerMinute: decimal.RequireFromString("0.8")})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.PricePerMinute.String(), created.PricePerMinute.String())
	assert.Equal(t, stored.Name, created.Name)
}
