package postgres

import (
	"context"
	"testing"

	"foodorder/internal/domain/entity"
	"foodorder/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMenuItem(restaurantID uuid.UUID, name, category string, price float64) *entity.MenuItem {
	return &entity.MenuItem{
		RestaurantID: restaurantID,
		Name:         name,
		Category:     category,
		Price:        price,
		IsAvailable:  true,
	}
}

func TestMenuRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(newTestDB(t))
	restaurantID := uuid.New()

	item := newTestMenuItem(restaurantID, "Paneer Tikka", "Starters", 9.5)
	item.IsVegetarian = true
	require.NoError(t, repo.Create(ctx, item))
	assert.NotEqual(t, uuid.Nil, item.ID)

	found, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paneer Tikka", found.Name)
	assert.True(t, found.IsVegetarian)
	assert.True(t, found.IsAvailable)
	assert.InDelta(t, 9.5, found.Price, 0.001)

	found.Price = 10.25
	found.IsAvailable = false
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.InDelta(t, 10.25, updated.Price, 0.001)
	assert.False(t, updated.IsAvailable)

	require.NoError(t, repo.Delete(ctx, item.ID))
	_, err = repo.FindByID(ctx, item.ID)
	assert.ErrorIs(t, err, repository.ErrMenuItemNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, item.ID), repository.ErrMenuItemNotFound)
	assert.ErrorIs(t, repo.Update(ctx, item), repository.ErrMenuItemNotFound)
}

func TestMenuRepository_FindByRestaurant(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(newTestDB(t))
	restaurantID := uuid.New()

	require.NoError(t, repo.Create(ctx, newTestMenuItem(restaurantID, "Naan", "Breads", 2)))
	require.NoError(t, repo.Create(ctx, newTestMenuItem(restaurantID, "Dal", "Mains", 7)))
	require.NoError(t, repo.Create(ctx, newTestMenuItem(uuid.New(), "Other", "Mains", 5)))

	menu, err := repo.FindByRestaurant(ctx, restaurantID)
	require.NoError(t, err)
	require.Len(t, menu, 2)
	assert.Equal(t, "Naan", menu[0].Name)
	assert.Equal(t, "Dal", menu[1].Name)

	empty, err := repo.FindByRestaurant(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	byIDs, err := repo.FindByIDs(ctx, []uuid.UUID{menu[0].ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, byIDs, 1)
}
