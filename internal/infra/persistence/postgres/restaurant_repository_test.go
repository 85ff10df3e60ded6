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

func newTestRestaurant(ownerID uuid.UUID, name string) *entity.Restaurant {
	restaurant := &entity.Restaurant{
		OwnerID: ownerID,
		Name:    name,
		Address: "12 Market Street",
		Phone:   "+1 555 010 9999",
	}
	restaurant.ApplyDefaults()

	return restaurant
}

func TestRestaurantRepository_CreateFindUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewRestaurantRepository(newTestDB(t))
	ownerID := uuid.New()

	restaurant := newTestRestaurant(ownerID, "Spice Hub")
	require.NoError(t, repo.Create(ctx, restaurant))
	assert.NotEqual(t, uuid.Nil, restaurant.ID)

	mine, err := repo.FindByOwnerID(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, mine.ID)
	assert.Equal(t, entity.DefaultRestaurantRating, mine.Rating)
	assert.Equal(t, entity.DefaultRestaurantDeliveryTime, mine.DeliveryTime)

	mine.Name = "Spice Hub Express"
	mine.Rating = 4.8
	require.NoError(t, repo.Update(ctx, mine))

	updated, err := repo.FindByID(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spice Hub Express", updated.Name)
	assert.InDelta(t, 4.8, updated.Rating, 0.001)
}

func TestRestaurantRepository_OneRestaurantPerOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewRestaurantRepository(newTestDB(t))
	ownerID := uuid.New()

	require.NoError(t, repo.Create(ctx, newTestRestaurant(ownerID, "First")))

	err := repo.Create(ctx, newTestRestaurant(ownerID, "Second"))
	assert.ErrorIs(t, err, repository.ErrDuplicateRestaurantOwner)
}

func TestRestaurantRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewRestaurantRepository(newTestDB(t))

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)

	_, err = repo.FindByOwnerID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)

	err = repo.Update(ctx, newTestRestaurant(uuid.New(), "Ghost"))
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)
}

func TestRestaurantRepository_ListAndFindByIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewRestaurantRepository(newTestDB(t))

	zest := newTestRestaurant(uuid.New(), "Zest")
	bistro := newTestRestaurant(uuid.New(), "Bistro")
	require.NoError(t, repo.Create(ctx, zest))
	require.NoError(t, repo.Create(ctx, bistro))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Bistro", all[0].Name)
	assert.Equal(t, "Zest", all[1].Name)

	some, err := repo.FindByIDs(ctx, []uuid.UUID{zest.ID})
	require.NoError(t, err)
	require.Len(t, some, 1)
	assert.Equal(t, zest.ID, some[0].ID)
}
