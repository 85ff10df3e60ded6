package postgres

import (
	"context"
	"sync"
	"testing"

	"foodorder/internal/domain/entity"
	"foodorder/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_FindMissingCart(t *testing.T) {
	repo := NewCartRepository(newTestDB(t))

	_, err := repo.FindByCustomer(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}

func TestCartRepository_AddItemMergesAndKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(newTestDB(t))
	customerID := uuid.New()
	naan, dal := uuid.New(), uuid.New()

	cart, err := repo.AddItem(ctx, customerID, naan, 2)
	require.NoError(t, err)
	assert.Equal(t, []entity.CartItem{{MenuItemID: naan, Quantity: 2}}, cart.Items)

	_, err = repo.AddItem(ctx, customerID, dal, 1)
	require.NoError(t, err)

	cart, err = repo.AddItem(ctx, customerID, naan, 3)
	require.NoError(t, err)
	assert.Equal(t, []entity.CartItem{
		{MenuItemID: naan, Quantity: 5},
		{MenuItemID: dal, Quantity: 1},
	}, cart.Items)
	assert.Equal(t, customerID, cart.CustomerID)
}

func TestCartRepository_ConcurrentAddsDoNotLoseQuantity(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(newTestDB(t))
	customerID, itemID := uuid.New(), uuid.New()

	const workers = 8
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.AddItem(ctx, customerID, itemID, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	cart, err := repo.FindByCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, workers, cart.Items[0].Quantity)
}

func TestCartRepository_RemoveItem(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(newTestDB(t))
	customerID, itemID := uuid.New(), uuid.New()

	_, err := repo.RemoveItem(ctx, customerID, itemID)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)

	_, err = repo.AddItem(ctx, customerID, itemID, 1)
	require.NoError(t, err)

	// Removing an absent line is a no-op.
	cart, err := repo.RemoveItem(ctx, customerID, uuid.New())
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	cart, err = repo.RemoveItem(ctx, customerID, itemID)
	require.NoError(t, err)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}

func TestCartRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(newTestDB(t))
	customerID := uuid.New()

	assert.ErrorIs(t, repo.Clear(ctx, customerID), repository.ErrCartNotFound)

	_, err := repo.AddItem(ctx, customerID, uuid.New(), 2)
	require.NoError(t, err)
	require.NoError(t, repo.Clear(ctx, customerID))

	cart, err := repo.FindByCustomer(ctx, customerID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
