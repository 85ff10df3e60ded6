package postgres

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/domain/entity"
	"foodorder/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(customerID, restaurantID uuid.UUID, createdAt time.Time) *entity.Order {
	return &entity.Order{
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Items: []entity.OrderItem{
			{MenuItemID: uuid.New(), Name: "Naan", Quantity: 2, Price: 2.5},
			{MenuItemID: uuid.New(), Name: "Dal", Quantity: 1, Price: 7.25},
		},
		TotalAmount:     12.25,
		DeliveryAddress: "221B Baker Street",
		PaymentMethod:   "cash",
		Status:          entity.OrderStatusCreated,
		CreatedAt:       createdAt,
	}
}

func TestOrderRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	order := newTestOrder(uuid.New(), uuid.New(), time.Now())
	require.NoError(t, repo.Create(ctx, order))
	assert.NotEqual(t, uuid.Nil, order.ID)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Items, found.Items)
	assert.InDelta(t, 12.25, found.TotalAmount, 0.001)
	assert.Equal(t, entity.OrderStatusCreated, found.Status)
	assert.Equal(t, "221B Baker Street", found.DeliveryAddress)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_ListsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))
	customerID, restaurantID := uuid.New(), uuid.New()
	base := time.Now().Add(-time.Hour)

	older := newTestOrder(customerID, restaurantID, base)
	newer := newTestOrder(customerID, restaurantID, base.Add(10*time.Minute))
	foreign := newTestOrder(uuid.New(), uuid.New(), base.Add(20*time.Minute))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, foreign))

	byCustomer, err := repo.FindByCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, byCustomer, 2)
	assert.Equal(t, newer.ID, byCustomer[0].ID)
	assert.Equal(t, older.ID, byCustomer[1].ID)

	byRestaurant, err := repo.FindByRestaurant(ctx, restaurantID)
	require.NoError(t, err)
	assert.Len(t, byRestaurant, 2)

	none, err := repo.FindByCustomer(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrderRepository_UpdateStatusIsGuarded(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	order := newTestOrder(uuid.New(), uuid.New(), time.Now())
	require.NoError(t, repo.Create(ctx, order))

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, entity.OrderStatusCreated, entity.OrderStatusConfirmed))

	// A second writer that still believes the order is created loses.
	err := repo.UpdateStatus(ctx, order.ID, entity.OrderStatusCreated, entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, repository.ErrOrderStatusMismatch)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, found.Status)

	err = repo.UpdateStatus(ctx, uuid.New(), entity.OrderStatusCreated, entity.OrderStatusConfirmed)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
