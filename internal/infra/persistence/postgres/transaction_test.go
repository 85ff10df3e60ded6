package postgres

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/domain/entity"
	"foodorder/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsAllWrites(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	customerID := uuid.New()

	_, err := NewCartRepository(db).AddItem(ctx, customerID, uuid.New(), 1)
	require.NoError(t, err)

	order := newTestOrder(customerID, uuid.New(), time.Now())
	err = txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.OrderRepo().Create(ctx, order); err != nil {
			return err
		}

		return f.CartRepo().Clear(ctx, customerID)
	})
	require.NoError(t, err)

	_, err = NewOrderRepository(db).FindByID(ctx, order.ID)
	require.NoError(t, err)

	cart, err := NewCartRepository(db).FindByCustomer(ctx, customerID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	customerID := uuid.New()

	_, err := NewCartRepository(db).AddItem(ctx, customerID, uuid.New(), 1)
	require.NoError(t, err)

	boom := errors.New("boom")
	order := newTestOrder(customerID, uuid.New(), time.Now())
	err = txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.OrderRepo().Create(ctx, order); err != nil {
			return err
		}
		if err := f.CartRepo().Clear(ctx, customerID); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	orders, err := NewOrderRepository(db).FindByCustomer(ctx, customerID)
	require.NoError(t, err)
	assert.Empty(t, orders)

	cart, err := NewCartRepository(db).FindByCustomer(ctx, customerID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestTransactionManager_FactoryReposShareTransaction(t *testing.T) {
	ctx := context.Background()
	txManager := NewTransactionManager(newTestDB(t))

	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		user := &entity.User{Name: "Owner", Email: "owner@example.com", PasswordHash: "h", Role: entity.RoleOwner}
		if err := f.UserRepo().Create(ctx, user); err != nil {
			return err
		}

		restaurant := newTestRestaurant(user.ID, "Tx Kitchen")
		if err := f.RestaurantRepo().Create(ctx, restaurant); err != nil {
			return err
		}

		if err := f.MenuRepo().Create(ctx, newTestMenuItem(restaurant.ID, "Soup", "Starters", 4)); err != nil {
			return err
		}

		found, err := f.RestaurantRepo().FindByOwnerID(ctx, user.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, restaurant.ID, found.ID)

		return nil
	})
	require.NoError(t, err)
}
