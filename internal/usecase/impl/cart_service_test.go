package impl

import (
	"context"
	"testing"

	"foodorder/internal/domain/entity"
	domainerrors "foodorder/internal/domain/errors"
	"foodorder/internal/domain/repository"
	mockRepo "foodorder/internal/mocks/repository"
	"foodorder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service        usecase.CartUsecase
	cartRepo       *mockRepo.MockCartRepository
	menuRepo       *mockRepo.MockMenuRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	menuRepo := mockRepo.NewMockMenuRepository(t)
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)

	service := NewCartService(CartServiceParams{
		CartRepo:       cartRepo,
		MenuRepo:       menuRepo,
		RestaurantRepo: restaurantRepo,
		Logger:         newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:        service,
		cartRepo:       cartRepo,
		menuRepo:       menuRepo,
		restaurantRepo: restaurantRepo,
	}
}

func TestCartService_AddItem_ResolvesLines(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	customerID := uuid.New()
	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "Spice Route", Address: "12 Curry Lane"}
	naan := &entity.MenuItem{ID: uuid.New(), RestaurantID: restaurant.ID, Name: "Naan", Price: 2.5}
	cart := &entity.Cart{CustomerID: customerID, Items: []entity.CartItem{{MenuItemID: naan.ID, Quantity: 3}}}

	fx.menuRepo.EXPECT().FindByID(ctx, naan.ID).Return(naan, nil)
	fx.cartRepo.EXPECT().AddItem(ctx, customerID, naan.ID, 3).Return(cart, nil)
	fx.menuRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{naan.ID}).Return([]*entity.MenuItem{naan}, nil)
	fx.restaurantRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{restaurant.ID}).Return([]*entity.Restaurant{restaurant}, nil)

	view, err := fx.service.AddItem(ctx, customerID, naan.ID, 3)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, "Naan", view.Items[0].MenuItem.Name)
	assert.Equal(t, "Spice Route", view.Items[0].MenuItem.Restaurant.Name)
	assert.Equal(t, 7.5, view.Subtotal)
}

func TestCartService_AddItem_RejectsQuantity(t *testing.T) {
	for _, quantity := range []int{0, -2} {
		fx := createTestCartService(t)

		_, err := fx.service.AddItem(context.Background(), uuid.New(), uuid.New(), quantity)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	}
}

func TestCartService_AddItem_UnknownMenuItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	itemID := uuid.New()

	fx.menuRepo.EXPECT().FindByID(ctx, itemID).Return(nil, repository.ErrMenuItemNotFound)

	_, err := fx.service.AddItem(ctx, uuid.New(), itemID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrMenuItemNotFound)
}

func TestCartService_GetCart_EmptyWhenMissing(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	customerID := uuid.New()

	fx.cartRepo.EXPECT().FindByCustomer(ctx, customerID).Return(nil, repository.ErrCartNotFound)

	view, err := fx.service.GetCart(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, customerID, view.CustomerID)
	assert.NotNil(t, view.Items)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Subtotal)
}

func TestCartService_GetCart_SkipsDeletedItems(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	customerID := uuid.New()
	restaurantID := uuid.New()
	dal := &entity.MenuItem{ID: uuid.New(), RestaurantID: restaurantID, Name: "Dal", Price: 7.25}
	deletedID := uuid.New()
	cart := &entity.Cart{CustomerID: customerID, Items: []entity.CartItem{
		{MenuItemID: deletedID, Quantity: 2},
		{MenuItemID: dal.ID, Quantity: 2},
	}}

	fx.cartRepo.EXPECT().FindByCustomer(ctx, customerID).Return(cart, nil)
	fx.menuRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{deletedID, dal.ID}).Return([]*entity.MenuItem{dal}, nil)
	fx.restaurantRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return(nil, nil)

	view, err := fx.service.GetCart(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Nil(t, view.Items[0].MenuItem)
	assert.Equal(t, "Dal", view.Items[1].MenuItem.Name)
	assert.Nil(t, view.Items[1].MenuItem.Restaurant)
	assert.Equal(t, 14.5, view.Subtotal)
}

func TestCartService_RemoveItem(t *testing.T) {
	t.Run("missing cart", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()
		customerID := uuid.New()
		itemID := uuid.New()

		fx.cartRepo.EXPECT().RemoveItem(ctx, customerID, itemID).Return(nil, repository.ErrCartNotFound)

		_, err := fx.service.RemoveItem(ctx, customerID, itemID)
		assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
	})

	t.Run("absent line is a no-op", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()
		customerID := uuid.New()
		itemID := uuid.New()

		fx.cartRepo.EXPECT().RemoveItem(ctx, customerID, itemID).Return(entity.NewEmptyCart(customerID), nil)

		view, err := fx.service.RemoveItem(ctx, customerID, itemID)
		require.NoError(t, err)
		assert.Empty(t, view.Items)
	})
}
