package impl

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/domain/entity"
	domainerrors "foodorder/internal/domain/errors"
	"foodorder/internal/domain/repository"
	"foodorder/internal/domain/service"
	mockRepo "foodorder/internal/mocks/repository"
	mockSvc "foodorder/internal/mocks/service"
	"foodorder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service        usecase.OrderUsecase
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	userRepo       *mockRepo.MockUserRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
	menuRepo       *mockRepo.MockMenuRepository
	cartRepo       *mockRepo.MockCartRepository
	orderRepo      *mockRepo.MockOrderRepository
	publisher      *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fixtures := orderServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
		menuRepo:       mockRepo.NewMockMenuRepository(t),
		cartRepo:       mockRepo.NewMockCartRepository(t),
		orderRepo:      mockRepo.NewMockOrderRepository(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
	}

	fixtures.service = NewOrderService(OrderServiceParams{
		TxManager:      fixtures.txManager,
		UserRepo:       fixtures.userRepo,
		RestaurantRepo: fixtures.restaurantRepo,
		MenuRepo:       fixtures.menuRepo,
		OrderRepo:      fixtures.orderRepo,
		Publisher:      fixtures.publisher,
		Logger:         newDiscardLogger(),
	})

	return fixtures
}

// inTransaction routes the factory to the fixture repositories.
func (f orderServiceFixtures) inTransaction() {
	expectTransaction(f.txManager, f.factory)
	f.factory.EXPECT().CartRepo().Return(f.cartRepo).Maybe()
	f.factory.EXPECT().MenuRepo().Return(f.menuRepo).Maybe()
	f.factory.EXPECT().OrderRepo().Return(f.orderRepo).Maybe()
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customer := &entity.User{ID: uuid.New(), Name: "Asha", Email: "asha@example.com"}
	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "Spice Route", Address: "12 Curry Lane"}
	naan := &entity.MenuItem{ID: uuid.New(), RestaurantID: restaurant.ID, Name: "Naan", Price: 2.5}
	dal := &entity.MenuItem{ID: uuid.New(), RestaurantID: restaurant.ID, Name: "Dal", Price: 7.25}
	cart := &entity.Cart{CustomerID: customer.ID, Items: []entity.CartItem{
		{MenuItemID: naan.ID, Quantity: 2},
		{MenuItemID: dal.ID, Quantity: 1},
	}}

	fx.inTransaction()
	fx.cartRepo.EXPECT().FindByCustomer(ctx, customer.ID).Return(cart, nil)
	fx.menuRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{naan.ID, dal.ID}).Return([]*entity.MenuItem{naan, dal}, nil)

	var created *entity.Order
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
			order.CreatedAt = time.Now()
			created = order
		}).
		Return(nil)
	fx.cartRepo.EXPECT().Clear(ctx, customer.ID).Return(nil)

	fx.restaurantRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{restaurant.ID}).Return([]*entity.Restaurant{restaurant}, nil)
	fx.userRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{customer.ID}).Return([]*entity.User{customer}, nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == service.OrderEventCreated &&
				e.RestaurantName == "Spice Route" &&
				e.Status == "created" &&
				e.EventID != ""
		})).
		Return(nil)

	view, err := fx.service.CreateOrder(ctx, customer.ID, &usecase.CreateOrderInput{DeliveryAddress: "5 Elm St", PaymentMethod: "cash"})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, entity.OrderStatusCreated, view.Status)
	assert.Equal(t, restaurant.ID, view.RestaurantID)
	assert.Equal(t, 12.25, view.TotalAmount)
	assert.Equal(t, "5 Elm St", view.DeliveryAddress)
	assert.Equal(t, "Spice Route", view.Restaurant.Name)
	assert.Equal(t, "asha@example.com", view.Customer.Email)
	require.Len(t, view.Items, 2)
	assert.Equal(t, 2.5, view.Items[0].Price)
	assert.Equal(t, naan, view.Items[0].MenuItem)
}

func TestOrderService_CreateOrder_UsesCurrentPrices(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customerID := uuid.New()
	restaurantID := uuid.New()
	item := &entity.MenuItem{ID: uuid.New(), RestaurantID: restaurantID, Name: "Thali", Price: 3.333}
	cart := &entity.Cart{CustomerID: customerID, Items: []entity.CartItem{{MenuItemID: item.ID, Quantity: 3}}}

	fx.inTransaction()
	fx.cartRepo.EXPECT().FindByCustomer(ctx, customerID).Return(cart, nil)
	fx.menuRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.MenuItem{item}, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.cartRepo.EXPECT().Clear(ctx, customerID).Return(nil)
	fx.restaurantRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return(nil, nil)
	fx.userRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return(nil, nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	view, err := fx.service.CreateOrder(ctx, customerID, &usecase.CreateOrderInput{})
	require.NoError(t, err)
	assert.Equal(t, 10.0, view.TotalAmount)
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	tests := []struct {
		name    string
		cart    *entity.Cart
		findErr error
	}{
		{name: "no cart", findErr: repository.ErrCartNotFound},
		{name: "cart without lines", cart: &entity.Cart{Items: []entity.CartItem{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()
			customerID := uuid.New()

			fx.inTransaction()
			fx.cartRepo.EXPECT().FindByCustomer(ctx, customerID).Return(tt.cart, tt.findErr)

			_, err := fx.service.CreateOrder(ctx, customerID, &usecase.CreateOrderInput{})
			assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
		})
	}
}

func TestOrderService_CreateOrder_MixedRestaurants(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customerID := uuid.New()
	first := &entity.MenuItem{ID: uuid.New(), RestaurantID: uuid.New(), Price: 1}
	second := &entity.MenuItem{ID: uuid.New(), RestaurantID: uuid.New(), Price: 1}
	cart := &entity.Cart{CustomerID: customerID, Items: []entity.CartItem{
		{MenuItemID: first.ID, Quantity: 1},
		{MenuItemID: second.ID, Quantity: 1},
	}}

	fx.inTransaction()
	fx.cartRepo.EXPECT().FindByCustomer(ctx, customerID).Return(cart, nil)
	fx.menuRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.MenuItem{first, second}, nil)

	_, err := fx.service.CreateOrder(ctx, customerID, &usecase.CreateOrderInput{})
	assert.ErrorIs(t, err, domainerrors.ErrMixedRestaurants)
}

func TestOrderService_CreateOrder_DanglingMenuItem(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customerID := uuid.New()
	cart := &entity.Cart{CustomerID: customerID, Items: []entity.CartItem{{MenuItemID: uuid.New(), Quantity: 1}}}

	fx.inTransaction()
	fx.cartRepo.EXPECT().FindByCustomer(ctx, customerID).Return(cart, nil)
	fx.menuRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.MenuItem{}, nil)

	_, err := fx.service.CreateOrder(ctx, customerID, &usecase.CreateOrderInput{})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DANGLING_MENU_ITEM", appErr.ErrorCode())
}

func TestOrderService_CreateOrder_ClearFailureRollsBack(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customerID := uuid.New()
	item := &entity.MenuItem{ID: uuid.New(), RestaurantID: uuid.New(), Price: 1}
	cart := &entity.Cart{CustomerID: customerID, Items: []entity.CartItem{{MenuItemID: item.ID, Quantity: 1}}}

	fx.inTransaction()
	fx.cartRepo.EXPECT().FindByCustomer(ctx, customerID).Return(cart, nil)
	fx.menuRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.MenuItem{item}, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.cartRepo.EXPECT().Clear(ctx, customerID).Return(errors.New("connection reset"))

	_, err := fx.service.CreateOrder(ctx, customerID, &usecase.CreateOrderInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear cart")
}

func TestOrderService_CreateOrder_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customerID := uuid.New()
	item := &entity.MenuItem{ID: uuid.New(), RestaurantID: uuid.New(), Price: 4}
	cart := &entity.Cart{CustomerID: customerID, Items: []entity.CartItem{{MenuItemID: item.ID, Quantity: 1}}}

	fx.inTransaction()
	fx.cartRepo.EXPECT().FindByCustomer(ctx, customerID).Return(cart, nil)
	fx.menuRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.MenuItem{item}, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.cartRepo.EXPECT().Clear(ctx, customerID).Return(nil)
	fx.restaurantRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return(nil, nil)
	fx.userRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return(nil, nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	view, err := fx.service.CreateOrder(ctx, customerID, &usecase.CreateOrderInput{})
	require.NoError(t, err)
	assert.Equal(t, 4.0, view.TotalAmount)
}

func TestOrderService_ListRestaurantOrders(t *testing.T) {
	t.Run("resolves customers", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		ownerID := uuid.New()
		restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: ownerID}
		customer := &entity.User{ID: uuid.New(), Name: "Asha", Email: "asha@example.com"}
		orders := []*entity.Order{{ID: uuid.New(), CustomerID: customer.ID, RestaurantID: restaurant.ID, Status: entity.OrderStatusCreated}}

		fx.restaurantRepo.EXPECT().FindByOwnerID(ctx, ownerID).Return(restaurant, nil)
		fx.orderRepo.EXPECT().FindByRestaurant(ctx, restaurant.ID).Return(orders, nil)
		fx.userRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{customer.ID}).Return([]*entity.User{customer}, nil)

		views, err := fx.service.ListRestaurantOrders(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Asha", views[0].Customer.Name)
		assert.Nil(t, views[0].Restaurant)
	})

	t.Run("owner without restaurant", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		ownerID := uuid.New()

		fx.restaurantRepo.EXPECT().FindByOwnerID(ctx, ownerID).Return(nil, repository.ErrRestaurantNotFound)

		_, err := fx.service.ListRestaurantOrders(ctx, ownerID)
		assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
	})
}

func TestOrderService_ListCustomerOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customerID := uuid.New()
	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "Spice Route"}
	orders := []*entity.Order{{ID: uuid.New(), CustomerID: customerID, RestaurantID: restaurant.ID}}

	fx.orderRepo.EXPECT().FindByCustomer(ctx, customerID).Return(orders, nil)
	fx.restaurantRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{restaurant.ID}).Return([]*entity.Restaurant{restaurant}, nil)

	views, err := fx.service.ListCustomerOrders(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Spice Route", views[0].Restaurant.Name)
	assert.Nil(t, views[0].Customer)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	ownerID := uuid.New()
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerID: ownerID, Name: "Spice Route"}

	newOrder := func(status entity.OrderStatus) *entity.Order {
		return &entity.Order{ID: uuid.New(), CustomerID: uuid.New(), RestaurantID: restaurant.ID, Status: status}
	}

	t.Run("valid transition", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := newOrder(entity.OrderStatusCreated)

		fx.restaurantRepo.EXPECT().FindByOwnerID(ctx, ownerID).Return(restaurant, nil)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		fx.orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusCreated, entity.OrderStatusConfirmed).Return(nil)
		fx.userRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return(nil, nil)
		fx.publisher.EXPECT().
			PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
				return e.Type == service.OrderEventStatusChanged &&
					e.Status == "confirmed" &&
					e.PreviousStatus == "created" &&
					e.RestaurantName == "Spice Route"
			})).
			Return(nil)

		view, err := fx.service.UpdateOrderStatus(ctx, ownerID, order.ID, "confirmed")
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusConfirmed, view.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.UpdateOrderStatus(context.Background(), ownerID, uuid.New(), "teleported")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
	})

	t.Run("skipping a step", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := newOrder(entity.OrderStatusCreated)

		fx.restaurantRepo.EXPECT().FindByOwnerID(ctx, ownerID).Return(restaurant, nil)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.UpdateOrderStatus(ctx, ownerID, order.ID, "delivered")

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
	})

	t.Run("terminal order", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := newOrder(entity.OrderStatusDelivered)

		fx.restaurantRepo.EXPECT().FindByOwnerID(ctx, ownerID).Return(restaurant, nil)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.UpdateOrderStatus(ctx, ownerID, order.ID, "cancelled")
		require.Error(t, err)
	})

	t.Run("order of another restaurant", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := newOrder(entity.OrderStatusCreated)
		order.RestaurantID = uuid.New()

		fx.restaurantRepo.EXPECT().FindByOwnerID(ctx, ownerID).Return(restaurant, nil)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.UpdateOrderStatus(ctx, ownerID, order.ID, "confirmed")
		assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
	})

	t.Run("missing order", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		orderID := uuid.New()

		fx.restaurantRepo.EXPECT().FindByOwnerID(ctx, ownerID).Return(restaurant, nil)
		fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.UpdateOrderStatus(ctx, ownerID, orderID, "confirmed")
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})

	t.Run("lost race", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := newOrder(entity.OrderStatusConfirmed)

		fx.restaurantRepo.EXPECT().FindByOwnerID(ctx, ownerID).Return(restaurant, nil)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		fx.orderRepo.EXPECT().
			UpdateStatus(ctx, order.ID, entity.OrderStatusConfirmed, entity.OrderStatusPreparing).
			Return(repository.ErrOrderStatusMismatch)

		_, err := fx.service.UpdateOrderStatus(ctx, ownerID, order.ID, "preparing")
		assert.ErrorIs(t, err, domainerrors.ErrOrderStatusConflict)
	})
}
