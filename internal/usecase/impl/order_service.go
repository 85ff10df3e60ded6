package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "foodorder/internal/delivery/context"
	"foodorder/internal/domain/entity"
	domainerrors "foodorder/internal/domain/errors"
	"foodorder/internal/domain/repository"
	"foodorder/internal/domain/service"
	"foodorder/internal/usecase"
	"foodorder/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	menuRepo       repository.MenuRepository
	orderRepo      repository.OrderRepository
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	RestaurantRepo repository.RestaurantRepository
	MenuRepo       repository.MenuRepository
	OrderRepo      repository.OrderRepository
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		restaurantRepo: params.RestaurantRepo,
		menuRepo:       params.MenuRepo,
		orderRepo:      params.OrderRepo,
		publisher:      params.Publisher,
		logger:         params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder checks out the customer's cart. The order insert and the cart clear
// commit together, so a failure leaves the cart untouched.
func (srv *orderService) CreateOrder(ctx context.Context, customerID uuid.UUID, input *usecase.CreateOrderInput) (*usecase.OrderView, error) {
	if input == nil {
		input = &usecase.CreateOrderInput{}
	}

	var (
		order     *entity.Order
		menuItems map[uuid.UUID]*entity.MenuItem
	)

	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		cart, err := f.CartRepo().FindByCustomer(ctx, customerID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrCartEmpty
			}

			return errors.Wrap(err, "failed to load cart")
		}
		if cart.IsEmpty() {
			return domainerrors.ErrCartEmpty
		}

		if menuItems, err = loadMenuItems(ctx, f.MenuRepo(), cart.MenuItemIDs()); err != nil {
			return err
		}

		if order, err = buildOrder(cart, menuItems, input); err != nil {
			return err
		}

		if err := f.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := f.CartRepo().Clear(ctx, customerID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", order.ID.String()),
		slog.String("restaurantID", order.RestaurantID.String()),
		slog.String("totalAmount", util.FormatCurrency(order.TotalAmount)),
	)

	views, err := buildOrderViews(ctx, srv.menuRepo, srv.restaurantRepo, srv.userRepo,
		[]*entity.Order{order}, orderViewOptions{withRestaurant: true, withCustomer: true})
	if err != nil {
		return nil, err
	}
	view := views[0]

	srv.publish(ctx, service.OrderEventCreated, order, "", view.Restaurant)

	return view, nil
}

// buildOrder snapshots the cart using the current menu prices.
func buildOrder(cart *entity.Cart, menuItems map[uuid.UUID]*entity.MenuItem, input *usecase.CreateOrderInput) (*entity.Order, error) {
	order := &entity.Order{
		CustomerID:      cart.CustomerID,
		Items:           make([]entity.OrderItem, 0, len(cart.Items)),
		DeliveryAddress: strings.TrimSpace(input.DeliveryAddress),
		PaymentMethod:   strings.TrimSpace(input.PaymentMethod),
		Notes:           input.Notes,
		Status:          entity.OrderStatusCreated,
	}

	for _, line := range cart.Items {
		if _, ok := menuItems[line.MenuItemID]; !ok {
			return nil, domainerrors.ErrDanglingMenuItem.WithDetails("menu item " + line.MenuItemID.String() + " no longer exists")
		}
	}

	var total float64
	for _, line := range cart.Items {
		item := menuItems[line.MenuItemID]
		if order.RestaurantID == uuid.Nil {
			order.RestaurantID = item.RestaurantID
		} else if order.RestaurantID != item.RestaurantID {
			return nil, domainerrors.ErrMixedRestaurants
		}

		order.Items = append(order.Items, entity.OrderItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			Quantity:   line.Quantity,
			Price:      item.Price,
		})
		total += float64(line.Quantity) * item.Price
	}
	order.TotalAmount = util.RoundCurrency(total)

	return order, nil
}

// ListCustomerOrders returns the customer's orders with their restaurants.
func (srv *orderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*usecase.OrderView, error) {
	orders, err := srv.orderRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return buildOrderViews(ctx, srv.menuRepo, srv.restaurantRepo, srv.userRepo, orders, orderViewOptions{withRestaurant: true})
}

// ListRestaurantOrders returns the orders of the owner's restaurant with their customers.
func (srv *orderService) ListRestaurantOrders(ctx context.Context, ownerID uuid.UUID) ([]*usecase.OrderView, error) {
	restaurant, err := findRestaurantByOwner(ctx, srv.restaurantRepo, ownerID)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.FindByRestaurant(ctx, restaurant.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurant orders")
	}

	return buildOrderViews(ctx, srv.menuRepo, srv.restaurantRepo, srv.userRepo, orders, orderViewOptions{withCustomer: true})
}

// UpdateOrderStatus moves an order along the status machine. The write only applies
// while the order still holds the status that was read.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, ownerID, orderID uuid.UUID, status string) (*usecase.OrderView, error) {
	next := entity.OrderStatus(strings.TrimSpace(status))
	if !next.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails("unknown status: " + status)
	}

	restaurant, err := findRestaurantByOwner(ctx, srv.restaurantRepo, ownerID)
	if err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.RestaurantID != restaurant.ID {
		srv.log(ctx).Warn("Order ownership violation",
			slog.String("orderID", orderID.String()),
			slog.String("ownerID", ownerID.String()),
		)

		return nil, domainerrors.ErrOrderOwnershipViolation
	}

	previous := order.Status
	if !previous.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(previous.String() + " -> " + next.String())
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, previous, next); err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderStatusMismatch):
			return nil, domainerrors.ErrOrderStatusConflict
		case errors.Is(err, repository.ErrOrderNotFound):
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	order.Status = next
	order.UpdatedAt = time.Now()

	srv.log(ctx).Info("Order status updated",
		slog.String("orderID", orderID.String()),
		slog.String("from", previous.String()),
		slog.String("to", next.String()),
	)

	views, err := buildOrderViews(ctx, srv.menuRepo, srv.restaurantRepo, srv.userRepo,
		[]*entity.Order{order}, orderViewOptions{withCustomer: true})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, service.OrderEventStatusChanged, order, previous, restaurant.Summary())

	return views[0], nil
}

// publish sends an order event. Failures are logged only since the order is already committed.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order, previous entity.OrderStatus, restaurant *entity.RestaurantSummary) {
	event := &service.OrderEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.NewString(),
		Type:         eventType,
		OrderID:      order.ID.String(),
		CustomerID:   order.CustomerID.String(),
		RestaurantID: order.RestaurantID.String(),
		Status:       order.Status.String(),
		TotalAmount:  order.TotalAmount,
		OccurredAt:   time.Now().UTC(),
	}
	if previous != "" {
		event.PreviousStatus = previous.String()
	}
	if restaurant != nil {
		event.RestaurantName = restaurant.Name
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("eventType", eventType),
			slog.String("orderID", event.OrderID),
			slog.Any("error", err),
		)
	}
}
