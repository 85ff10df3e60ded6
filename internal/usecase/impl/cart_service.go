package impl

import (
	"context"
	"log/slog"

	deliverycontext "foodorder/internal/delivery/context"
	"foodorder/internal/domain/entity"
	domainerrors "foodorder/internal/domain/errors"
	"foodorder/internal/domain/repository"
	"foodorder/internal/usecase"
	"foodorder/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo       repository.CartRepository
	menuRepo       repository.MenuRepository
	restaurantRepo repository.RestaurantRepository
	logger         *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo       repository.CartRepository
	MenuRepo       repository.MenuRepository
	RestaurantRepo repository.RestaurantRepository
	Logger         *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:       params.CartRepo,
		menuRepo:       params.MenuRepo,
		restaurantRepo: params.RestaurantRepo,
		logger:         params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem merges quantity into the customer's cart. The cart is created on first use.
func (srv *cartService) AddItem(ctx context.Context, customerID, menuItemID uuid.UUID, quantity int) (*usecase.CartView, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	if _, err := srv.menuRepo.FindByID(ctx, menuItemID); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	cart, err := srv.cartRepo.AddItem(ctx, customerID, menuItemID, quantity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add item to cart")
	}

	srv.log(ctx).Debug("Cart item added",
		slog.String("customerID", customerID.String()),
		slog.String("menuItemID", menuItemID.String()),
		slog.Int("quantity", quantity),
	)

	return srv.resolve(ctx, cart)
}

// RemoveItem drops a line from an existing cart.
func (srv *cartService) RemoveItem(ctx context.Context, customerID, menuItemID uuid.UUID) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.RemoveItem(ctx, customerID, menuItemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to remove item from cart")
	}

	return srv.resolve(ctx, cart)
}

// GetCart returns the resolved cart, or an empty one when the customer has none.
func (srv *cartService) GetCart(ctx context.Context, customerID uuid.UUID) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(err, "failed to find cart")
		}
		cart = entity.NewEmptyCart(customerID)
	}

	return srv.resolve(ctx, cart)
}

// resolve attaches current menu items and their restaurants. Deleted items stay as
// lines with a nil MenuItem and do not count towards the subtotal.
func (srv *cartService) resolve(ctx context.Context, cart *entity.Cart) (*usecase.CartView, error) {
	menuItems, err := loadMenuItems(ctx, srv.menuRepo, cart.MenuItemIDs())
	if err != nil {
		return nil, err
	}

	restaurantIDs := make([]uuid.UUID, 0, len(menuItems))
	for _, item := range menuItems {
		restaurantIDs = append(restaurantIDs, item.RestaurantID)
	}
	restaurants, err := loadRestaurants(ctx, srv.restaurantRepo, restaurantIDs)
	if err != nil {
		return nil, err
	}

	view := &usecase.CartView{
		CustomerID: cart.CustomerID,
		Items:      make([]usecase.CartLine, 0, len(cart.Items)),
		UpdatedAt:  cart.UpdatedAt,
	}

	var subtotal float64
	for _, line := range cart.Items {
		cartLine := usecase.CartLine{MenuItemID: line.MenuItemID, Quantity: line.Quantity}
		if item, ok := menuItems[line.MenuItemID]; ok {
			cartLine.MenuItem = &usecase.MenuItemDetail{
				MenuItem:   item,
				Restaurant: restaurants[item.RestaurantID].Summary(),
			}
			subtotal += float64(line.Quantity) * item.Price
		}
		view.Items = append(view.Items, cartLine)
	}
	view.Subtotal = util.RoundCurrency(subtotal)

	return view, nil
}
