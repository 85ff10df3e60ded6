package impl

import (
	"context"

	"foodorder/internal/domain/entity"
	"foodorder/internal/domain/repository"
	"foodorder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// uniqueIDs drops duplicates and nil IDs while keeping first-seen order.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

func indexByID[T any](items []*T, idOf func(*T) uuid.UUID) map[uuid.UUID]*T {
	index := make(map[uuid.UUID]*T, len(items))
	for _, item := range items {
		index[idOf(item)] = item
	}

	return index
}

func loadMenuItems(ctx context.Context, repo repository.MenuRepository, ids []uuid.UUID) (map[uuid.UUID]*entity.MenuItem, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return map[uuid.UUID]*entity.MenuItem{}, nil
	}

	items, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load menu items")
	}

	return indexByID(items, func(m *entity.MenuItem) uuid.UUID { return m.ID }), nil
}

func loadRestaurants(ctx context.Context, repo repository.RestaurantRepository, ids []uuid.UUID) (map[uuid.UUID]*entity.Restaurant, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return map[uuid.UUID]*entity.Restaurant{}, nil
	}

	restaurants, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load restaurants")
	}

	return indexByID(restaurants, func(r *entity.Restaurant) uuid.UUID { return r.ID }), nil
}

func loadUsers(ctx context.Context, repo repository.UserRepository, ids []uuid.UUID) (map[uuid.UUID]*entity.User, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return map[uuid.UUID]*entity.User{}, nil
	}

	users, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load users")
	}

	return indexByID(users, func(u *entity.User) uuid.UUID { return u.ID }), nil
}

// orderViewOptions selects which side of an order gets resolved.
type orderViewOptions struct {
	withRestaurant bool
	withCustomer   bool
}

// buildOrderViews resolves menu items plus the requested parties for a batch of orders.
func buildOrderViews(
	ctx context.Context,
	menuRepo repository.MenuRepository,
	restaurantRepo repository.RestaurantRepository,
	userRepo repository.UserRepository,
	orders []*entity.Order,
	opts orderViewOptions,
) ([]*usecase.OrderView, error) {
	var menuIDs, restaurantIDs, customerIDs []uuid.UUID
	for _, order := range orders {
		menuIDs = append(menuIDs, order.MenuItemIDs()...)
		restaurantIDs = append(restaurantIDs, order.RestaurantID)
		customerIDs = append(customerIDs, order.CustomerID)
	}

	menuItems, err := loadMenuItems(ctx, menuRepo, menuIDs)
	if err != nil {
		return nil, err
	}

	restaurants := map[uuid.UUID]*entity.Restaurant{}
	if opts.withRestaurant {
		if restaurants, err = loadRestaurants(ctx, restaurantRepo, restaurantIDs); err != nil {
			return nil, err
		}
	}

	customers := map[uuid.UUID]*entity.User{}
	if opts.withCustomer {
		if customers, err = loadUsers(ctx, userRepo, customerIDs); err != nil {
			return nil, err
		}
	}

	views := make([]*usecase.OrderView, 0, len(orders))
	for _, order := range orders {
		view := newOrderView(order, menuItems)
		view.Restaurant = restaurants[order.RestaurantID].Summary()
		view.Customer = customers[order.CustomerID].Summary()
		views = append(views, view)
	}

	return views, nil
}

func newOrderView(order *entity.Order, menuItems map[uuid.UUID]*entity.MenuItem) *usecase.OrderView {
	lines := make([]usecase.OrderLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, usecase.OrderLine{OrderItem: item, MenuItem: menuItems[item.MenuItemID]})
	}

	return &usecase.OrderView{
		ID:              order.ID,
		CustomerID:      order.CustomerID,
		RestaurantID:    order.RestaurantID,
		Items:           lines,
		TotalAmount:     order.TotalAmount,
		DeliveryAddress: order.DeliveryAddress,
		PaymentMethod:   order.PaymentMethod,
		Notes:           order.Notes,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}
