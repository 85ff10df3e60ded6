package repository

import (
	"context"

	"foodorder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMenuItemNotFound is returned when a menu item is not found.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuRepository defines the interface for menu item storage.
type MenuRepository interface {
	// Create persists a new menu item.
	Create(ctx context.Context, item *entity.MenuItem) error

	// Update overwrites the mutable fields of an existing menu item.
	Update(ctx context.Context, item *entity.MenuItem) error

	// Delete removes a menu item.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a menu item by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// FindByIDs retrieves the menu items with the given IDs. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error)

	// FindByRestaurant retrieves the menu of a restaurant.
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error)
}
