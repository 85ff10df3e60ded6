package usecase

import (
	"context"
	"time"

	"foodorder/internal/domain/entity"

	"github.com/google/uuid"
)

// MenuItemDetail is a menu item together with its restaurant summary.
type MenuItemDetail struct {
	*entity.MenuItem
	Restaurant *entity.RestaurantSummary `json:"restaurant,omitempty"`
}

// CartLine is a cart line with its menu item resolved.
// MenuItem is nil when the item was deleted after it was added.
type CartLine struct {
	MenuItemID uuid.UUID       `json:"menuItemId"`
	Quantity   int             `json:"quantity"`
	MenuItem   *MenuItemDetail `json:"menuItem"`
}

// CartView is the resolved cart returned to customers.
type CartView struct {
	CustomerID uuid.UUID  `json:"customerId"`
	Items      []CartLine `json:"items"`
	Subtotal   float64    `json:"subtotal"`
	UpdatedAt  time.Time  `json:"updatedAt,omitzero"`
}

// CartUsecase defines the customer cart operations.
type CartUsecase interface {
	// AddItem adds quantity of a menu item, merging with an existing line.
	AddItem(ctx context.Context, customerID, menuItemID uuid.UUID, quantity int) (*CartView, error)

	// RemoveItem drops a line from the cart. A missing line is not an error.
	RemoveItem(ctx context.Context, customerID, menuItemID uuid.UUID) (*CartView, error)

	// GetCart returns the resolved cart. A customer without a cart gets an empty one.
	GetCart(ctx context.Context, customerID uuid.UUID) (*CartView, error)
}
