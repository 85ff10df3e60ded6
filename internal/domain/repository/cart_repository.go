package repository

import (
	"context"

	"foodorder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCartNotFound is returned when the customer never created a cart.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the interface for cart storage.
// Mutations are atomic per call so concurrent requests from one customer cannot lose updates.
type CartRepository interface {
	// FindByCustomer retrieves the customer's cart with lines in insertion order.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error)

	// AddItem creates the cart if needed, then adds quantity to the matching line or appends a new one.
	AddItem(ctx context.Context, customerID, menuItemID uuid.UUID, quantity int) (*entity.Cart, error)

	// RemoveItem drops the line for menuItemID. A missing line is not an error.
	RemoveItem(ctx context.Context, customerID, menuItemID uuid.UUID) (*entity.Cart, error)

	// Clear empties the cart but keeps it.
	Clear(ctx context.Context, customerID uuid.UUID) error
}
