package repository

import (
	"context"

	"foodorder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusMismatch is returned when a guarded status update finds a different current status.
	ErrOrderStatusMismatch = errors.New("order status changed concurrently")
)

// OrderRepository defines the interface for order storage.
type OrderRepository interface {
	// Create persists a new order snapshot.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByCustomer lists a customer's orders, newest first.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// FindByRestaurant lists a restaurant's orders, newest first.
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus moves the order from one status to another only if it is still in from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error
}
