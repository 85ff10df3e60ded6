package usecase

import (
	"context"
	"time"

	"foodorder/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput holds the checkout details supplied by the customer.
type CreateOrderInput struct {
	DeliveryAddress string
	PaymentMethod   string
	Notes           string
}

// OrderLine is an order line with the current menu item attached when it still exists.
type OrderLine struct {
	entity.OrderItem
	MenuItem *entity.MenuItem `json:"menuItem"`
}

// OrderView is an order with its references resolved.
// Customer listings carry the restaurant, owner listings carry the customer.
type OrderView struct {
	ID              uuid.UUID                 `json:"id"`
	CustomerID      uuid.UUID                 `json:"customerId"`
	RestaurantID    uuid.UUID                 `json:"restaurantId"`
	Customer        *entity.UserSummary       `json:"customer,omitempty"`
	Restaurant      *entity.RestaurantSummary `json:"restaurant,omitempty"`
	Items           []OrderLine               `json:"items"`
	TotalAmount     float64                   `json:"totalAmount"`
	DeliveryAddress string                    `json:"deliveryAddress"`
	PaymentMethod   string                    `json:"paymentMethod"`
	Notes           string                    `json:"notes,omitempty"`
	Status          entity.OrderStatus        `json:"status"`
	CreatedAt       time.Time                 `json:"createdAt"`
	UpdatedAt       time.Time                 `json:"updatedAt"`
}

// OrderUsecase defines checkout and order tracking.
type OrderUsecase interface {
	// CreateOrder converts the customer's cart into an order and empties the cart.
	CreateOrder(ctx context.Context, customerID uuid.UUID, input *CreateOrderInput) (*OrderView, error)

	// ListCustomerOrders returns the customer's orders, newest first.
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*OrderView, error)

	// ListRestaurantOrders returns the orders of the owner's restaurant, newest first.
	ListRestaurantOrders(ctx context.Context, ownerID uuid.UUID) ([]*OrderView, error)

	// UpdateOrderStatus moves an order of the owner's restaurant to a new status.
	UpdateOrderStatus(ctx context.Context, ownerID, orderID uuid.UUID, status string) (*OrderView, error)
}
