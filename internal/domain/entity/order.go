package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is an immutable snapshot of a checked-out cart plus its fulfilment status.
type Order struct {
	ID              uuid.UUID   `json:"id"`
	CustomerID      uuid.UUID   `json:"customerId"`
	RestaurantID    uuid.UUID   `json:"restaurantId"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	DeliveryAddress string      `json:"deliveryAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Notes           string      `json:"notes"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// OrderItem is a line captured at order time with the price charged.
type OrderItem struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
}

// MenuItemIDs returns the referenced menu item IDs in line order.
func (o *Order) MenuItemIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.MenuItemID)
	}

	return ids
}
