package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the per-customer staging area for an order.
// Lines keep insertion order and a menu item appears at most once.
type Cart struct {
	CustomerID uuid.UUID  `json:"customerId"`
	Items      []CartItem `json:"items"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// CartItem is a single cart line.
type CartItem struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Quantity   int       `json:"quantity"`
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// MenuItemIDs returns the referenced menu item IDs in line order.
func (c *Cart) MenuItemIDs() []uuid.UUID {
	if c == nil {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.MenuItemID)
	}

	return ids
}

// NewEmptyCart returns the representation of a cart that was never created.
func NewEmptyCart(customerID uuid.UUID) *Cart {
	return &Cart{CustomerID: customerID, Items: []CartItem{}}
}
