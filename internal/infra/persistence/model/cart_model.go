package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table, one row per customer.
type CartModel struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items []CartItemModel `gorm:"foreignKey:CustomerID;references:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. The serial ID keeps insertion order
// and the composite unique index keeps one line per menu item.
type CartItemModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_customer_menu_item,priority:1"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_customer_menu_item,priority:2"`
	Quantity   int       `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
