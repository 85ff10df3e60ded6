package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderModel mirrors the 'orders' table. Lines are an immutable JSON snapshot.
type OrderModel struct {
	ID              uuid.UUID                          `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID                          `gorm:"type:uuid;not null;index:idx_orders_customer_created,priority:1"`
	RestaurantID    uuid.UUID                          `gorm:"type:uuid;not null;index:idx_orders_restaurant_created,priority:1"`
	Items           datatypes.JSONSlice[OrderItemData] `gorm:"not null"`
	TotalAmount     float64                            `gorm:"type:numeric(10,2);not null"`
	DeliveryAddress string                             `gorm:"type:varchar(500);not null"`
	PaymentMethod   string                             `gorm:"type:varchar(50);not null"`
	Notes           string                             `gorm:"type:text"`
	Status          string                             `gorm:"type:varchar(30);not null;index"`
	CreatedAt       time.Time                          `gorm:"index:idx_orders_customer_created,priority:2,sort:desc;index:idx_orders_restaurant_created,priority:2,sort:desc"`
	UpdatedAt       time.Time
}

// OrderItemData is one line of the JSON snapshot.
type OrderItemData struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// BeforeCreate assigns the primary key.
func (m *OrderModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}
