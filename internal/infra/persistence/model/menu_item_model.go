package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItemModel mirrors the 'menu_items' table.
type MenuItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Price        float64   `gorm:"type:numeric(10,2);not null"`
	Category     string    `gorm:"type:varchar(100);not null;index"`
	ImageURL     string    `gorm:"type:varchar(1024)"`
	IsAvailable  bool      `gorm:"not null"`
	IsVegetarian bool      `gorm:"not null"`
	IsSpicy      bool      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}

// BeforeCreate assigns the primary key.
func (m *MenuItemModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}
