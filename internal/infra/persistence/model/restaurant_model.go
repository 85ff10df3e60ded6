package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantModel mirrors the 'restaurants' table. The unique owner index enforces one restaurant per owner.
type RestaurantModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Address      string    `gorm:"type:varchar(500);not null"`
	Phone        string    `gorm:"type:varchar(30);not null"`
	LogoURL      string    `gorm:"type:varchar(1024)"`
	Description  string    `gorm:"type:text"`
	Cuisine      string    `gorm:"type:varchar(100)"`
	Rating       float64   `gorm:"type:numeric(2,1);not null"`
	DeliveryTime string    `gorm:"type:varchar(50)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// BeforeCreate assigns the primary key.
func (m *RestaurantModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}
