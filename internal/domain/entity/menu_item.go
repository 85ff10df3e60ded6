package entity

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem is a dish offered by exactly one restaurant.
type MenuItem struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	ImageURL     string    `json:"imageUrl"`
	IsAvailable  bool      `json:"isAvailable"`
	IsVegetarian bool      `json:"isVegetarian"`
	IsSpicy      bool      `json:"isSpicy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BelongsTo reports whether the item is offered by the given restaurant.
func (m *MenuItem) BelongsTo(restaurantID uuid.UUID) bool {
	return m != nil && m.RestaurantID == restaurantID
}
