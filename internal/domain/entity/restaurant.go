package entity

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant profile defaults applied when the owner leaves a field empty.
const (
	DefaultRestaurantDescription  = "Delicious food delivered fresh to your door"
	DefaultRestaurantCuisine      = "Multi-cuisine"
	DefaultRestaurantRating       = 4.5
	DefaultRestaurantDeliveryTime = "30-45 mins"

	MinRestaurantRating = 1.0
	MaxRestaurantRating = 5.0
)

// Restaurant is the single restaurant profile managed by an owner.
type Restaurant struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	LogoURL      string    `json:"logoUrl"`
	Description  string    `json:"description"`
	Cuisine      string    `json:"cuisine"`
	Rating       float64   `json:"rating"`
	DeliveryTime string    `json:"deliveryTime"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RestaurantSummary is the projection embedded in carts and orders.
type RestaurantSummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}

// ApplyDefaults fills empty profile fields.
func (r *Restaurant) ApplyDefaults() {
	if r.Description == "" {
		r.Description = DefaultRestaurantDescription
	}
	if r.Cuisine == "" {
		r.Cuisine = DefaultRestaurantCuisine
	}
	if r.Rating == 0 {
		r.Rating = DefaultRestaurantRating
	}
	if r.DeliveryTime == "" {
		r.DeliveryTime = DefaultRestaurantDeliveryTime
	}
}

// HasValidRating reports whether the rating lies within the allowed range.
func (r *Restaurant) HasValidRating() bool {
	return r.Rating >= MinRestaurantRating && r.Rating <= MaxRestaurantRating
}

// Summary returns the embedded projection of the restaurant.
func (r *Restaurant) Summary() *RestaurantSummary {
	if r == nil {
		return nil
	}

	return &RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}
