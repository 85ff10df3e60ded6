package usecase

import (
	"context"

	"foodorder/internal/domain/entity"

	"github.com/google/uuid"
)

// RestaurantInput holds the profile fields for a new restaurant.
type RestaurantInput struct {
	Name         string
	Address      string
	Phone        string
	LogoURL      string
	Description  string
	Cuisine      string
	Rating       float64
	DeliveryTime string
}

// RestaurantPatch holds a partial profile update. Nil fields are left unchanged.
type RestaurantPatch struct {
	Name         *string
	Address      *string
	Phone        *string
	LogoURL      *string
	Description  *string
	Cuisine      *string
	Rating       *float64
	DeliveryTime *string
}

// RestaurantUsecase defines the restaurant profile operations.
type RestaurantUsecase interface {
	// CreateRestaurant creates the single restaurant of an owner.
	CreateRestaurant(ctx context.Context, ownerID uuid.UUID, input *RestaurantInput) (*entity.Restaurant, error)

	// UpdateRestaurant applies a partial update to the owner's restaurant.
	UpdateRestaurant(ctx context.Context, ownerID uuid.UUID, patch *RestaurantPatch) (*entity.Restaurant, error)

	// GetMyRestaurant returns the owner's restaurant.
	GetMyRestaurant(ctx context.Context, ownerID uuid.UUID) (*entity.Restaurant, error)

	// ListRestaurants returns every restaurant.
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)

	// GetRestaurantMenu returns the public menu of a restaurant, possibly empty.
	GetRestaurantMenu(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error)

	// GetMenuQRCode renders a PNG QR code linking to the owner's public menu.
	GetMenuQRCode(ctx context.Context, ownerID uuid.UUID) ([]byte, error)
}
