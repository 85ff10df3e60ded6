package repository

import (
	"context"

	"foodorder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for restaurant persistence.
var (
	// ErrRestaurantNotFound is returned when a restaurant is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrDuplicateRestaurantOwner is returned when the owner already has a restaurant.
	ErrDuplicateRestaurantOwner = errors.New("owner already has a restaurant")
)

// RestaurantRepository defines the interface for restaurant storage.
type RestaurantRepository interface {
	// Create persists a new restaurant. The store rejects a second restaurant for the same owner.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// Update overwrites the mutable profile fields of an existing restaurant.
	Update(ctx context.Context, restaurant *entity.Restaurant) error

	// FindByID retrieves a restaurant by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// FindByOwnerID retrieves the restaurant managed by the given owner.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Restaurant, error)

	// FindByIDs retrieves the restaurants with the given IDs. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Restaurant, error)

	// List retrieves all restaurants.
	List(ctx context.Context) ([]*entity.Restaurant, error)
}
