package usecase

import (
	"context"

	"foodorder/internal/domain/entity"

	"github.com/google/uuid"
)

// MenuItemInput holds the fields for a new menu item.
type MenuItemInput struct {
	Name         string
	Description  string
	Price        float64
	Category     string
	ImageURL     string
	IsAvailable  *bool
	IsVegetarian bool
	IsSpicy      bool
}

// MenuItemPatch holds a partial menu item update. Nil fields are left unchanged.
type MenuItemPatch struct {
	Name         *string
	Description  *string
	Price        *float64
	Category     *string
	ImageURL     *string
	IsAvailable  *bool
	IsVegetarian *bool
	IsSpicy      *bool
}

// MenuUsecase defines the owner-scoped menu operations.
type MenuUsecase interface {
	// CreateMenuItem adds an item to the owner's restaurant.
	CreateMenuItem(ctx context.Context, ownerID uuid.UUID, input *MenuItemInput) (*entity.MenuItem, error)

	// ListMyMenu returns the menu of the owner's restaurant.
	ListMyMenu(ctx context.Context, ownerID uuid.UUID) ([]*entity.MenuItem, error)

	// UpdateMenuItem applies a partial update to an item the owner's restaurant offers.
	UpdateMenuItem(ctx context.Context, ownerID, itemID uuid.UUID, patch *MenuItemPatch) (*entity.MenuItem, error)

	// DeleteMenuItem removes an item the owner's restaurant offers.
	DeleteMenuItem(ctx context.Context, ownerID, itemID uuid.UUID) error
}
