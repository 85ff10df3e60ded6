package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "foodorder/internal/delivery/context"
	"foodorder/internal/domain/entity"
	domainerrors "foodorder/internal/domain/errors"
	"foodorder/internal/domain/repository"
	"foodorder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// menuService implements the MenuUsecase interface.
type menuService struct {
	restaurantRepo repository.RestaurantRepository
	menuRepo       repository.MenuRepository
	logger         *slog.Logger
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	MenuRepo       repository.MenuRepository
	Logger         *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		restaurantRepo: params.RestaurantRepo,
		menuRepo:       params.MenuRepo,
		logger:         params.Logger,
	}
}

func (srv *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMenuItem adds an item to the owner's restaurant. Items are available unless stated otherwise.
func (srv *menuService) CreateMenuItem(ctx context.Context, ownerID uuid.UUID, input *usecase.MenuItemInput) (*entity.MenuItem, error) {
	restaurant, err := findRestaurantByOwner(ctx, srv.restaurantRepo, ownerID)
	if err != nil {
		return nil, err
	}

	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}

	item := &entity.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		Price:        input.Price,
		Category:     strings.TrimSpace(input.Category),
		ImageURL:     input.ImageURL,
		IsAvailable:  isAvailable,
		IsVegetarian: input.IsVegetarian,
		IsSpicy:      input.IsSpicy,
	}
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}

	if err := srv.menuRepo.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to create menu item")
	}

	srv.log(ctx).Info("Menu item created", slog.String("itemID", item.ID.String()), slog.String("restaurantID", restaurant.ID.String()))

	return item, nil
}

// ListMyMenu returns the menu of the owner's restaurant.
func (srv *menuService) ListMyMenu(ctx context.Context, ownerID uuid.UUID) ([]*entity.MenuItem, error) {
	restaurant, err := findRestaurantByOwner(ctx, srv.restaurantRepo, ownerID)
	if err != nil {
		return nil, err
	}

	items, err := srv.menuRepo.FindByRestaurant(ctx, restaurant.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu")
	}

	return items, nil
}

// UpdateMenuItem applies the non-nil fields of patch after checking ownership.
func (srv *menuService) UpdateMenuItem(ctx context.Context, ownerID, itemID uuid.UUID, patch *usecase.MenuItemPatch) (*entity.MenuItem, error) {
	item, err := srv.findOwnedItem(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	applyMenuItemPatch(item, patch)
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}

	if err := srv.menuRepo.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to update menu item")
	}

	return item, nil
}

// DeleteMenuItem removes an item after checking ownership.
func (srv *menuService) DeleteMenuItem(ctx context.Context, ownerID, itemID uuid.UUID) error {
	if _, err := srv.findOwnedItem(ctx, ownerID, itemID); err != nil {
		return err
	}

	if err := srv.menuRepo.Delete(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return domainerrors.ErrMenuItemNotFound
		}

		return errors.Wrap(err, "failed to delete menu item")
	}

	srv.log(ctx).Info("Menu item deleted", slog.String("itemID", itemID.String()))

	return nil
}

// findOwnedItem loads an item and verifies it belongs to the owner's restaurant.
func (srv *menuService) findOwnedItem(ctx context.Context, ownerID, itemID uuid.UUID) (*entity.MenuItem, error) {
	item, err := srv.menuRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	restaurant, err := findRestaurantByOwner(ctx, srv.restaurantRepo, ownerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrRestaurantNotFound) {
			// An owner without a restaurant cannot own the item.
			return nil, domainerrors.ErrMenuItemOwnershipViolation
		}

		return nil, err
	}

	if !item.BelongsTo(restaurant.ID) {
		srv.log(ctx).Warn("Menu item ownership violation",
			slog.String("itemID", itemID.String()),
			slog.String("ownerID", ownerID.String()),
		)

		return nil, domainerrors.ErrMenuItemOwnershipViolation
	}

	return item, nil
}

func applyMenuItemPatch(item *entity.MenuItem, patch *usecase.MenuItemPatch) {
	if patch == nil {
		return
	}
	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Category != nil {
		item.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.ImageURL != nil {
		item.ImageURL = *patch.ImageURL
	}
	if patch.IsAvailable != nil {
		item.IsAvailable = *patch.IsAvailable
	}
	if patch.IsVegetarian != nil {
		item.IsVegetarian = *patch.IsVegetarian
	}
	if patch.IsSpicy != nil {
		item.IsSpicy = *patch.IsSpicy
	}
}

func validateMenuItem(item *entity.MenuItem) error {
	switch {
	case item.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("menu item name is required")
	case item.Category == "":
		return domainerrors.ErrValidationFailed.WithDetails("menu item category is required")
	case item.Price <= 0:
		return domainerrors.ErrValidationFailed.WithDetails("price must be greater than zero")
	}

	return nil
}
