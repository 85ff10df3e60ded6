package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "foodorder/internal/delivery/context"
	"foodorder/internal/domain/entity"
	domainerrors "foodorder/internal/domain/errors"
	"foodorder/internal/domain/repository"
	"foodorder/internal/domain/service"
	"foodorder/internal/usecase"
	"foodorder/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	menuRepo       repository.MenuRepository
	qrCodeService  service.QRCodeService
	logger         *slog.Logger
}

// RestaurantServiceParams holds dependencies for RestaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	MenuRepo       repository.MenuRepository
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: params.RestaurantRepo,
		menuRepo:       params.MenuRepo,
		qrCodeService:  params.QRCodeService,
		logger:         params.Logger,
	}
}

func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRestaurant creates the owner's restaurant. A second one is rejected by the store.
func (srv *restaurantService) CreateRestaurant(ctx context.Context, ownerID uuid.UUID, input *usecase.RestaurantInput) (*entity.Restaurant, error) {
	restaurant := &entity.Restaurant{
		OwnerID:      ownerID,
		Name:         strings.TrimSpace(input.Name),
		Address:      strings.TrimSpace(input.Address),
		Phone:        strings.TrimSpace(input.Phone),
		LogoURL:      input.LogoURL,
		Description:  input.Description,
		Cuisine:      input.Cuisine,
		Rating:       input.Rating,
		DeliveryTime: input.DeliveryTime,
	}
	restaurant.ApplyDefaults()

	if err := validateRestaurant(restaurant); err != nil {
		return nil, err
	}

	if err := srv.restaurantRepo.Create(ctx, restaurant); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRestaurantOwner):
			return nil, errors.Wrap(domainerrors.ErrRestaurantAlreadyExists, "owner already has a restaurant")
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUserNotFound
		default:
			return nil, errors.Wrap(err, "failed to create restaurant")
		}
	}

	srv.log(ctx).Info("Restaurant created", slog.String("restaurantID", restaurant.ID.String()), slog.String("ownerID", ownerID.String()))

	return restaurant, nil
}

// UpdateRestaurant applies the non-nil fields of patch to the owner's restaurant.
func (srv *restaurantService) UpdateRestaurant(ctx context.Context, ownerID uuid.UUID, patch *usecase.RestaurantPatch) (*entity.Restaurant, error) {
	restaurant, err := findRestaurantByOwner(ctx, srv.restaurantRepo, ownerID)
	if err != nil {
		return nil, err
	}

	applyRestaurantPatch(restaurant, patch)
	if err := validateRestaurant(restaurant); err != nil {
		return nil, err
	}

	if err := srv.restaurantRepo.Update(ctx, restaurant); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to update restaurant")
	}

	return restaurant, nil
}

// GetMyRestaurant returns the owner's restaurant.
func (srv *restaurantService) GetMyRestaurant(ctx context.Context, ownerID uuid.UUID) (*entity.Restaurant, error) {
	return findRestaurantByOwner(ctx, srv.restaurantRepo, ownerID)
}

// ListRestaurants returns every restaurant.
func (srv *restaurantService) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	restaurants, err := srv.restaurantRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return restaurants, nil
}

// GetRestaurantMenu returns the menu of an existing restaurant. An empty menu is not an error.
func (srv *restaurantService) GetRestaurantMenu(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error) {
	if _, err := srv.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	items, err := srv.menuRepo.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu")
	}

	return items, nil
}

// GetMenuQRCode renders the QR code that links to the owner's public menu.
func (srv *restaurantService) GetMenuQRCode(ctx context.Context, ownerID uuid.UUID) ([]byte, error) {
	restaurant, err := findRestaurantByOwner(ctx, srv.restaurantRepo, ownerID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateMenuQR(restaurant.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate menu QR code")
	}

	srv.log(ctx).Debug("Menu QR code generated",
		slog.String("restaurantID", restaurant.ID.String()),
		slog.String("url", srv.qrCodeService.MenuURL(restaurant.ID)),
		slog.String("size", util.FormatBytes(int64(len(png)))),
	)

	return png, nil
}

// findRestaurantByOwner maps a missing restaurant to the domain not-found error.
func findRestaurantByOwner(ctx context.Context, repo repository.RestaurantRepository, ownerID uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := repo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by owner")
	}

	return restaurant, nil
}

func applyRestaurantPatch(restaurant *entity.Restaurant, patch *usecase.RestaurantPatch) {
	if patch == nil {
		return
	}
	if patch.Name != nil {
		restaurant.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Address != nil {
		restaurant.Address = strings.TrimSpace(*patch.Address)
	}
	if patch.Phone != nil {
		restaurant.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.LogoURL != nil {
		restaurant.LogoURL = *patch.LogoURL
	}
	if patch.Description != nil {
		restaurant.Description = *patch.Description
	}
	if patch.Cuisine != nil {
		restaurant.Cuisine = *patch.Cuisine
	}
	if patch.Rating != nil {
		restaurant.Rating = *patch.Rating
	}
	if patch.DeliveryTime != nil {
		restaurant.DeliveryTime = *patch.DeliveryTime
	}
}

func validateRestaurant(restaurant *entity.Restaurant) error {
	switch {
	case restaurant.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("restaurant name is required")
	case restaurant.Address == "":
		return domainerrors.ErrValidationFailed.WithDetails("restaurant address is required")
	case restaurant.Phone != "" && !util.IsValidPhone(restaurant.Phone):
		return domainerrors.ErrValidationFailed.WithDetails("phone number is invalid")
	case !restaurant.HasValidRating():
		return domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}

	return nil
}
