package impl

import (
	"context"
	"testing"

	"foodorder/internal/domain/entity"
	domainerrors "foodorder/internal/domain/errors"
	"foodorder/internal/domain/repository"
	mockRepo "foodorder/internal/mocks/repository"
	mockSvc "foodorder/internal/mocks/service"
	"foodorder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// restaurantServiceFixtures holds all test dependencies for restaurant service tests.
type restaurantServiceFixtures struct {
	service        usecase.RestaurantUsecase
	restaurantRepo *mockRepo.MockRestaurantRepository
	menuRepo       *mockRepo.MockMenuRepository
	qrCodeService  *mockSvc.MockQRCodeService
}

func createTestRestaurantService(t *testing.T) restaurantServiceFixtures {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	menuRepo := mockRepo.NewMockMenuRepository(t)
	qrCodeService := mockSvc.NewMockQRCodeService(t)

	service := NewRestaurantService(RestaurantServiceParams{
		RestaurantRepo: restaurantRepo,
		MenuRepo:       menuRepo,
		QRCodeService:  qrCodeService,
		Logger:         newDiscardLogger(),
	})

	return restaurantServiceFixtures{
		service:        service,
		restaurantRepo: restaurantRepo,
		menuRepo:       menuRepo,
		qrCodeService:  qrCodeService,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestRestaurantService_CreateRestaurant_AppliesDefaults(t *testing.T) {
	fx := createTestRestaurantService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.restaurantRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Restaurant")).Return(nil)

	restaurant, err := fx.service.CreateRestaurant(ctx, ownerID, &usecase.RestaurantInput{
		Name:    " Spice Route ",
		Address: "12 Curry Lane",
		Phone:   "+1 (555) 010-2000",
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, restaurant.OwnerID)
	assert.Equal(t, "Spice Route", restaurant.Name)
	assert.Equal(t, entity.DefaultRestaurantCuisine, restaurant.Cuisine)
	assert.Equal(t, entity.DefaultRestaurantRating, restaurant.Rating)
	assert.Equal(t, entity.DefaultRestaurantDeliveryTime, restaurant.DeliveryTime)
}

func TestRestaurantService_CreateRestaurant_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RestaurantInput
	}{
		{name: "missing name", input: usecase.RestaurantInput{Address: "12 Curry Lane"}},
		{name: "missing address", input: usecase.RestaurantInput{Name: "Spice Route"}},
		{name: "bad phone", input: usecase.RestaurantInput{Name: "Spice Route", Address: "12 Curry Lane", Phone: "12ab"}},
		{name: "rating out of range", input: usecase.RestaurantInput{Name: "Spice Route", Address: "12 Curry Lane", Rating: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRestaurantService(t)

			_, err := fx.service.CreateRestaurant(context.Background(), uuid.New(), &tt.input)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestRestaurantService_CreateRestaurant_DuplicateOwner(t *testing.T) {
	fx := createTestRestaurantService(t)
	ctx := context.Background()

	fx.restaurantRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateRestaurantOwner)

	_, err := fx.service.CreateRestaurant(ctx, uuid.New(), &usecase.RestaurantInput{Name: "Spice Route", Address: "12 Curry Lane"})
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantAlreadyExists)
}

func TestRestaurantService_UpdateRestaurant_PartialPatch(t *testing.T) {
	fx := createTestRestaurantService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	existing := &entity.Restaurant{ID: uuid.New(), OwnerID: ownerID, Name: "Spice Route", Address: "12 Curry Lane", Rating: 4.5}

	fx.restaurantRepo.EXPECT().FindByOwnerID(ctx, ownerID).Return(existing, nil)
	fx.restaurantRepo.EXPECT().Update(ctx, existing).Return(nil)

	updated, err := fx.service.UpdateRestaurant(ctx, ownerID, &usecase.RestaurantPatch{Rating: ptr(3.8), Cuisine: ptr("Indian")})
	require.NoError(t, err)
	assert.Equal(t, "Spice Route", updated.Name)
	assert.Equal(t, 3.8, updated.Rating)
	assert.Equal(t, "Indian", updated.Cuisine)
}

func TestRestaurantService_UpdateRestaurant_RejectsRating(t *testing.T) {
	fx := createTestRestaurantService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.restaurantRepo.EXPECT().FindByOwnerID(ctx, ownerID).
		Return(&entity.Restaurant{ID: uuid.New(), Name: "Spice Route", Address: "12 Curry Lane", Rating: 4.5}, nil)

	_, err := fx.service.UpdateRestaurant(ctx, ownerID, &usecase.RestaurantPatch{Rating: ptr(0.5)})
	require.Error(t, err)
}

func TestRestaurantService_GetMyRestaurant_NotFound(t *testing.T) {
	fx := createTestRestaurantService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.restaurantRepo.EXPECT().FindByOwnerID(ctx, ownerID).Return(nil, repository.ErrRestaurantNotFound)

	_, err := fx.service.GetMyRestaurant(ctx, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestRestaurantService_GetRestaurantMenu(t *testing.T) {
	t.Run("empty menu is not an error", func(t *testing.T) {
		fx := createTestRestaurantService(t)
		ctx := context.Background()
		restaurantID := uuid.New()

		fx.restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(&entity.Restaurant{ID: restaurantID}, nil)
		fx.menuRepo.EXPECT().FindByRestaurant(ctx, restaurantID).Return([]*entity.MenuItem{}, nil)

		items, err := fx.service.GetRestaurantMenu(ctx, restaurantID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		fx := createTestRestaurantService(t)
		ctx := context.Background()
		restaurantID := uuid.New()

		fx.restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(nil, repository.ErrRestaurantNotFound)

		_, err := fx.service.GetRestaurantMenu(ctx, restaurantID)
		assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
	})
}

func TestRestaurantService_GetMenuQRCode(t *testing.T) {
	fx := createTestRestaurantService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.restaurantRepo.EXPECT().FindByOwnerID(ctx, ownerID).Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID}, nil)
	fx.qrCodeService.EXPECT().GenerateMenuQR(restaurantID).Return(png, nil)
	fx.qrCodeService.EXPECT().MenuURL(restaurantID).Return("https://menu.example.com/restaurants/" + restaurantID.String() + "/menu")

	got, err := fx.service.GetMenuQRCode(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}
