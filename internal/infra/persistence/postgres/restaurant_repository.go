package postgres

import (
	"context"
	"time"

	"foodorder/internal/domain/entity"
	domainerrors "foodorder/internal/domain/errors"
	"foodorder/internal/domain/repository"
	"foodorder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

// Create persists a new restaurant. The unique owner index keeps one restaurant per owner.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Omit("Owner").Create(restaurantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRestaurantOwner
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// Update overwrites the mutable profile fields.
func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", restaurant.ID).
		Updates(map[string]any{
			"name":          restaurant.Name,
			"address":       restaurant.Address,
			"phone":         restaurant.Phone,
			"logo_url":      restaurant.LogoURL,
			"description":   restaurant.Description,
			"cuisine":       restaurant.Cuisine,
			"rating":        restaurant.Rating,
			"delivery_time": restaurant.DeliveryTime,
			"updated_at":    now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update restaurant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	restaurant.UpdatedAt = now

	return nil
}

// FindByID retrieves a restaurant by ID.
func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// FindByOwnerID retrieves the owner's restaurant from the primary, since owners act right after creating it.
func (repo *restaurantRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("owner_id = ?", ownerID).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by owner")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// FindByIDs retrieves the restaurants with the given IDs.
func (repo *restaurantRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Restaurant, error) {
	if len(ids) == 0 {
		return []*entity.Restaurant{}, nil
	}

	var restaurantModels []*model.RestaurantModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants by IDs")
	}

	return toRestaurantDomains(restaurantModels), nil
}

// List retrieves all restaurants ordered by name.
func (repo *restaurantRepository) List(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return toRestaurantDomains(restaurantModels), nil
}

// --- Mapper Functions ---

func toRestaurantDomains(models []*model.RestaurantModel) []*entity.Restaurant {
	restaurants := make([]*entity.Restaurant, 0, len(models))
	for _, restaurantM := range models {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants
}

func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Address:      data.Address,
		Phone:        data.Phone,
		LogoURL:      data.LogoURL,
		Description:  data.Description,
		Cuisine:      data.Cuisine,
		Rating:       data.Rating,
		DeliveryTime: data.DeliveryTime,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Address:      data.Address,
		Phone:        data.Phone,
		LogoURL:      data.LogoURL,
		Description:  data.Description,
		Cuisine:      data.Cuisine,
		Rating:       data.Rating,
		DeliveryTime: data.DeliveryTime,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
