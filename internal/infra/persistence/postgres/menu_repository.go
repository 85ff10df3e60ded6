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
)

// menuRepository implements the repository.MenuRepository interface.
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepository{db: db}
}

// Create persists a new menu item.
func (repo *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).Omit("Restaurant").Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Update overwrites the mutable fields of a menu item.
func (repo *menuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"name":          item.Name,
			"description":   item.Description,
			"price":         item.Price,
			"category":      item.Category,
			"image_url":     item.ImageURL,
			"is_available":  item.IsAvailable,
			"is_vegetarian": item.IsVegetarian,
			"is_spicy":      item.IsSpicy,
			"updated_at":    now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	item.UpdatedAt = now

	return nil
}

// Delete removes a menu item.
func (repo *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MenuItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// FindByID retrieves a menu item by ID.
func (repo *menuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by ID")
	}

	return toMenuItemDomain(&itemM), nil
}

// FindByIDs retrieves the menu items with the given IDs.
func (repo *menuRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error) {
	if len(ids) == 0 {
		return []*entity.MenuItem{}, nil
	}

	var itemModels []*model.MenuItemModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find menu items by IDs")
	}

	return toMenuItemDomains(itemModels), nil
}

// FindByRestaurant retrieves a restaurant's menu grouped by category.
func (repo *menuRepository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel
	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("category ASC").
		Order("name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find menu items by restaurant")
	}

	return toMenuItemDomains(itemModels), nil
}

// --- Mapper Functions ---

func toMenuItemDomains(models []*model.MenuItemModel) []*entity.MenuItem {
	items := make([]*entity.MenuItem, 0, len(models))
	for _, itemM := range models {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items
}

func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	return &entity.MenuItem{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		Category:     data.Category,
		ImageURL:     data.ImageURL,
		IsAvailable:  data.IsAvailable,
		IsVegetarian: data.IsVegetarian,
		IsSpicy:      data.IsSpicy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	return &model.MenuItemModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		Category:     data.Category,
		ImageURL:     data.ImageURL,
		IsAvailable:  data.IsAvailable,
		IsVegetarian: data.IsVegetarian,
		IsSpicy:      data.IsSpicy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
