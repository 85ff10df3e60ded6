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
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// cartRepository implements the repository.CartRepository interface.
// Lines live in cart_items and keep insertion order through their serial ID.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByCustomer retrieves the customer's cart with its lines.
func (repo *cartRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	return repo.load(repo.db.WithContext(ctx), customerID)
}

// AddItem upserts the cart row, then merges the line with a single
// INSERT ... ON CONFLICT DO UPDATE so concurrent adds never lose quantity.
func (repo *cartRepository) AddItem(ctx context.Context, customerID, menuItemID uuid.UUID, quantity int) (*entity.Cart, error) {
	db := repo.db.WithContext(ctx)
	now := time.Now()

	if err := repo.touch(db, customerID, now); err != nil {
		return nil, err
	}

	line := &model.CartItemModel{
		CustomerID: customerID,
		MenuItemID: menuItemID,
		Quantity:   quantity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "customer_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
			"updated_at": now,
		}),
	}).Create(line).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	return repo.load(db.Clauses(dbresolver.Write), customerID)
}

// RemoveItem deletes the line for menuItemID if present.
func (repo *cartRepository) RemoveItem(ctx context.Context, customerID, menuItemID uuid.UUID) (*entity.Cart, error) {
	db := repo.db.WithContext(ctx)

	if err := repo.ensureExists(db, customerID); err != nil {
		return nil, err
	}

	result := db.Where("customer_id = ? AND menu_item_id = ?", customerID, menuItemID).Delete(&model.CartItemModel{})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to remove cart item")
	}
	if result.RowsAffected > 0 {
		if err := repo.touch(db, customerID, time.Now()); err != nil {
			return nil, err
		}
	}

	return repo.load(db.Clauses(dbresolver.Write), customerID)
}

// Clear deletes every line but keeps the cart row.
func (repo *cartRepository) Clear(ctx context.Context, customerID uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("customer_id = ?", customerID).Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	result := db.Model(&model.CartModel{}).
		Where("customer_id = ?", customerID).
		Update("updated_at", time.Now())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// touch creates the cart row on first use and bumps updated_at otherwise.
func (repo *cartRepository) touch(db *gorm.DB, customerID uuid.UUID, now time.Time) error {
	cart := &model.CartModel{CustomerID: customerID, CreatedAt: now, UpdatedAt: now}

	if err := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}},
		DoUpdates: clause.Assignments(map[string]any{"updated_at": now}),
	}).Create(cart).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart")
	}

	return nil
}

func (repo *cartRepository) ensureExists(db *gorm.DB, customerID uuid.UUID) error {
	var count int64
	if err := db.Model(&model.CartModel{}).Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check cart")
	}
	if count == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

func (repo *cartRepository) load(db *gorm.DB, customerID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("cart_items.id ASC")
		}).
		Where("customer_id = ?", customerID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return toCartDomain(&cartM), nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	cart := entity.NewEmptyCart(data.CustomerID)
	cart.UpdatedAt = data.UpdatedAt

	for _, line := range data.Items {
		cart.Items = append(cart.Items, entity.CartItem{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		})
	}

	return cart
}
