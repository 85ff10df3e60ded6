package mongodb

import (
	"context"
	"time"

	"foodorder/internal/domain/entity"
	domainerrors "foodorder/internal/domain/errors"
	"foodorder/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// menuRepository implements the repository.MenuRepository interface.
type menuRepository struct {
	store
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *mongo.Database) repository.MenuRepository {
	return &menuRepository{store: store{db: db}}
}

// Create persists a new menu item.
func (repo *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	if err := stampNew(&item.ID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return err
	}

	if _, err := repo.collection(menuItemsCollection).InsertOne(repo.withSession(ctx), fromMenuItemDomain(item)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu item")
	}

	return nil
}

// Update overwrites the mutable fields of a menu item.
func (repo *menuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	now := time.Now().UTC()

	result, err := repo.collection(menuItemsCollection).UpdateOne(repo.withSession(ctx),
		bson.M{"_id": item.ID.String()},
		bson.M{"$set": bson.M{
			"name":          item.Name,
			"description":   item.Description,
			"price":         item.Price,
			"category":      item.Category,
			"image_url":     item.ImageURL,
			"is_available":  item.IsAvailable,
			"is_vegetarian": item.IsVegetarian,
			"is_spicy":      item.IsSpicy,
			"updated_at":    now,
		}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update menu item")
	}
	if result.MatchedCount == 0 {
		return repository.ErrMenuItemNotFound
	}

	item.UpdatedAt = now

	return nil
}

// Delete removes a menu item.
func (repo *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.collection(menuItemsCollection).DeleteOne(repo.withSession(ctx), bson.M{"_id": id.String()})
	if err != nil {
		return errors.Wrap(err, "failed to delete menu item")
	}
	if result.DeletedCount == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// FindByID retrieves a menu item by ID.
func (repo *menuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var doc menuItemDocument

	if err := repo.collection(menuItemsCollection).FindOne(repo.withSession(ctx), bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	return toMenuItemDomain(&doc), nil
}

// FindByIDs retrieves the menu items with the given IDs.
func (repo *menuRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error) {
	if len(ids) == 0 {
		return []*entity.MenuItem{}, nil
	}

	return repo.find(ctx, bson.M{"_id": bson.M{"$in": idStrings(ids)}})
}

// FindByRestaurant retrieves a restaurant's menu grouped by category.
func (repo *menuRepository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error) {
	return repo.find(ctx, bson.M{"restaurant_id": restaurantID.String()})
}

func (repo *menuRepository) find(ctx context.Context, filter bson.M) ([]*entity.MenuItem, error) {
	var docs []*menuItemDocument

	sort := bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}
	if err := findAll(repo.withSession(ctx), repo.collection(menuItemsCollection), filter, sort, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to find menu items")
	}

	items := make([]*entity.MenuItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, toMenuItemDomain(doc))
	}

	return items, nil
}
