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

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	store
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *mongo.Database) repository.RestaurantRepository {
	return &restaurantRepository{store: store{db: db}}
}

// Create persists a new restaurant. The unique owner_id index keeps one restaurant per owner.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	if err := stampNew(&restaurant.ID, &restaurant.CreatedAt, &restaurant.UpdatedAt); err != nil {
		return err
	}

	if _, err := repo.collection(restaurantsCollection).InsertOne(repo.withSession(ctx), fromRestaurantDomain(restaurant)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateRestaurantOwner
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	return nil
}

// Update overwrites the mutable profile fields.
func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	now := time.Now().UTC()

	result, err := repo.collection(restaurantsCollection).UpdateOne(repo.withSession(ctx),
		bson.M{"_id": restaurant.ID.String()},
		bson.M{"$set": bson.M{
			"name":          restaurant.Name,
			"address":       restaurant.Address,
			"phone":         restaurant.Phone,
			"logo_url":      restaurant.LogoURL,
			"description":   restaurant.Description,
			"cuisine":       restaurant.Cuisine,
			"rating":        restaurant.Rating,
			"delivery_time": restaurant.DeliveryTime,
			"updated_at":    now,
		}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update restaurant")
	}
	if result.MatchedCount == 0 {
		return repository.ErrRestaurantNotFound
	}

	restaurant.UpdatedAt = now

	return nil
}

// FindByID retrieves a restaurant by ID.
func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()})
}

// FindByOwnerID retrieves the restaurant managed by the owner.
func (repo *restaurantRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Restaurant, error) {
	return repo.findOne(ctx, bson.M{"owner_id": ownerID.String()})
}

// FindByIDs retrieves the restaurants with the given IDs.
func (repo *restaurantRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Restaurant, error) {
	if len(ids) == 0 {
		return []*entity.Restaurant{}, nil
	}

	return repo.find(ctx, bson.M{"_id": bson.M{"$in": idStrings(ids)}})
}

// List retrieves all restaurants ordered by name.
func (repo *restaurantRepository) List(ctx context.Context) ([]*entity.Restaurant, error) {
	return repo.find(ctx, bson.M{})
}

func (repo *restaurantRepository) find(ctx context.Context, filter bson.M) ([]*entity.Restaurant, error) {
	var docs []*restaurantDocument

	sort := bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}
	if err := findAll(repo.withSession(ctx), repo.collection(restaurantsCollection), filter, sort, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(docs))
	for _, doc := range docs {
		restaurants = append(restaurants, toRestaurantDomain(doc))
	}

	return restaurants, nil
}

func (repo *restaurantRepository) findOne(ctx context.Context, filter bson.M) (*entity.Restaurant, error) {
	var doc restaurantDocument

	if err := repo.collection(restaurantsCollection).FindOne(repo.withSession(ctx), filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return toRestaurantDomain(&doc), nil
}
