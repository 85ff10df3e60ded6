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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxCartUpsertAttempts bounds the retries when two first adds race to create the cart.
const maxCartUpsertAttempts = 3

// cartRepository implements the repository.CartRepository interface.
// A cart is one document keyed by the customer ID with an ordered items array.
type cartRepository struct {
	store
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *mongo.Database) repository.CartRepository {
	return &cartRepository{store: store{db: db}}
}

// FindByCustomer retrieves the customer's cart.
func (repo *cartRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	var doc cartDocument

	if err := repo.collection(cartsCollection).FindOne(repo.withSession(ctx), bson.M{"_id": customerID.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return toCartDomain(&doc), nil
}

// AddItem increments the matching line in place, otherwise pushes a new line,
// creating the cart document on first use.
func (repo *cartRepository) AddItem(ctx context.Context, customerID, menuItemID uuid.UUID, quantity int) (*entity.Cart, error) {
	ctx = repo.withSession(ctx)
	coll := repo.collection(cartsCollection)
	cartID, itemID := customerID.String(), menuItemID.String()

	for attempt := 1; ; attempt++ {
		now := time.Now().UTC()

		result, err := coll.UpdateOne(ctx,
			bson.M{"_id": cartID, "items.menu_item_id": itemID},
			bson.M{
				"$inc": bson.M{"items.$.quantity": quantity},
				"$set": bson.M{"updated_at": now},
			},
		)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to increment cart item")
		}
		if result.MatchedCount > 0 {
			break
		}

		_, err = coll.UpdateOne(ctx,
			bson.M{"_id": cartID, "items.menu_item_id": bson.M{"$ne": itemID}},
			bson.M{
				"$push":        bson.M{"items": cartLineDocument{MenuItemID: itemID, Quantity: quantity}},
				"$set":         bson.M{"updated_at": now},
				"$setOnInsert": bson.M{"created_at": now},
			},
			options.Update().SetUpsert(true),
		)
		if err == nil {
			break
		}
		// The line appeared between the two updates, so the upsert collided with the existing cart.
		if !mongo.IsDuplicateKeyError(err) || attempt == maxCartUpsertAttempts {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
		}
	}

	return repo.FindByCustomer(ctx, customerID)
}

// RemoveItem pulls the line for menuItemID if present.
func (repo *cartRepository) RemoveItem(ctx context.Context, customerID, menuItemID uuid.UUID) (*entity.Cart, error) {
	ctx = repo.withSession(ctx)

	result, err := repo.collection(cartsCollection).UpdateOne(ctx,
		bson.M{"_id": customerID.String()},
		bson.M{
			"$pull": bson.M{"items": bson.M{"menu_item_id": menuItemID.String()}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}
	if result.MatchedCount == 0 {
		return nil, repository.ErrCartNotFound
	}

	return repo.FindByCustomer(ctx, customerID)
}

// Clear empties the items array but keeps the document.
func (repo *cartRepository) Clear(ctx context.Context, customerID uuid.UUID) error {
	result, err := repo.collection(cartsCollection).UpdateOne(repo.withSession(ctx),
		bson.M{"_id": customerID.String()},
		bson.M{"$set": bson.M{"items": bson.A{}, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}
	if result.MatchedCount == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}
