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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	store
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{store: store{db: db}}
}

// Create persists a new order snapshot.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if err := stampNew(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	if _, err := repo.collection(ordersCollection).InsertOne(repo.withSession(ctx), fromOrderDomain(order)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// FindByID retrieves an order by ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var doc orderDocument

	if err := repo.collection(ordersCollection).FindOne(repo.withSession(ctx), bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&doc), nil
}

// FindByCustomer lists a customer's orders, newest first.
func (repo *orderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	return repo.findNewestFirst(ctx, bson.M{"customer_id": customerID.String()})
}

// FindByRestaurant lists a restaurant's orders, newest first.
func (repo *orderRepository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Order, error) {
	return repo.findNewestFirst(ctx, bson.M{"restaurant_id": restaurantID.String()})
}

// UpdateStatus moves the order only if it is still in from.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	ctx = repo.withSession(ctx)
	coll := repo.collection(ordersCollection)

	result, err := coll.UpdateOne(ctx,
		bson.M{"_id": id.String(), "status": from.String()},
		bson.M{"$set": bson.M{"status": to.String(), "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order status")
	}
	if result.MatchedCount > 0 {
		return nil
	}

	count, err := coll.CountDocuments(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return errors.Wrap(err, "failed to check order")
	}
	if count == 0 {
		return repository.ErrOrderNotFound
	}

	return repository.ErrOrderStatusMismatch
}

func (repo *orderRepository) findNewestFirst(ctx context.Context, filter bson.M) ([]*entity.Order, error) {
	var docs []*orderDocument

	sort := bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	if err := findAll(repo.withSession(ctx), repo.collection(ordersCollection), filter, sort, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, toOrderDomain(doc))
	}

	return orders, nil
}
