package mongodb

import (
	"context"

	"foodorder/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoTransactionManager runs callbacks inside a multi-document transaction.
// Transactions require a replica set or sharded cluster.
type mongoTransactionManager struct {
	db *mongo.Database
}

// mongoRepositoryFactory hands out repositories bound to one session.
type mongoRepositoryFactory struct {
	store store
}

// UserRepo returns a user repository bound to the session.
func (f *mongoRepositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{store: f.store}
}

// RestaurantRepo returns a restaurant repository bound to the session.
func (f *mongoRepositoryFactory) RestaurantRepo() repository.RestaurantRepository {
	return &restaurantRepository{store: f.store}
}

// MenuRepo returns a menu repository bound to the session.
func (f *mongoRepositoryFactory) MenuRepo() repository.MenuRepository {
	return &menuRepository{store: f.store}
}

// CartRepo returns a cart repository bound to the session.
func (f *mongoRepositoryFactory) CartRepo() repository.CartRepository {
	return &cartRepository{store: f.store}
}

// OrderRepo returns an order repository bound to the session.
func (f *mongoRepositoryFactory) OrderRepo() repository.OrderRepository {
	return &orderRepository{store: f.store}
}

// NewTransactionManager is the constructor for mongoTransactionManager.
func NewTransactionManager(db *mongo.Database) repository.TransactionManager {
	return &mongoTransactionManager{db: db}
}

// Execute runs fn in a transaction. WithTransaction retries transient commit errors,
// so fn may be invoked more than once.
func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	session, err := tm.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	factory := &mongoRepositoryFactory{store: store{db: tm.db, session: session}}

	_, err = session.WithTransaction(ctx, func(_ mongo.SessionContext) (any, error) {
		return nil, fn(factory)
	})

	return err
}
