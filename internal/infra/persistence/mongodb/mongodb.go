// Package mongodb contains the document store implementation of the persistence layer.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"foodorder/config"
	"foodorder/internal/domain/lifecycle"
	"foodorder/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Collection names.
const (
	usersCollection       = "users"
	restaurantsCollection = "restaurants"
	menuItemsCollection   = "menu_items"
	cartsCollection       = "carts"
	ordersCollection      = "orders"
	devicesCollection     = "user_devices"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the configured database.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo uri must be provided")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongo database must be provided")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(params.Config.Env.ServiceName).
		SetTimeout(cfg.Timeout)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}
	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if params.Config.Storage != nil && params.Config.Storage.AutoMigrate {
				if err := EnsureIndexes(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("MongoDB indexes ensured", slog.String("database", cfg.Database))
			}

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// EnsureIndexes creates the indexes the repositories rely on for uniqueness and ordering.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		restaurantsCollection: {
			{Keys: bson.D{{Key: "owner_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		menuItemsCollection: {
			{Keys: bson.D{{Key: "restaurant_id", Value: 1}, {Key: "category", Value: 1}, {Key: "name", Value: 1}}},
		},
		ordersCollection: {
			{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "restaurant_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		devicesCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "device_id", Value: 1}}},
			{Keys: bson.D{{Key: "fcm_token", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", name)
		}
	}

	return nil
}

// store is embedded by every repository. When session is set, each call joins that transaction.
type store struct {
	db      *mongo.Database
	session mongo.Session
}

func (s store) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s store) withSession(ctx context.Context) context.Context {
	if s.session == nil {
		return ctx
	}

	return mongo.NewSessionContext(ctx, s.session)
}

// stampNew assigns an ID and creation timestamps to a new document's entity.
func stampNew(id *uuid.UUID, createdAt, updatedAt *time.Time) error {
	if *id == uuid.Nil {
		generated, err := newID()
		if err != nil {
			return errors.Wrap(err, "failed to generate ID")
		}
		*id = generated
	}

	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}

	return nil
}

// findAll runs a query and decodes every result into out.
func findAll(ctx context.Context, coll *mongo.Collection, filter any, sort bson.D, out any) error {
	opts := findOptions(sort)

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}

	return cursor.All(ctx, out)
}

func findOptions(sort bson.D) *options.FindOptions {
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}

	return opts
}
