// Package persistence selects the storage backend and exposes its repositories.
package persistence

import (
	"log/slog"

	"foodorder/config"
	"foodorder/internal/domain/constants"
	"foodorder/internal/domain/repository"
	"foodorder/internal/errors"
	"foodorder/internal/infra/persistence/mongodb"
	"foodorder/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Module provides every repository of the configured backend.
var Module = fx.Options(fx.Provide(New))

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of stores handed to the use cases.
type Repositories struct {
	fx.Out

	TxManager   repository.TransactionManager
	Users       repository.UserRepository
	Restaurants repository.RestaurantRepository
	Menu        repository.MenuRepository
	Carts       repository.CartRepository
	Orders      repository.OrderRepository
	Devices     repository.DeviceRepository
}

// New opens the configured store and builds its repositories.
func New(params Params) (Repositories, error) {
	driver := constants.StorageDriverPostgres
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL storage")

		return Repositories{
			TxManager:   postgres.NewTransactionManager(db),
			Users:       postgres.NewUserRepository(db),
			Restaurants: postgres.NewRestaurantRepository(db),
			Menu:        postgres.NewMenuRepository(db),
			Carts:       postgres.NewCartRepository(db),
			Orders:      postgres.NewOrderRepository(db),
			Devices:     postgres.NewDeviceRepository(db),
		}, nil

	case constants.StorageDriverMongo:
		db, err := mongodb.New(mongodb.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using MongoDB storage")

		return Repositories{
			TxManager:   mongodb.NewTransactionManager(db),
			Users:       mongodb.NewUserRepository(db),
			Restaurants: mongodb.NewRestaurantRepository(db),
			Menu:        mongodb.NewMenuRepository(db),
			Carts:       mongodb.NewCartRepository(db),
			Orders:      mongodb.NewOrderRepository(db),
			Devices:     mongodb.NewDeviceRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported storage driver: %s", driver)
	}
}
