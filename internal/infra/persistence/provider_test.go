package persistence

import (
	"log/slog"
	"testing"

	"foodorder/config"
	"foodorder/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func TestNew_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{Storage: &config.StorageConfig{Driver: "cassandra"}}

	_, err := New(Params{Lifecycle: fxtest.NewLifecycle(t), Config: cfg, Logger: slog.Default()})
	assert.ErrorContains(t, err, "unsupported storage driver")
}

func TestNew_MongoRequiresURI(t *testing.T) {
	cfg := &config.Config{
		Storage: &config.StorageConfig{Driver: constants.StorageDriverMongo},
		Mongo:   &config.MongoConfig{Database: "foodorder"},
	}

	_, err := New(Params{Lifecycle: fxtest.NewLifecycle(t), Config: cfg, Logger: slog.Default()})
	assert.ErrorContains(t, err, "mongo uri must be provided")
}
