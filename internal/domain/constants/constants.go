// Package constants contains configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMongo    = "mongo"
)

// Event publisher providers
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)
