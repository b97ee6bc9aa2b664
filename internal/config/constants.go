package config

const (
	// Configuration file paths
	ConfigPathItems = "configs/items.json"
	DefaultSQLite   = "data/arena.db"
)

// Catalog sources
const (
	CatalogSourceJSON     = "json"
	CatalogSourceSQLite   = "sqlite"
	CatalogSourcePostgres = "postgres"
)

// Environments
const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
	EnvTest    = "test"
)

// Insecure example values that should never reach production
const (
	ExampleDBPassword = "postgres"
)
