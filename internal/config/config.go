// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/BattleArena_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogFile     string `env:"LOG_FILE"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"battle-arena"`
	Version     string `env:"VERSION" envDefault:"dev"`

	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"json"`
	CatalogPath   string `env:"CATALOG_PATH" envDefault:"configs/items.json"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"data/arena.db"`

	DBUser        string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword    string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost        string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string        `env:"DB_PORT" envDefault:"5432"`
	DBName        string        `env:"DB_NAME" envDefault:"battlearena"`
	DBMaxConns    int           `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMaxConnIdle time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBMaxConnLife time.Duration `env:"DB_MAX_CONN_LIFE" envDefault:"1h"`

	Port           int           `env:"PORT" envDefault:"8080"`
	MaxRounds      int           `env:"MAX_ROUNDS" envDefault:"1000"`
	BattleCacheMax int           `env:"BATTLE_CACHE_SIZE" envDefault:"256"`
	BattleCacheTTL time.Duration `env:"BATTLE_CACHE_TTL" envDefault:"1h"`
	JournalPath    string        `env:"BATTLE_JOURNAL_PATH"`
}

// Load reads an optional .env file, parses the environment and validates the result
func Load() (*Config, error) {
	// Real environment variables win over the file
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.CatalogSource = strings.ToLower(strings.TrimSpace(cfg.CatalogSource))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enums and numeric ranges
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.LogLevel) {
		errs = append(errs, fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel))
	}
	if !slices.Contains([]string{"text", "json"}, c.LogFormat) {
		errs = append(errs, fmt.Errorf("invalid LOG_FORMAT %q", c.LogFormat))
	}
	if !slices.Contains([]string{EnvDev, EnvStaging, EnvProd, EnvTest}, c.Environment) {
		errs = append(errs, fmt.Errorf("invalid ENVIRONMENT %q", c.Environment))
	}
	if !slices.Contains([]string{CatalogSourceJSON, CatalogSourceSQLite, CatalogSourcePostgres}, c.CatalogSource) {
		errs = append(errs, fmt.Errorf("invalid CATALOG_SOURCE %q", c.CatalogSource))
	}
	if c.CatalogSource == CatalogSourceJSON && strings.TrimSpace(c.CatalogPath) == "" {
		errs = append(errs, errors.New("CATALOG_PATH must be set for the json catalog"))
	}
	if c.CatalogSource == CatalogSourceSQLite && strings.TrimSpace(c.SQLitePath) == "" {
		errs = append(errs, errors.New("SQLITE_PATH must be set for the sqlite catalog"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT value %d", c.Port))
	}
	if c.MaxRounds < 0 {
		errs = append(errs, fmt.Errorf("MAX_ROUNDS must not be negative, got %d", c.MaxRounds))
	}
	if c.BattleCacheMax <= 0 {
		errs = append(errs, fmt.Errorf("BATTLE_CACHE_SIZE must be positive, got %d", c.BattleCacheMax))
	}
	if c.BattleCacheTTL < 0 {
		errs = append(errs, fmt.Errorf("BATTLE_CACHE_TTL must not be negative, got %s", c.BattleCacheTTL))
	}
	if c.DBMaxConns <= 0 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, errors.Join(errs...))
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
