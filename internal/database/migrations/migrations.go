// Package migrations embeds the goose SQL migrations for every supported
// store and applies them at startup.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Dialect selects the migration set
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// FS returns the migration files for one dialect
func FS(dialect Dialect) (fs.FS, error) {
	switch dialect {
	case Postgres, SQLite:
		return fs.Sub(files, string(dialect))
	default:
		return nil, fmt.Errorf("unsupported migration dialect %q", dialect)
	}
}

func gooseDialect(dialect Dialect) (goose.Dialect, error) {
	switch dialect {
	case Postgres:
		return goose.DialectPostgres, nil
	case SQLite:
		return goose.DialectSQLite3, nil
	default:
		return "", fmt.Errorf("unsupported migration dialect %q", dialect)
	}
}

func newProvider(db *sql.DB, dialect Dialect) (*goose.Provider, error) {
	gd, err := gooseDialect(dialect)
	if err != nil {
		return nil, err
	}
	source, err := FS(dialect)
	if err != nil {
		return nil, err
	}
	provider, err := goose.NewProvider(gd, db, source)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return provider, nil
}

// Up applies every pending migration and returns how many ran
func Up(ctx context.Context, db *sql.DB, dialect Dialect) (int, error) {
	provider, err := newProvider(db, dialect)
	if err != nil {
		return 0, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, r := range results {
		slog.Default().Debug("Applied migration", "dialect", dialect, "version", r.Source.Version, "duration", r.Duration)
	}
	return len(results), nil
}

// Version reports the highest applied migration version
func Version(ctx context.Context, db *sql.DB, dialect Dialect) (int64, error) {
	provider, err := newProvider(db, dialect)
	if err != nil {
		return 0, err
	}
	return provider.GetDBVersion(ctx)
}
