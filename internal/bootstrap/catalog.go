package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/BattleArena_Go/internal/catalog"
	"github.com/osse101/BattleArena_Go/internal/config"
	"github.com/osse101/BattleArena_Go/internal/database"
	"github.com/osse101/BattleArena_Go/internal/database/postgres"
	"github.com/osse101/BattleArena_Go/internal/database/sqlite"
	"github.com/osse101/BattleArena_Go/internal/repository"
)

// LoadedCatalog is the item catalog together with the store it was read from
type LoadedCatalog struct {
	Catalog *catalog.Catalog
	// Store is nil when the catalog came straight from the JSON file
	Store repository.Catalog
	close func()
}

// Close releases the store, if any
func (l *LoadedCatalog) Close() {
	if l != nil && l.close != nil {
		l.close()
	}
}

// LoadCatalog builds the item catalog from the source cfg names. Store
// backed sources import CATALOG_PATH first when the file exists, so the
// store always reflects the latest file.
func LoadCatalog(ctx context.Context, cfg *config.Config) (*LoadedCatalog, error) {
	loader := catalog.NewLoader()

	switch cfg.CatalogSource {
	case config.CatalogSourceJSON:
		itemConfig, err := loader.Load(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
		}
		c, err := loader.Build(itemConfig)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
		}
		slog.Info(LogMsgCatalogLoaded, "source", cfg.CatalogSource, "items", c.Len())
		return &LoadedCatalog{Catalog: c}, nil

	case config.CatalogSourceSQLite:
		store, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return fromStore(ctx, cfg, loader, store, func() { _ = store.Close() })

	case config.CatalogSourcePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		applied, err := database.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		slog.Info(LogMsgMigrationsApplied, "applied", applied)
		return fromStore(ctx, cfg, loader, postgres.NewCatalogRepository(pool), pool.Close)

	default:
		return nil, fmt.Errorf(ErrMsgUnknownSource, cfg.CatalogSource)
	}
}

// OpenSQLite opens the SQLite store at path, creating its directory
func OpenSQLite(ctx context.Context, path string) (*sqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDataDir, err)
		}
	}
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}
	return store, nil
}

func fromStore(ctx context.Context, cfg *config.Config, loader catalog.Loader, store repository.Catalog, closeStore func()) (*LoadedCatalog, error) {
	if _, err := SyncItems(ctx, loader, store, cfg.CatalogPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			closeStore()
			return nil, err
		}
		slog.Warn(LogMsgCatalogFileMissing, "path", cfg.CatalogPath)
	}

	c, err := catalog.FromRepository(ctx, store)
	if err != nil {
		closeStore()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedReadCatalog, err)
	}

	slog.Info(LogMsgCatalogLoaded, "source", cfg.CatalogSource, "items", c.Len())
	return &LoadedCatalog{Catalog: c, Store: store, close: closeStore}, nil
}

// SyncItems loads the catalog file at path and imports it into store.
// An unchanged file is skipped by its fingerprint. A missing file
// surfaces as fs.ErrNotExist.
func SyncItems(ctx context.Context, loader catalog.Loader, store repository.Catalog, path string) (*catalog.SyncResult, error) {
	slog.Info(LogMsgSyncingItems, "path", path)

	itemConfig, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
	}

	result, err := loader.SyncToRepository(ctx, itemConfig, store, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncItems, err)
	}

	if result.ItemsInserted > 0 || result.ItemsUpdated > 0 {
		slog.Info(LogMsgItemsSynced,
			"inserted", result.ItemsInserted,
			"updated", result.ItemsUpdated,
			"skipped", result.ItemsSkipped)
	}
	return result, nil
}
