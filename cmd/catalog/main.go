// Command catalog checks an item catalog file and imports it into the
// SQLite or Postgres catalog store.
//
//	catalog validate [file]
//	catalog sync [file]
//
// The file defaults to CATALOG_PATH; sync writes to the store named by
// CATALOG_SOURCE.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/BattleArena_Go/internal/bootstrap"
	"github.com/osse101/BattleArena_Go/internal/catalog"
	"github.com/osse101/BattleArena_Go/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "catalog:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("usage: catalog validate|sync [file]")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}
	if len(args) == 2 {
		cfg.CatalogPath = args[1]
	}

	logCloser, err := bootstrap.SetupLogger(cfg, false)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	switch args[0] {
	case "validate":
		return validate(cfg.CatalogPath, out)
	case "sync":
		return syncStore(ctx, cfg, out)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func validate(path string, out io.Writer) error {
	loader := catalog.NewLoader()
	itemConfig, err := loader.Load(path)
	if err != nil {
		return err
	}
	c, err := loader.Build(itemConfig)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %d items OK\n", path, c.Len())
	return nil
}

func syncStore(ctx context.Context, cfg *config.Config, out io.Writer) error {
	if cfg.CatalogSource == config.CatalogSourceJSON {
		return fmt.Errorf("CATALOG_SOURCE must be %q or %q to sync", config.CatalogSourceSQLite, config.CatalogSourcePostgres)
	}
	if err := validate(cfg.CatalogPath, out); err != nil {
		return err
	}

	// LoadCatalog imports the file before reading the store back
	loaded, err := bootstrap.LoadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	defer loaded.Close()

	count, err := loaded.Store.CountItems(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s store holds %d items\n", cfg.CatalogSource, count)
	return nil
}
