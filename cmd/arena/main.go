// Command arena is the terminal game: build two armies from the item
// catalog and watch them fight round by round.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/BattleArena_Go/internal/bootstrap"
	"github.com/osse101/BattleArena_Go/internal/config"
	"github.com/osse101/BattleArena_Go/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "arena:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	// the game owns the terminal: without LOG_FILE only errors reach stderr
	if cfg.LogFile == "" {
		cfg.LogLevel = "error"
	}
	logCloser, err := bootstrap.SetupLogger(cfg, true)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loaded, err := bootstrap.LoadCatalog(ctx, cfg)
	if err != nil {
		_ = logCloser.Close()
		return err
	}

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		loaded.Close()
		_ = logCloser.Close()
		return err
	}

	defer bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{
		Events:  events,
		Catalog: loaded,
		Logger:  logCloser,
	})

	interactive := tui.IsTerminal(os.Stdout)
	app := tui.New(os.Stdin, os.Stdout, loaded.Catalog, tui.Options{
		MaxRounds: cfg.MaxRounds,
		Bus:       events.Bus,
		Clear:     interactive,
		Pause:     true,
	})

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Session failed", "error", err)
		return err
	}
	return nil
}
