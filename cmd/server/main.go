// Command server runs battles headlessly behind an HTTP API
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/BattleArena_Go/internal/battle"
	"github.com/osse101/BattleArena_Go/internal/bootstrap"
	"github.com/osse101/BattleArena_Go/internal/config"
	"github.com/osse101/BattleArena_Go/internal/roster"
	"github.com/osse101/BattleArena_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logCloser, err := bootstrap.SetupLogger(cfg, false)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loaded, err := bootstrap.LoadCatalog(ctx, cfg)
	if err != nil {
		slog.Error("Catalog failed", "error", err)
		_ = logCloser.Close()
		os.Exit(1)
	}

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system failed", "error", err)
		loaded.Close()
		_ = logCloser.Close()
		os.Exit(1)
	}

	battles := battle.NewService(roster.NewBuilder(loaded.Catalog), events.Bus, battle.ServiceConfig{
		MaxRounds: cfg.MaxRounds,
		CacheSize: cfg.BattleCacheMax,
		CacheTTL:  cfg.BattleCacheTTL,
	})

	srv := server.NewServer(cfg.Port, server.Deps{
		Catalog:     loaded.Catalog,
		Battles:     battles,
		Store:       loaded.Store,
		Version:     cfg.Version,
		RateLimiter: server.NewRateLimiter(server.DefaultRateLimit, server.DefaultRateWindow),
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
	case err, ok := <-errCh:
		if ok {
			slog.Error("Server failed", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		Events:  events,
		Catalog: loaded,
		Logger:  logCloser,
	})
	cancel()
	os.Exit(exitCode)
}
