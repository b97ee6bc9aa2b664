package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/BattleArena_Go/internal/server"
)

// ShutdownComponents holds everything that needs releasing on exit
type ShutdownComponents struct {
	Server  *server.Server
	Events  *EventSystem
	Catalog *LoadedCatalog
	Logger  io.Closer
}

// GracefulShutdown stops components in dependency order: the HTTP server
// first so no new battles start, then the event journal, then the
// catalog store, and the log file last. Errors are logged and the
// sequence continues.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		} else {
			slog.Info(LogMsgServerStopped)
		}
	}

	if err := components.Events.Close(); err != nil {
		slog.Error(LogMsgCloseFailed, "component", "journal", "error", err)
	}

	components.Catalog.Close()

	if components.Logger != nil {
		_ = components.Logger.Close()
	}
}
