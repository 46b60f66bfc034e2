package bootstrap

import (
	"context"
	"log/slog"
)

type stoppable interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server stoppable
	Store  *Store
}

// GracefulShutdown stops the HTTP server, flushes the store snapshot and
// releases its connection. Errors are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil {
		if err := components.Store.Verification.PersistAll(ctx); err != nil {
			slog.Error(LogMsgStoreFlushFailed, "backend", components.Store.Backend, "error", err)
		}
		components.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
