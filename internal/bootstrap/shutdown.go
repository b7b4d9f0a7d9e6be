package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/multierr"
)

// Stopper is satisfied by the HTTP server.
type Stopper interface {
	Stop(context.Context) error
}

// Shutdowner is satisfied by services that drain in-flight work.
type Shutdowner interface {
	Shutdown(context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server   Stopper
	Services map[string]Shutdowner
	// ClosePool releases database connections. It runs last.
	ClosePool func()
}

// GracefulShutdown stops the HTTP server first so no new work arrives, then
// drains services, then closes the pool. Every step runs even if an earlier
// one failed; the failures are combined in the returned error.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) error {
	slog.Info(LogMsgShuttingDownServer)

	var errs error
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
			errs = multierr.Append(errs, err)
		}
	}

	for name, svc := range components.Services {
		errs = multierr.Append(errs, shutdownService(ctx, name, svc))
	}

	if components.ClosePool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.ClosePool()
	}

	slog.Info(LogMsgServerStopped)
	return errs
}

func shutdownService(ctx context.Context, name string, service Shutdowner) error {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
		return err
	}
	return nil
}
