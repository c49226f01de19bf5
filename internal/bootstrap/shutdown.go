package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/placecraft/internal/scheduler"
	"github.com/osse101/placecraft/internal/server"
	"github.com/osse101/placecraft/internal/sse"
	"github.com/osse101/placecraft/internal/storage"
	"github.com/osse101/placecraft/internal/worker"
	"github.com/osse101/placecraft/internal/world"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Line      *server.LineServer
	Admin     *server.AdminServer
	Events    *sse.Hub
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Registry  *world.Registry
	Store     storage.Store
}

// GracefulShutdown stops components in dependency order:
// 1. servers (no new commands, in-flight commands finish); the event hub
// stops before the admin server so open streams end
// 2. scheduler, then worker pool (queued autosaves drain)
// 3. registry flush (snapshots whose autosave never ran)
// 4. store
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Line != nil {
		if err := c.Line.Shutdown(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "server", ServerNameLine, "error", err)
		}
	}
	if c.Events != nil {
		c.Events.Stop()
	}
	if c.Admin != nil {
		if err := c.Admin.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "server", ServerNameAdmin, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}

	if c.Pool != nil {
		if err := c.Pool.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerPoolShutdownFailed, "error", err)
		}
	}

	if c.Registry != nil {
		// The flush must outlive an expired shutdown deadline
		if err := c.Registry.Flush(context.WithoutCancel(ctx)); err != nil {
			slog.Error(LogMsgFlushFailed, "error", err)
		}
	}

	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
