package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GatchaLife_Go/internal/scheduler"
	"github.com/osse101/GatchaLife_Go/internal/server"
	"github.com/osse101/GatchaLife_Go/internal/sse"
	"github.com/osse101/GatchaLife_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Events     *sse.Hub
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	DBPool     *pgxpool.Pool
}

// GracefulShutdown stops the application in dependency order:
// 1. Event hub (end open streams so the server can drain)
// 2. HTTP server (stop accepting new requests, drain in-flight rolls)
// 3. Scheduler (no new backfill triggers)
// 4. Worker pool (finish or cancel running backfills)
// 5. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Events != nil {
		components.Events.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		if err := components.Scheduler.Stop(ctx); err != nil {
			slog.Error(LogMsgSchedulerStopFailed, "error", err)
		}
	}

	if components.WorkerPool != nil {
		if err := components.WorkerPool.Stop(ctx); err != nil {
			slog.Error(LogMsgWorkerPoolStopFailed, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
