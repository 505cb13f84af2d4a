// @title GatchaLife API
// @version 1.0
// @description Gacha roll engine: rolls, card collection and artwork delivery.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/GatchaLife_Go/internal/bootstrap"
	"github.com/osse101/GatchaLife_Go/internal/config"
	"github.com/osse101/GatchaLife_Go/internal/database"
	"github.com/osse101/GatchaLife_Go/internal/scheduler"
	"github.com/osse101/GatchaLife_Go/internal/server"
	"github.com/osse101/GatchaLife_Go/internal/worker"
)

// backfillQueueSize bounds pending background jobs; the scheduler drops
// triggers while the queue is full.
const backfillQueueSize = 4

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
	if err != nil {
		return err
	}
	if err := database.Migrate(dbPool); err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(cfg, repos)

	if err := bootstrap.SyncCatalog(ctx, cfg.CatalogSeedPath, repos.Catalog, services.Catalog); err != nil {
		dbPool.Close()
		return err
	}

	pool := worker.NewPool(cfg.WorkerCount, backfillQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	backfill := worker.NewBackfillJob(services.Collection, cfg.BackfillBatch)
	if err := sched.Schedule("artwork_backfill", cfg.BackfillSchedule, backfill); err != nil {
		_ = pool.Stop(ctx)
		dbPool.Close()
		return err
	}
	sched.Start()

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		DefaultPlayerID: cfg.DefaultPlayerID,
	}, dbPool, services.Gacha, services.Collection, services.AsyncJobs, services.Events)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Events:     services.Events,
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
		DBPool:     dbPool,
	})

	return runErr
}
