package bootstrap

import (
	"log/slog"

	"github.com/osse101/GatchaLife_Go/internal/asyncjob"
	"github.com/osse101/GatchaLife_Go/internal/catalog"
	"github.com/osse101/GatchaLife_Go/internal/collection"
	"github.com/osse101/GatchaLife_Go/internal/config"
	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/gacha"
	"github.com/osse101/GatchaLife_Go/internal/imagegen"
	"github.com/osse101/GatchaLife_Go/internal/sse"
)

// Services holds the application services built on top of the repositories.
type Services struct {
	Catalog     catalog.Store
	AsyncJobs   asyncjob.Service
	Coordinator *imagegen.Coordinator
	Gacha       gacha.Service
	Collection  collection.Service
	Events      *sse.Hub
}

// InitializeServices wires the catalog cache, the event hub, the async job
// ledger, the artwork coordinator and the gacha and collection services.
func InitializeServices(cfg *config.Config, repos *Repositories) *Services {
	store := catalog.NewStore(repos.Catalog, cfg.CatalogCacheTTL)
	hub := sse.NewHub()

	registry := asyncjob.NewRegistry()
	registry.Register(domain.JobTypeGenerateImage, imagegen.NewJobHandler(repos.Image))
	jobs := asyncjob.NewService(repos.AsyncJob, registry, hub)

	var client imagegen.Client
	if cfg.ImageGenURL != "" {
		client = imagegen.NewHTTPClient(cfg.ImageGenURL, cfg.ImageGenTimeout)
		slog.Info(LogMsgImageGenEnabled,
			"url", cfg.ImageGenURL,
			"async", cfg.ImageGenAsync,
			"concurrency", cfg.ImageGenConcurrency)
	} else {
		slog.Warn(LogMsgImageGenDisabled)
	}

	coordinator := imagegen.NewCoordinator(client, repos.Image, jobs, imagegen.Config{
		Concurrency: cfg.ImageGenConcurrency,
		Async:       cfg.ImageGenAsync,
		CallbackURL: cfg.CallbackURL(),
		PendingTTL:  cfg.ImageGenTimeout,
	})

	gachaSvc := gacha.NewService(store, repos.Catalog, repos.Collection, coordinator, hub, gacha.DefaultRNG(), gacha.Config{
		RollCost:    cfg.RollCost,
		BatchSize:   cfg.RollBatchSize,
		MaxAttempts: cfg.RollMaxAttempts,
	})
	collectionSvc := collection.NewService(repos.Collection, repos.Image, store, coordinator, cfg.PublicBaseURL)

	return &Services{
		Catalog:     store,
		AsyncJobs:   jobs,
		Coordinator: coordinator,
		Gacha:       gachaSvc,
		Collection:  collectionSvc,
		Events:      hub,
	}
}
