package config

import "time"

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	DefaultServiceName = "gatchalife"

	DefaultDBMaxConns = 10
	DefaultDBMaxIdle  = 5 * time.Minute
	DefaultDBMaxLife  = time.Hour

	DefaultRollCost        = 100
	DefaultRollBatchSize   = 5
	DefaultRollMaxAttempts = 20
	DefaultPlayerID        = 1
	DefaultCatalogCacheTTL = 30 * time.Second

	DefaultImageGenTimeout     = 10 * time.Minute
	DefaultImageGenConcurrency = 5

	DefaultBackfillSchedule = "@every 15m"
	DefaultBackfillBatch    = 10
	DefaultWorkerCount      = 2

	DefaultCatalogSeedPath = "configs/catalog.json"
	DefaultShutdownTimeout = 30 * time.Second
)

// CallbackPath is the route the workflow engine calls back on.
const CallbackPath = "/workflow/callback/"
