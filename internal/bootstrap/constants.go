package bootstrap

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644

	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingGatchaLife  = "Starting GatchaLife"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Catalog Sync Messages
// =============================================================================

const (
	LogMsgSyncingCatalog      = "Syncing catalog from JSON seed..."
	LogMsgCatalogSynced       = "Catalog synced successfully"
	LogMsgCatalogSyncDisabled = "No catalog seed configured, sync skipped"

	ErrMsgCatalogSchema     = "catalog seed does not match schema"
	ErrMsgFailedLoadCatalog = "failed to load catalog seed"
	ErrMsgInvalidCatalog    = "invalid catalog seed"
	ErrMsgFailedSyncCatalog = "failed to sync catalog to database"
)

// =============================================================================
// Service Wiring Messages
// =============================================================================

const (
	LogMsgImageGenDisabled = "Image generation disabled, no IMAGE_GEN_URL configured"
	LogMsgImageGenEnabled  = "Image generation enabled"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSchedulerStopFailed  = "Scheduler shutdown failed"
	LogMsgWorkerPoolStopFailed = "Worker pool shutdown failed"
	LogMsgClosingDatabase      = "Closing database pool"
)
