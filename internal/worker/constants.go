package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerJobPanic  = "Worker job panicked"
	LogMsgQueueFull       = "Worker queue full, dropping job"
	LogMsgPoolStopping    = "Worker pool stopping"
	LogMsgPoolStopTimeout = "Worker pool stop timed out"
)

// ============================================================================
// Log Messages - Backfill Job
// ============================================================================

// Log messages for artwork backfill
const (
	LogMsgBackfillStarting  = "Artwork backfill starting"
	LogMsgBackfillStillBusy = "Previous artwork backfill still running, skipping"
)

// ErrMsgBackfillFailed wraps errors returned by a backfill pass.
const ErrMsgBackfillFailed = "artwork backfill failed"

// ============================================================================
// Defaults
// ============================================================================

const (
	// DefaultJobTimeout bounds a single job run.
	DefaultJobTimeout = 30 * time.Minute

	// DefaultBackfillBatch is used when the configured batch is not positive.
	DefaultBackfillBatch = 10
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
