package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Gacha metric names
const (
	MetricNameRollsTotal             = "gacha_rolls_total"
	MetricNameDropsTotal             = "gacha_drops_total"
	MetricNameShortBatchesTotal      = "gacha_short_batches_total"
	MetricNameImageGenerationsTotal  = "image_generations_total"
	MetricNameImageGenerationSeconds = "image_generation_duration_seconds"
	MetricNameAsyncCallbacksTotal    = "async_job_callbacks_total"
	MetricNameBackfillRunsTotal      = "artwork_backfill_runs_total"
	MetricNameWorkerQueueDepth       = "worker_queue_depth"
)

// Event stream metric names
const (
	MetricNameStreamClients     = "sse_clients"
	MetricNameStreamEventsTotal = "sse_events_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Gacha metric help text
const (
	HelpTextRollsTotal             = "Total number of roll requests by outcome"
	HelpTextDropsTotal             = "Total number of cards granted by rarity"
	HelpTextShortBatchesTotal      = "Roll batches that delivered fewer drops than requested, by reason"
	HelpTextImageGenerationsTotal  = "Image generation attempts by result"
	HelpTextImageGenerationSeconds = "Latency of calls to the image generation service"
	HelpTextAsyncCallbacksTotal    = "Async job callbacks processed by resulting status"
	HelpTextBackfillRunsTotal      = "Artwork backfill passes by result"
	HelpTextWorkerQueueDepth       = "Jobs waiting in the background worker queue"
)

// Event stream metric help text
const (
	HelpTextStreamClients     = "Currently connected event stream clients"
	HelpTextStreamEventsTotal = "Events offered to stream clients by type and delivery result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelRarity  = "rarity"
	LabelReason  = "reason"
	LabelResult  = "result"
	LabelType    = "type"
)

// Roll outcomes
const (
	OutcomeSuccess           = "success"
	OutcomeInsufficientFunds = "insufficient_funds"
	OutcomeCatalogError      = "catalog_error"
	OutcomeError             = "error"
)

// Image generation results
const (
	ResultGenerated = "generated"
	ResultPending   = "pending"
	ResultFailed    = "failed"
	ResultSkipped   = "skipped"
	ResultCompleted = "completed"
)

// Event delivery results
const (
	ResultSent    = "sent"
	ResultDropped = "dropped"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// GenerationLatencyBuckets spans quick acknowledgements up to the 10 minute client timeout.
var GenerationLatencyBuckets = []float64{.1, .5, 1, 5, 15, 30, 60, 120, 300, 600}

// UnmatchedRoute labels requests that did not hit a registered route.
const UnmatchedRoute = "unmatched"
