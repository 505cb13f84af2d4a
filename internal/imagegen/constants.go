package imagegen

import "time"

// Defaults
const (
	DefaultTimeout     = 10 * time.Minute
	DefaultConcurrency = 5
	DefaultPendingTTL  = DefaultTimeout
	// MaxResponseBytes bounds the artifact read from a synchronous response.
	MaxResponseBytes = 32 << 20
)

// HTTP
const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
	FallbackMimeType  = "image/png"
)

// Outcome statuses
const (
	StatusExisting  = "existing"
	StatusGenerated = "generated"
	StatusPending   = "pending"
	StatusFailed    = "failed"
	StatusSkipped   = "skipped"
)

// Log messages
const (
	LogMsgEnsureStarted      = "Ensuring artwork for planned drops"
	LogMsgGenerationStarted  = "Requesting artwork generation"
	LogMsgGenerationFinished = "Artwork generated"
	LogMsgGenerationAccepted = "Artwork generation accepted, waiting for callback"
	LogMsgGenerationFailed   = "Artwork generation failed"
	LogMsgGenerationPanic    = "Artwork generation panicked"
	LogMsgNoClient           = "No artwork generator configured, skipping generation"
	LogMsgCallbackArtifact   = "Stored artwork from workflow callback"
	LogMsgCallbackFailure    = "Workflow reported artwork failure"
)

// Error messages
const (
	ErrMsgFailedToEncodePayload = "failed to encode generation payload"
	ErrMsgFailedToBuildRequest  = "failed to build generation request"
	ErrMsgRequestFailed         = "generation request failed"
	ErrMsgUnexpectedStatus      = "generator returned unexpected status"
	ErrMsgFailedToReadResponse  = "failed to read generation response"
	ErrMsgEmptyArtifact         = "generator returned an empty body"
	ErrMsgArtifactTooLarge      = "generator returned an artifact over the size limit"
	ErrMsgFailedToCheckImages   = "failed to check existing artwork"
	ErrMsgFailedToCreateImage   = "failed to create artwork record"
	ErrMsgFailedToStoreImage    = "failed to store artwork"
	ErrMsgFailedToCreateJob     = "failed to create generation job"
	ErrMsgInvalidTarget         = "invalid generated image id"
	ErrMsgDecodeArtifact        = "failed to decode artifact"
	ErrMsgPanic                 = "panic during generation"
)
