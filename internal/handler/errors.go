package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path and query parameter error messages
	ErrMsgInvalidID        = "Invalid id"
	ErrMsgInvalidBoolParam = "Invalid value for %s, expected true or false"

	// Callback error messages
	ErrMsgInvalidCallback  = "Invalid callback payload"
	ErrMsgCallbackTooLarge = "Callback payload too large"
)

// Operation names used in logs
const (
	OpRoll        = "Roll"
	OpListCards   = "List collection"
	OpGetCard     = "Get card"
	OpRerollImage = "Reroll image"
	OpGetPlayer   = "Get player"
	OpCallback    = "Workflow callback"
	OpServeImage  = "Serve image"
	OpRenderCards = "Render cards"
)

// Query parameters
const (
	QueryParamRarity       = "rarity"
	QueryParamStyle        = "style"
	QueryParamTheme        = "theme"
	QueryParamCharacter    = "character"
	QueryParamSeries       = "series"
	QueryParamShowAll      = "show_all"
	QueryParamShowArchived = "show_archived"
)

// Callback form fields
const (
	FormFieldJobID  = "job_id"
	FormFieldStatus = "status"
	FormFieldData   = "data"
	FormFieldError  = "error"
	FormFieldFile   = "file"

	// MaxCallbackBytes bounds callback bodies, uploads included.
	MaxCallbackBytes = 64 << 20
	// MaxCallbackMemory is the multipart size kept in memory before spilling to disk.
	MaxCallbackMemory = 32 << 20
)
