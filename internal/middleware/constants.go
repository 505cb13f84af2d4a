package middleware

// HTTP Header Names
const (
	// HeaderPlayerID selects the acting player. When absent the default player is used.
	HeaderPlayerID = "X-Player-ID"
)

// Default Values
const (
	// NoPlayerID is returned when the context carries no player.
	NoPlayerID int64 = 0
)

// Log Messages
const (
	// LogMsgInvalidPlayerHeader indicates a malformed player header
	LogMsgInvalidPlayerHeader = "Rejected request with invalid player header"
)

// Error Messages
const (
	// ErrMsgInvalidPlayerHeader is returned to clients sending a malformed player header
	ErrMsgInvalidPlayerHeader = "Invalid X-Player-ID header"
)
