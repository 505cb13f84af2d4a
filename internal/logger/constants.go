package logger

// Level names accepted in LOG_LEVEL
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

const LogFormatJSON = "json"

const (
	DefaultServiceName = "gatchalife"
	DefaultVersion     = "dev"
)

// Attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyPlayerID    = "player_id"
)
