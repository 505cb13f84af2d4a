package logger

import (
	"log/slog"
	"strings"
)

// Config selects the handler and the attributes stamped on every record.
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig builds a Config. An empty service name falls back to
// DefaultServiceName and an empty version to DefaultVersion.
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	if version == "" {
		version = DefaultVersion
	}
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// LogLevel maps the configured level name to a slog level. Unknown names log at info.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes are attached to every record so log lines from several
// deployments can be told apart.
func (c Config) BaseAttributes() []slog.Attr {
	attrs := []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
	}
	if c.Environment != "" {
		attrs = append(attrs, slog.String(AttrKeyEnvironment, c.Environment))
	}
	return attrs
}
