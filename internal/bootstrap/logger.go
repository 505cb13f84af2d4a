package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/GatchaLife_Go/internal/config"
	"github.com/osse101/GatchaLife_Go/internal/logger"
)

// SetupLogger installs the default logger. Output goes to stdout and, when
// LOG_DIR is set, also to a new session file in that directory. The returned
// file is nil without LOG_DIR; otherwise the caller must close it.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		!cfg.IsProduction(),
	)

	var (
		w       io.Writer = os.Stdout
		logFile *os.File
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}
		cleanupLogs(cfg.LogDir)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, f)
	}

	logger.InitLoggerWithWriter(loggerConfig, w)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel(), "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingGatchaLife,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port)

	for _, warning := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "detail", warning)
	}

	return logFile, nil
}

// cleanupLogs removes old session logs, keeping the most recent
// LogFileRetentionCount. Session names sort chronologically.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= LogFileRetentionCount {
		return
	}
	slices.Sort(names)

	for _, name := range names[:len(names)-LogFileRetentionCount] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
