package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=0,max=65535"`
	APIKey      string `validate:"required"`
	LogLevel    string
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string
	Environment string
	Version     string
	ServiceName string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBMaxConns int           `validate:"min=1"`
	DBMaxIdle  time.Duration
	DBMaxLife  time.Duration

	// Gacha
	RollCost        int   `validate:"min=0"`
	RollBatchSize   int   `validate:"min=1,max=50"`
	RollMaxAttempts int   `validate:"min=1"`
	DefaultPlayerID int64 `validate:"min=1"`
	CatalogCacheTTL time.Duration

	// External image generator
	ImageGenURL         string `validate:"omitempty,url"`
	ImageGenTimeout     time.Duration
	ImageGenConcurrency int  `validate:"min=1,max=64"`
	ImageGenAsync       bool
	PublicBaseURL       string `validate:"omitempty,url"`

	// Artwork backfill
	BackfillSchedule string
	BackfillBatch    int `validate:"min=1"`
	WorkerCount      int `validate:"min=1,max=32"`

	// CatalogSeedPath is applied at startup when set.
	CatalogSeedPath string

	ShutdownTimeout time.Duration `validate:"min=0"`
	TrustedProxies  []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", ""),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", DefaultVersion),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "gatchalife"),
		DBMaxConns: getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxIdle:  getEnvAsDuration("DB_MAX_IDLE", DefaultDBMaxIdle),
		DBMaxLife:  getEnvAsDuration("DB_MAX_LIFE", DefaultDBMaxLife),

		RollCost:        getEnvAsInt("ROLL_COST", DefaultRollCost),
		RollBatchSize:   getEnvAsInt("ROLL_BATCH_SIZE", DefaultRollBatchSize),
		RollMaxAttempts: getEnvAsInt("ROLL_MAX_ATTEMPTS", DefaultRollMaxAttempts),
		DefaultPlayerID: int64(getEnvAsInt("DEFAULT_PLAYER_ID", DefaultPlayerID)),
		CatalogCacheTTL: getEnvAsDuration("CATALOG_CACHE_TTL", DefaultCatalogCacheTTL),

		ImageGenURL:         getEnv("IMAGE_GEN_URL", ""),
		ImageGenTimeout:     getEnvAsDuration("IMAGE_GEN_TIMEOUT", DefaultImageGenTimeout),
		ImageGenConcurrency: getEnvAsInt("IMAGE_GEN_CONCURRENCY", DefaultImageGenConcurrency),
		ImageGenAsync:       getEnvAsBool("IMAGE_GEN_ASYNC", false),
		PublicBaseURL:       getEnv("PUBLIC_BASE_URL", ""),

		BackfillSchedule: getEnv("BACKFILL_SCHEDULE", DefaultBackfillSchedule),
		BackfillBatch:    getEnvAsInt("BACKFILL_BATCH", DefaultBackfillBatch),
		WorkerCount:      getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),

		CatalogSeedPath: getEnv("CATALOG_SEED_PATH", DefaultCatalogSeedPath),

		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		TrustedProxies:  getEnvAsSlice("TRUSTED_PROXIES"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.ImageGenAsync && cfg.PublicBaseURL == "" {
		return nil, fmt.Errorf("PUBLIC_BASE_URL must be set when IMAGE_GEN_ASYNC is enabled")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges using struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// CallbackURL is the address the workflow engine posts async results to.
func (c *Config) CallbackURL() string {
	if c.PublicBaseURL == "" {
		return ""
	}
	return strings.TrimRight(c.PublicBaseURL, "/") + CallbackPath
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return d
}

// getEnvAsSlice splits a comma separated variable, skipping blanks.
func getEnvAsSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
