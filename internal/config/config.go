package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Surface names the inbound surface a binary serves
type Surface string

// Supported surfaces
const (
	SurfaceHTTP    Surface = "http"
	SurfaceDiscord Surface = "discord"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string // empty logs to stdout only
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string
	DevMode     bool // bypasses cooldowns

	// Storage
	StorageBackend    string `validate:"oneof=memory postgres"`
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int           `validate:"min=1"`
	DBMaxConnIdleTime time.Duration `validate:"gt=0"`
	DBMaxConnLifetime time.Duration `validate:"gt=0"`
	StoreTimeout      time.Duration `validate:"gt=0"`

	// Duels
	DuelTTL           time.Duration `validate:"gt=0"`
	DuelSweepInterval time.Duration `validate:"gt=0"`

	LeaderboardCacheTTL time.Duration `validate:"gte=0"`

	// Events
	EventMaxRetries     int           `validate:"min=0"`
	EventRetryDelay     time.Duration `validate:"gt=0"`
	EventDeadLetterPath string        `validate:"required"`

	// Workers
	WorkerCount     int `validate:"min=1"`
	WorkerQueueSize int `validate:"min=1"`

	// Discord
	DiscordToken              string
	DiscordAppID              string
	DiscordGuildID            string // empty registers commands globally
	DiscordForceCommandUpdate bool

	APIKey         string   // API key for authentication
	TrustedProxies []string // remote addrs whose X-Forwarded-For is honored
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", ""),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		DevMode:     getEnvAsBool("DEV_MODE", false),

		StorageBackend:    getEnv("STORAGE_BACKEND", BackendMemory),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "casinobot"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		StoreTimeout:      getEnvAsDuration("STORE_TIMEOUT", domain.DefaultStoreTimeout),

		DuelTTL:           getEnvAsDuration("DUEL_TTL", domain.DuelAcceptanceTTL),
		DuelSweepInterval: getEnvAsDuration("DUEL_SWEEP_INTERVAL", domain.DuelSweepInterval),

		LeaderboardCacheTTL: getEnvAsDuration("LEADERBOARD_CACHE_TTL", DefaultLeaderboardCacheTTL),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),

		WorkerCount:     getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize: getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),

		DiscordToken:              getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:              getEnv("DISCORD_APP_ID", ""),
		DiscordGuildID:            getEnv("DISCORD_GUILD_ID", ""),
		DiscordForceCommandUpdate: getEnvAsBool("DISCORD_FORCE_COMMAND_UPDATE", false),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings a particular surface cannot start without
func (c *Config) Validate(surface Surface) error {
	switch surface {
	case SurfaceHTTP:
		if c.APIKey == "" {
			return fmt.Errorf("API_KEY environment variable must be set for security")
		}
	case SurfaceDiscord:
		if c.DiscordToken == "" || c.DiscordAppID == "" {
			return fmt.Errorf("DISCORD_TOKEN and DISCORD_APP_ID must be set to run the bot")
		}
	default:
		return fmt.Errorf("unknown surface %q", surface)
	}
	return nil
}

// UsePostgres reports whether accounts live in PostgreSQL
func (c *Config) UsePostgres() bool {
	return c.StorageBackend == BackendPostgres
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsDuration parses a time.Duration variable, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
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
