package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/placecraft/internal/game"
)

// Config holds the application configuration
type Config struct {
	EnvSchemaVersion string `env:"ENV_SCHEMA_VERSION"`

	// Servers
	Port     int `env:"PORT" envDefault:"7878" validate:"min=1,max=65535"`
	HTTPPort int `env:"HTTP_PORT" envDefault:"9090" validate:"min=0,max=65535"`

	// Sessions
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"10m"`
	MaxLineBytes int           `env:"MAX_LINE_BYTES" envDefault:"4096" validate:"min=64"`

	// Admin API
	APIKey         string   `env:"API_KEY"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Logging
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogDir      string `env:"LOG_DIR"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"placecraft"`
	Version     string `env:"VERSION" envDefault:"dev"`

	// Tracing; empty disables export
	OTelEndpoint string `env:"OTEL_ENDPOINT"`

	// Storage
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"file" validate:"oneof=file sqlite postgres"`
	DataDir       string `env:"DATA_DIR" envDefault:"data" validate:"required_if=StorageDriver file"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"data/placecraft.db" validate:"required_if=StorageDriver sqlite"`
	DBUser        string `env:"DB_USER" envDefault:"postgres"`
	DBPassword    string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost        string `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string `env:"DB_PORT" envDefault:"5432"`
	DBName        string `env:"DB_NAME" envDefault:"placecraft"`
	DBMaxConns    int32  `env:"DB_MAX_CONNS" envDefault:"10" validate:"min=1"`

	DBMaxConnIdle     time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`

	// Worlds
	DefaultWorld    string        `env:"DEFAULT_WORLD" envDefault:"default" validate:"required,max=64"`
	WorldSeed       string        `env:"WORLD_SEED" validate:"omitempty,hexadecimal,len=32"`
	WorldCacheSize  int           `env:"WORLD_CACHE_SIZE" envDefault:"128" validate:"min=1"`
	WorldCacheTTL   time.Duration `env:"WORLD_CACHE_TTL" envDefault:"30m"`
	AutosaveWorkers int           `env:"AUTOSAVE_WORKERS" envDefault:"2" validate:"min=1,max=64"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// CheckpointInterval retries failed autosaves; 0 disables it
	CheckpointInterval time.Duration `env:"CHECKPOINT_INTERVAL" envDefault:"1m"`

	Rules game.Rules
}

// Load loads the configuration from .env and the environment
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
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
