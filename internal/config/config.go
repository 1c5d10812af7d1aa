package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"quotebook-backend/internal/infrastructure/database"
)

// MemoryDatabaseURL selects the in-process store instead of PostgreSQL
const MemoryDatabaseURL = "memory://"

var ErrMissingDatabaseURL = errors.New("DATABASE_URL must be set")

// Config holds the whole application configuration, populated from the environment
type Config struct {
	App      AppConfig
	Database *database.DBConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, production
	Port        string
	Version     string
	LogLevel    string
}

type RedisConfig struct {
	Host     string // empty disables the list cache
	Password string
	DB       int
	CacheTTL time.Duration
}

// Enabled reports whether a Redis host was configured
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// LoadDotEnv reads .env files into the environment when present.
// Variables already set win.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Load reads config from environment variables
func Load() (*Config, error) {
	dbCfg, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Quotebook API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Database: dbCfg,
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			CacheTTL: cacheTTL,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks cross-field rules
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return ErrMissingDatabaseURL
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNECTIONS (%d) exceeds DB_MAX_CONNECTIONS (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}
	if c.App.Environment == "production" && c.UsesMemoryStore() {
		return fmt.Errorf("%s is not allowed in production", MemoryDatabaseURL)
	}
	return nil
}

// UsesMemoryStore reports whether DATABASE_URL asks for the in-process store
func (c *Config) UsesMemoryStore() bool {
	return strings.HasPrefix(c.Database.URL, MemoryDatabaseURL)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
