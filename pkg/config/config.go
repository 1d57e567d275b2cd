// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, storage, and external APIs

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains lookup cache configuration
	Cache CacheConfig

	// Storage contains saved-place storage configuration
	Storage StorageConfig

	// APIs contains external API endpoints
	APIs APIConfig

	// LogLevel is the minimum log level (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port int

	// RateLimitRPS is the sustained per-client request rate
	RateLimitRPS float64

	// RateLimitBurst is the per-client burst allowance
	RateLimitBurst int

	// ResponseCacheTTL is how long GET responses are cached
	ResponseCacheTTL time.Duration

	// HTTPTimeout is the timeout for outbound API requests
	HTTPTimeout time.Duration
}

// CacheConfig holds lookup cache configuration
type CacheConfig struct {
	// SweepInterval is how often expired entries are purged in the
	// background; zero disables the sweeper
	SweepInterval time.Duration

	// MaxEntries caps each namespace; zero means unbounded
	MaxEntries int
}

// StorageConfig holds saved-place storage configuration
type StorageConfig struct {
	// Type specifies the storage backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLitePath is the database file path for the sqlite backend
	SQLitePath string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// APIConfig holds external API endpoints
type APIConfig struct {
	// OverpassURL is the geodata interpreter endpoint
	OverpassURL string

	// NutritionURL is the nutrition lookup API base URL
	NutritionURL string

	// SearchURL is the place search API base URL
	SearchURL string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:             getEnvAsIntOrDefault("PORT", 8000),
			RateLimitRPS:     getEnvAsFloatOrDefault("RATE_LIMIT_RPS", 10),
			RateLimitBurst:   getEnvAsIntOrDefault("RATE_LIMIT_BURST", 20),
			ResponseCacheTTL: getEnvAsDurationOrDefault("RESPONSE_CACHE_TTL", time.Minute),
			HTTPTimeout:      getEnvAsDurationOrDefault("HTTP_TIMEOUT", 30*time.Second),
		},
		Cache: CacheConfig{
			SweepInterval: getEnvAsDurationOrDefault("CACHE_SWEEP_INTERVAL", 5*time.Minute),
			MaxEntries:    getEnvAsIntOrDefault("CACHE_MAX_ENTRIES", 0),
		},
		Storage: StorageConfig{
			Type: getEnvOrDefault("STORAGE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "places.db"),
		},
		APIs: APIConfig{
			OverpassURL:  getEnvOrDefault("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
			NutritionURL: getEnvOrDefault("NUTRITION_API_URL", "https://api.calorieninjas.com/v1"),
			SearchURL:    getEnvOrDefault("SEARCH_API_URL", "https://nominatim.openstreetmap.org/search"),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault returns the environment variable as a
// duration ("5m", "30s") or a default
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	if c.Server.RateLimitRPS <= 0 {
		return errors.New("rate limit RPS must be positive")
	}

	if c.Server.RateLimitBurst < 1 {
		return errors.New("rate limit burst must be at least 1")
	}

	switch c.Storage.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("storage type must be 'memory', 'redis', or 'sqlite'")
	}

	if c.Storage.Type == "redis" && c.Storage.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis storage")
	}

	if c.Storage.Type == "sqlite" && c.Storage.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty when using sqlite storage")
	}

	if c.Cache.SweepInterval < 0 {
		return errors.New("cache sweep interval cannot be negative")
	}

	if c.APIs.OverpassURL == "" || c.APIs.NutritionURL == "" || c.APIs.SearchURL == "" {
		return errors.New("external API URLs cannot be empty")
	}

	return nil
}
