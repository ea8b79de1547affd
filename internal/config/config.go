package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	DatasetPath string        // Empty uses the bundled dataset
	RedisURL    string        // Empty disables the route cache
	CacheTTL    time.Duration // Expiry for cached route results
	Memo        bool          // Keep the last result in-process
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DatasetPath: getEnv("DATASET_PATH", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
	}

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	if ttl < 0 {
		return nil, fmt.Errorf("invalid CACHE_TTL: must not be negative, got %s", ttl)
	}
	cfg.CacheTTL = ttl

	memo, err := strconv.ParseBool(getEnv("MEMO", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid MEMO: %w", err)
	}
	cfg.Memo = memo

	return cfg, nil
}

// CacheEnabled reports whether route results should be cached in Redis.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
