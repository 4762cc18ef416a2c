package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// All three services share it; each main validates the subset it needs.
type Config struct {
	HTTPPort           string
	AppMode            string
	FiberPrefork       bool
	ClickHouseAddr     string
	ClickHouseDB       string
	ClickHouseUser     string
	ClickHousePassword string
	StoriesServiceURL  string
	NotifyTimeout      time.Duration
	FetchTimeout       time.Duration
	CacheTTL           time.Duration
}

// Load reads configuration from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", ":8080"),
		AppMode:            strings.ToLower(getEnv("APP_MODE", "dev")),
		FiberPrefork:       parseBoolEnv("FIBER_PREFORK", false),
		ClickHouseAddr:     getEnv("CLICKHOUSE_ADDR", "localhost:9000"),
		ClickHouseDB:       getEnv("CLICKHOUSE_DB", "stories"),
		ClickHouseUser:     getEnv("CLICKHOUSE_USER", "default"),
		ClickHousePassword: os.Getenv("CLICKHOUSE_PASSWORD"),
		StoriesServiceURL:  os.Getenv("STORIES_SERVICE_URL"),
		NotifyTimeout:      parseDurationEnv("NOTIFY_TIMEOUT", 10*time.Second),
		FetchTimeout:       parseDurationEnv("FETCH_TIMEOUT", 10*time.Second),
		CacheTTL:           parseDurationEnv("CACHE_TTL", time.Hour),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseBoolEnv(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseDurationEnv(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return parsed
}
