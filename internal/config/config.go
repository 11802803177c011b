package config

import (
	"os"
	"strconv"
	"time"
)

// Search limits matching the public API contract.
const (
	MaxResultsLimit   = 50
	DefaultMaxResults = 25
)

type Config struct {
	Port                string
	RedisURL            string
	LogLevel            string
	Environment         string
	CORSOrigins         string
	CacheTTL            time.Duration
	RequestDelay        time.Duration
	DirectChannelSearch bool
}

func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		RedisURL:            getEnv("REDIS_URL", ""),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		CORSOrigins:         getEnv("CORS_ORIGINS", "*"),
		CacheTTL:            getEnvDuration("CACHE_TTL", time.Hour),
		RequestDelay:        getEnvDuration("REQUEST_DELAY", 500*time.Millisecond),
		DirectChannelSearch: getEnvBool("DIRECT_CHANNEL_SEARCH", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
