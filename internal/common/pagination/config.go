// Package pagination provides offset-based pagination utilities shared by
// the HTTP handlers and use case services: query parameter parsing with
// bounds validation, metadata calculation and observability hooks.
package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination configuration settings.
// These values can be loaded from environment variables.
type Config struct {
	DefaultLimit int // Default items per page (typically 20)
	MaxLimit     int // Maximum allowed items per page (typically 100)
	MaxOffset    int // Maximum allowed offset (typically 10000)
}

// DefaultConfig returns the default pagination configuration.
// Default values: limit=20, max limit=100, max offset=10000
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 20,
		MaxLimit:     100,
		MaxOffset:    10_000,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_LIMIT: Default items per page
//   - PAGINATION_MAX_LIMIT: Maximum items per page
//   - PAGINATION_MAX_OFFSET: Maximum row offset
//
// Falls back to DefaultConfig() if environment variables are not set.
func LoadFromEnv() Config {
	return Config{
		DefaultLimit: getEnvAsInt("PAGINATION_DEFAULT_LIMIT", 20),
		MaxLimit:     getEnvAsInt("PAGINATION_MAX_LIMIT", 100),
		MaxOffset:    getEnvAsInt("PAGINATION_MAX_OFFSET", 10_000),
	}
}

// getEnvAsInt retrieves an environment variable and parses it as an integer.
// Returns the default value if the variable is not set or cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
