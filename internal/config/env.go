package config

import (
	"os"
	"strconv"
	"time"
)

// GetEnv returns the env var value, or defaultValue when unset or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt parses the env var as an int; malformed or missing values
// yield defaultValue.
func GetEnvInt(key string, defaultValue int) int {
	parsed, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetEnvDuration parses the env var as a time.Duration; malformed or
// missing values yield defaultValue.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	parsed, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return parsed
}
