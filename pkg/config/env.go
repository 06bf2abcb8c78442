// Package config reads typed configuration values from the
// environment. Unlike the fail-open loaders in internal/pkg/config,
// these helpers log directly through slog and return plain values, for
// call sites that do not track fallback state.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// GetEnvString returns the environment value for key, or the default
// when unset or empty. No validation, no warning.
//
//	apiURL := GetEnvString("KINOPOISK_API_URL", "https://api.kinopoisk.dev")
func GetEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt parses the environment value for key as an integer. An
// unparseable value logs a warning and returns the default.
//
//	limit := GetEnvInt("RATE_LIMIT", 100)
func GetEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		slog.Warn("invalid integer value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Int("default", defaultValue),
			slog.String("error", err.Error()))
		return defaultValue
	}

	return value
}

// GetEnvBool parses the environment value for key as a boolean.
// Accepted spellings match strconv.ParseBool: "1"/"t"/"true" and
// case variants, likewise for false. Anything else logs a warning and
// returns the default.
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	switch valueStr {
	case "1", "t", "T", "true", "TRUE", "True":
		return true
	case "0", "f", "F", "false", "FALSE", "False":
		return false
	default:
		slog.Warn("invalid boolean value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Bool("default", defaultValue))
		return defaultValue
	}
}

// GetEnvDuration parses the environment value for key with
// time.ParseDuration ("30s", "1h30m"). An unparseable value logs a
// warning and returns the default.
//
//	window := GetEnvDuration("RATE_WINDOW", time.Minute)
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.String("default", defaultValue.String()),
			slog.String("error", err.Error()))
		return defaultValue
	}

	return value
}

// GetEnvStringList splits the environment value for key on commas,
// trimming whitespace and dropping empty entries. Returns the default
// when the variable is unset or yields no entries.
//
//	genres := GetEnvStringList("EXTRA_GENRES", nil)
func GetEnvStringList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}

	return result
}
