package config

import (
	"fmt"
	"os"
	"time"
)

// ConfigLoadResult is the outcome of loading one configuration value.
// Value holds the loaded (or fallback) value, Warnings collects one
// message per fallback applied, and FallbackApplied reports whether the
// default was substituted for an invalid environment value.
//
// Loaders never return errors. A process must be able to start with a
// misconfigured environment, so invalid values degrade to defaults with
// a warning instead of failing startup.
type ConfigLoadResult struct {
	Value           interface{}
	Warnings        []string
	FallbackApplied bool
}

// LoadEnvString reads a string environment variable, returning the
// default when unset. No validation is applied; use LoadEnvWithFallback
// when the value must be checked.
func LoadEnvString(envKey, defaultValue string) string {
	value := os.Getenv(envKey)
	if value == "" {
		return defaultValue
	}
	return value
}

// LoadEnvWithFallback reads a string environment variable and runs it
// through the validator. An unset variable yields the default silently;
// a set-but-invalid value yields the default plus a warning.
//
//	result := LoadEnvWithFallback("SWEEP_CRON_SCHEDULE", "0 * * * *", ValidateCronSchedule)
//	schedule := result.Value.(string)
//
// A nil validator accepts any non-empty value.
func LoadEnvWithFallback(envKey, defaultValue string, validator func(string) error) ConfigLoadResult {
	value := os.Getenv(envKey)
	if value == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	if validator != nil {
		if err := validator(value); err != nil {
			warning := fmt.Sprintf(
				"Invalid %s='%s': %v, falling back to default '%s'",
				envKey, value, err, defaultValue,
			)
			return ConfigLoadResult{
				Value:           defaultValue,
				Warnings:        []string{warning},
				FallbackApplied: true,
			}
		}
	}

	return ConfigLoadResult{Value: value}
}

// LoadEnvDuration reads a Go duration string ("30s", "1h30m") from an
// environment variable, parses it, and validates the result. Parse and
// validation failures both fall back to the default with a warning.
//
//	result := LoadEnvDuration("SESSION_TTL", 24*time.Hour, ValidatePositiveDuration)
//	ttl := result.Value.(time.Duration)
func LoadEnvDuration(envKey string, defaultValue time.Duration, validator func(time.Duration) error) ConfigLoadResult {
	valueStr := os.Getenv(envKey)
	if valueStr == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	parsedDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		warning := fmt.Sprintf(
			"Invalid %s='%s': %v, falling back to default '%v'",
			envKey, valueStr, err, defaultValue,
		)
		return ConfigLoadResult{
			Value:           defaultValue,
			Warnings:        []string{warning},
			FallbackApplied: true,
		}
	}

	if validator != nil {
		if err := validator(parsedDuration); err != nil {
			warning := fmt.Sprintf(
				"Invalid %s='%s': %v, falling back to default '%v'",
				envKey, valueStr, err, defaultValue,
			)
			return ConfigLoadResult{
				Value:           defaultValue,
				Warnings:        []string{warning},
				FallbackApplied: true,
			}
		}
	}

	return ConfigLoadResult{Value: parsedDuration}
}

// LoadEnvInt reads an integer from an environment variable, parses it,
// and validates the result. Parse and validation failures both fall
// back to the default with a warning.
//
//	result := LoadEnvInt("WORKER_HEALTH_PORT", 9091, func(v int) error {
//	    return ValidateIntRange(v, 1024, 65535)
//	})
//	port := result.Value.(int)
func LoadEnvInt(envKey string, defaultValue int, validator func(int) error) ConfigLoadResult {
	valueStr := os.Getenv(envKey)
	if valueStr == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	var parsedInt int
	if _, err := fmt.Sscanf(valueStr, "%d", &parsedInt); err != nil {
		warning := fmt.Sprintf(
			"Invalid %s='%s': invalid integer format, falling back to default '%d'",
			envKey, valueStr, defaultValue,
		)
		return ConfigLoadResult{
			Value:           defaultValue,
			Warnings:        []string{warning},
			FallbackApplied: true,
		}
	}

	if validator != nil {
		if err := validator(parsedInt); err != nil {
			warning := fmt.Sprintf(
				"Invalid %s='%s': %v, falling back to default '%d'",
				envKey, valueStr, err, defaultValue,
			)
			return ConfigLoadResult{
				Value:           defaultValue,
				Warnings:        []string{warning},
				FallbackApplied: true,
			}
		}
	}

	return ConfigLoadResult{Value: parsedInt}
}

// LoadEnvBool reads a boolean from an environment variable. Accepted
// spellings are "1"/"t"/"T"/"true"/"TRUE"/"True" and the corresponding
// false forms. Anything else falls back to the default with a warning.
func LoadEnvBool(envKey string, defaultValue bool) ConfigLoadResult {
	valueStr := os.Getenv(envKey)
	if valueStr == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	var parsedBool bool
	switch valueStr {
	case "1", "t", "T", "true", "TRUE", "True":
		parsedBool = true
	case "0", "f", "F", "false", "FALSE", "False":
		parsedBool = false
	default:
		warning := fmt.Sprintf(
			"Invalid %s='%s': invalid boolean format, expected 'true' or 'false', falling back to default '%t'",
			envKey, valueStr, defaultValue,
		)
		return ConfigLoadResult{
			Value:           defaultValue,
			Warnings:        []string{warning},
			FallbackApplied: true,
		}
	}

	return ConfigLoadResult{Value: parsedBool}
}
