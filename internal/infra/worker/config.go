package worker

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/pkg/config"
)

// WorkerConfig holds the configuration for the maintenance worker.
// The worker runs periodic sweeps that remove idle browse sessions and
// trim stored recommendation history.
//
// All fields have defaults and validation rules; LoadConfigFromEnv never
// fails, it falls back to the default for any invalid value.
type WorkerConfig struct {
	// CronSchedule is the cron expression for the sweep schedule.
	// Format: "minute hour day month weekday"
	// Default: "0 * * * *" (every hour)
	CronSchedule string

	// Timezone is the IANA timezone name for cron scheduling.
	// Default: "UTC"
	Timezone string

	// SessionTTL is how long a browse session may stay idle before the
	// sweep removes it. Range: 1h-168h. Default: 24 hours.
	SessionTTL time.Duration

	// HistoryTTL is how long recommendation history rows are retained.
	// Range: 24h-8760h. Default: 720 hours (30 days).
	HistoryTTL time.Duration

	// SweepTimeout is the maximum duration for a single sweep run.
	// Range: 10s-30m. Default: 5 minutes.
	SweepTimeout time.Duration

	// HealthPort is the port for the health check HTTP server.
	// Range: 1024-65535. Default: 9091.
	HealthPort int
}

// DefaultConfig returns a WorkerConfig with production-ready defaults:
// hourly sweeps in UTC, a 24-hour session TTL, and a 5-minute per-run
// timeout so a stuck sweep cannot pile up behind the next one.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		CronSchedule: "0 * * * *",
		Timezone:     "UTC",
		SessionTTL:   24 * time.Hour,
		HistoryTTL:   720 * time.Hour,
		SweepTimeout: 5 * time.Minute,
		HealthPort:   9091,
	}
}

// Validate checks the configuration values. Errors for all invalid fields
// are collected and returned together.
func (c *WorkerConfig) Validate() error {
	var errors []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errors = append(errors, fmt.Errorf("cron schedule: %w", err))
	}

	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errors = append(errors, fmt.Errorf("timezone: %w", err))
	}

	if err := config.ValidateDuration(c.SessionTTL, 1*time.Hour, 168*time.Hour); err != nil {
		errors = append(errors, fmt.Errorf("session ttl: %w", err))
	}

	if err := config.ValidateDuration(c.HistoryTTL, 24*time.Hour, 8760*time.Hour); err != nil {
		errors = append(errors, fmt.Errorf("history ttl: %w", err))
	}

	if err := config.ValidateDuration(c.SweepTimeout, 10*time.Second, 30*time.Minute); err != nil {
		errors = append(errors, fmt.Errorf("sweep timeout: %w", err))
	}

	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errors = append(errors, fmt.Errorf("health port: %w", err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation failed: %v", errors)
	}

	return nil
}

// LoadConfigFromEnv loads worker configuration from environment variables
// with validation and fallback to defaults on failure.
//
// Environment variables:
//   - SWEEP_CRON_SCHEDULE: Cron expression (default: "0 * * * *")
//   - WORKER_TIMEZONE: IANA timezone name (default: "UTC")
//   - SESSION_TTL: Duration string, e.g. "24h" (default: 24 hours)
//   - HISTORY_TTL: Duration string, e.g. "720h" (default: 30 days)
//   - SWEEP_TIMEOUT: Duration string, e.g. "5m" (default: 5 minutes)
//   - WORKER_HEALTH_PORT: Integer 1024-65535 (default: 9091)
//
// Every fallback is logged and counted in metrics. The returned
// configuration is always valid; the error is always nil.
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) (*WorkerConfig, error) {
	cfg := DefaultConfig()
	fallbackApplied := false

	result := config.LoadEnvWithFallback("SWEEP_CRON_SCHEDULE", cfg.CronSchedule, config.ValidateCronSchedule)
	cfg.CronSchedule = result.Value.(string)
	if result.FallbackApplied {
		fallbackApplied = true
		metrics.RecordValidationError("cron_schedule")
		metrics.RecordFallback("cron_schedule", "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", "CronSchedule"),
				slog.String("warning", warning))
		}
	}

	result = config.LoadEnvWithFallback("WORKER_TIMEZONE", cfg.Timezone, config.ValidateTimezone)
	cfg.Timezone = result.Value.(string)
	if result.FallbackApplied {
		fallbackApplied = true
		metrics.RecordValidationError("timezone")
		metrics.RecordFallback("timezone", "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", "Timezone"),
				slog.String("warning", warning))
		}
	}

	result = config.LoadEnvDuration("SESSION_TTL", cfg.SessionTTL, func(d time.Duration) error {
		return config.ValidateDuration(d, 1*time.Hour, 168*time.Hour)
	})
	cfg.SessionTTL = result.Value.(time.Duration)
	if result.FallbackApplied {
		fallbackApplied = true
		metrics.RecordValidationError("session_ttl")
		metrics.RecordFallback("session_ttl", "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", "SessionTTL"),
				slog.String("warning", warning))
		}
	}

	result = config.LoadEnvDuration("HISTORY_TTL", cfg.HistoryTTL, func(d time.Duration) error {
		return config.ValidateDuration(d, 24*time.Hour, 8760*time.Hour)
	})
	cfg.HistoryTTL = result.Value.(time.Duration)
	if result.FallbackApplied {
		fallbackApplied = true
		metrics.RecordValidationError("history_ttl")
		metrics.RecordFallback("history_ttl", "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", "HistoryTTL"),
				slog.String("warning", warning))
		}
	}

	result = config.LoadEnvDuration("SWEEP_TIMEOUT", cfg.SweepTimeout, func(d time.Duration) error {
		return config.ValidateDuration(d, 10*time.Second, 30*time.Minute)
	})
	cfg.SweepTimeout = result.Value.(time.Duration)
	if result.FallbackApplied {
		fallbackApplied = true
		metrics.RecordValidationError("sweep_timeout")
		metrics.RecordFallback("sweep_timeout", "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", "SweepTimeout"),
				slog.String("warning", warning))
		}
	}

	result = config.LoadEnvInt("WORKER_HEALTH_PORT", cfg.HealthPort, func(v int) error {
		return config.ValidateIntRange(v, 1024, 65535)
	})
	cfg.HealthPort = result.Value.(int)
	if result.FallbackApplied {
		fallbackApplied = true
		metrics.RecordValidationError("health_port")
		metrics.RecordFallback("health_port", "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", "HealthPort"),
				slog.String("warning", warning))
		}
	}

	metrics.SetFallbackActive("", fallbackApplied)
	metrics.RecordLoadTimestamp()

	return &cfg, nil
}
