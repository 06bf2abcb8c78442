// Package catalog implements the movie catalog client: genre-filtered paged
// search and single-movie detail fetches against a Kinopoisk-style v1.4 REST
// API. Failures degrade to empty results per the catalog contract; callers
// never see transport errors.
package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the movie endpoint of the Kinopoisk v1.4 API.
	DefaultBaseURL = "https://api.kinopoisk.dev/v1.4/movie"

	// DefaultTimeout bounds one catalog HTTP request.
	DefaultTimeout = 10 * time.Second
)

// FilterConfig holds the upstream query filters. Filtering is a catalog
// query concern; the pagination engine never re-filters results.
type FilterConfig struct {
	// RatingMin and RatingMax bound the catalog rating, sent as
	// "rating.kp=<min>-<max>".
	RatingMin float64
	RatingMax float64

	// RuntimeMin and RuntimeMax bound the movie length in minutes, sent as
	// "movieLength=<min>-<max>".
	RuntimeMin int
	RuntimeMax int

	// VotesMin is the minimum vote count; zero disables the filter.
	VotesMin int
}

// DefaultFilterConfig returns the filters used by the reference deployment:
// rating 4.0-10, runtime 60-300 minutes, no vote floor.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		RatingMin:  4.0,
		RatingMax:  10,
		RuntimeMin: 60,
		RuntimeMax: 300,
	}
}

// Config holds the catalog client configuration.
type Config struct {
	// BaseURL is the movie endpoint, without a trailing slash.
	BaseURL string

	// APIKey is sent in the X-API-KEY header.
	APIKey string

	// Timeout bounds one HTTP request, including retries' individual
	// attempts but not the backoff between them.
	Timeout time.Duration

	// PageSize is the number of items requested per search page.
	PageSize int

	// Filters are the upstream query filters.
	Filters FilterConfig
}

// LoadConfigFromEnv loads catalog configuration from environment variables.
// Supported variables:
//   - KINOPOISK_API_KEY: API key (required for live use)
//   - CATALOG_BASE_URL: endpoint override
//   - CATALOG_TIMEOUT: per-request timeout (e.g. "10s")
//   - CATALOG_RATING_MIN, CATALOG_RATING_MAX: rating filter bounds
//   - CATALOG_RUNTIME_MIN, CATALOG_RUNTIME_MAX: runtime filter bounds (minutes)
//   - CATALOG_VOTES_MIN: minimum vote count
//
// Invalid values fall back to defaults with a warning.
func LoadConfigFromEnv(pageSize int) Config {
	cfg := Config{
		BaseURL:  DefaultBaseURL,
		APIKey:   os.Getenv("KINOPOISK_API_KEY"),
		Timeout:  DefaultTimeout,
		PageSize: pageSize,
		Filters:  DefaultFilterConfig(),
	}

	if base := os.Getenv("CATALOG_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}

	if raw := os.Getenv("CATALOG_TIMEOUT"); raw != "" {
		if val, err := time.ParseDuration(raw); err == nil && val > 0 {
			cfg.Timeout = val
		} else {
			slog.Warn("invalid CATALOG_TIMEOUT, using default",
				slog.String("value", raw),
				slog.Duration("default", DefaultTimeout))
		}
	}

	cfg.Filters.RatingMin = envFloat("CATALOG_RATING_MIN", cfg.Filters.RatingMin)
	cfg.Filters.RatingMax = envFloat("CATALOG_RATING_MAX", cfg.Filters.RatingMax)
	cfg.Filters.RuntimeMin = envInt("CATALOG_RUNTIME_MIN", cfg.Filters.RuntimeMin)
	cfg.Filters.RuntimeMax = envInt("CATALOG_RUNTIME_MAX", cfg.Filters.RuntimeMax)
	cfg.Filters.VotesMin = envInt("CATALOG_VOTES_MIN", cfg.Filters.VotesMin)

	return cfg
}

// ratingParam renders the rating filter in the API's "<min>-<max>" range
// syntax, e.g. "4.0-10".
func (f FilterConfig) ratingParam() string {
	return fmt.Sprintf("%.1f-%g", f.RatingMin, f.RatingMax)
}

// runtimeParam renders the movie length filter, e.g. "60-300".
func (f FilterConfig) runtimeParam() string {
	return fmt.Sprintf("%d-%d", f.RuntimeMin, f.RuntimeMax)
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || val < 0 {
		slog.Warn("invalid float environment variable, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Float64("default", fallback))
		return fallback
	}
	return val
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		slog.Warn("invalid integer environment variable, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Int("default", fallback))
		return fallback
	}
	return val
}
