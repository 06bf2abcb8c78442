// Package pagination provides the browse cursor: the 1-based page number and
// the 0-based display offset that together give catalog items a continuous
// ordinal across pages.
package pagination

import (
	"os"
	"strconv"
)

// DefaultPageSize matches the catalog request limit used by the reference
// deployment. An upstream page may legitimately return fewer items (last
// page), so the page size is configuration, never derived from a response.
const DefaultPageSize = 20

// maxPageSize is the largest page size the upstream catalog accepts.
const maxPageSize = 100

// Config holds pagination configuration settings.
type Config struct {
	PageSize int // Items requested per catalog query
}

// DefaultConfig returns the default pagination configuration.
func DefaultConfig() Config {
	return Config{PageSize: DefaultPageSize}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - CATALOG_PAGE_SIZE: Items per catalog query (1..100)
//
// Falls back to DefaultConfig() if the variable is not set or out of range.
func LoadFromEnv() Config {
	cfg := DefaultConfig()
	valStr := os.Getenv("CATALOG_PAGE_SIZE")
	if valStr == "" {
		return cfg
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 1 || val > maxPageSize {
		return cfg
	}
	cfg.PageSize = val
	return cfg
}
