// Package summarizer provides AI-backed blurb generation for movie detail
// cards: a one-paragraph "why watch this" pitch produced from the catalog
// description. The noop provider disables the feature.
package summarizer

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// minCharLimit is the minimum allowed blurb character limit.
	minCharLimit = 50

	// maxCharLimit is the maximum allowed blurb character limit.
	maxCharLimit = 1000

	// defaultCharLimit fits one chat message comfortably.
	defaultCharLimit = 300
)

// Config holds configuration for the blurb generator.
type Config struct {
	// CharacterLimit is the maximum blurb length in characters (runes).
	// Loaded from BLURB_CHAR_LIMIT. Valid range: 50-1000. Default: 300.
	CharacterLimit int

	// Model is the OpenAI model identifier.
	Model string

	// MaxTokens bounds the API response size.
	MaxTokens int

	// Timeout is the maximum duration for a single generation call.
	Timeout time.Duration
}

// Validate checks the configuration, returning an error if invalid.
func (c *Config) Validate() error {
	if err := ValidateCharacterLimit(c.CharacterLimit); err != nil {
		return fmt.Errorf("invalid character limit: %w", err)
	}
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// LoadConfig loads blurb configuration from environment variables.
// Returns an error if BLURB_CHAR_LIMIT is present but invalid (fail-closed).
func LoadConfig() (*Config, error) {
	charLimit := defaultCharLimit

	if raw := os.Getenv("BLURB_CHAR_LIMIT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BLURB_CHAR_LIMIT format: %s: %w", raw, err)
		}
		if err := ValidateCharacterLimit(parsed); err != nil {
			return nil, fmt.Errorf("BLURB_CHAR_LIMIT out of valid range: %w", err)
		}
		charLimit = parsed
	}

	config := &Config{
		CharacterLimit: charLimit,
		Model:          "gpt-3.5-turbo",
		MaxTokens:      512,
		Timeout:        30 * time.Second,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid blurb configuration: %w", err)
	}

	return config, nil
}

// ValidateCharacterLimit validates that the blurb character limit is within
// the valid range (50-1000).
func ValidateCharacterLimit(limit int) error {
	if limit < minCharLimit {
		return fmt.Errorf("character limit %d is below minimum %d", limit, minCharLimit)
	}
	if limit > maxCharLimit {
		return fmt.Errorf("character limit %d exceeds maximum %d", limit, maxCharLimit)
	}
	return nil
}
