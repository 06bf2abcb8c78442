package summarizer

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/blurb"
)

// NewFromEnv selects a blurb generator from BLURB_PROVIDER:
//   - "openai": OpenAI-backed generator, requires OPENAI_API_KEY
//   - "noop" or unset: blurbs disabled
//
// Unknown providers fall back to noop with a warning rather than failing
// startup; the blurb is an optional enrichment.
func NewFromEnv() (blurb.Generator, error) {
	provider := os.Getenv("BLURB_PROVIDER")
	switch provider {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("BLURB_PROVIDER=openai requires OPENAI_API_KEY")
		}
		config, err := LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("load blurb config: %w", err)
		}
		return NewOpenAI(apiKey, config), nil
	case "", "noop":
		return NewNoOp(), nil
	default:
		slog.Warn("unknown BLURB_PROVIDER, blurbs disabled",
			slog.String("provider", provider))
		return NewNoOp(), nil
	}
}
