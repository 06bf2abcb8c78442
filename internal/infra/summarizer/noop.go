package summarizer

import (
	"context"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/domain/entity"
)

// NoOp is a blurb generator that produces no blurb. It is the default when
// no AI provider is configured; detail cards simply omit the pitch.
type NoOp struct{}

// NewNoOp creates a new NoOp generator.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Generate returns an empty blurb.
func (n *NoOp) Generate(context.Context, *entity.MovieDetail) (string, error) {
	return "", nil
}
