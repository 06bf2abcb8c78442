// Package blurb provides the optional "why watch this" pitch attached to
// movie detail cards. Generation is delegated to an AI provider; results are
// cached per movie so repeat views don't re-spend API calls.
package blurb

import (
	"context"
	"fmt"
	"sync"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/domain/entity"
)

// Generator produces a blurb for one movie. An empty string with a nil
// error means the provider is disabled.
type Generator interface {
	Generate(ctx context.Context, movie *entity.MovieDetail) (string, error)
}

// maxCacheEntries bounds the in-process blurb cache. Movie records are tiny;
// this is generous for a chat-scale deployment.
const maxCacheEntries = 4096

// Service caches generated blurbs by movie id. It implements the engine's
// BlurbProvider contract.
type Service struct {
	Gen Generator

	mu    sync.RWMutex
	cache map[string]string
}

// NewService creates a blurb service over the given generator.
func NewService(gen Generator) *Service {
	return &Service{Gen: gen, cache: make(map[string]string)}
}

// Blurb returns the cached or freshly generated pitch for a movie.
// Failures propagate so the caller can log and degrade; they are not cached.
func (s *Service) Blurb(ctx context.Context, movie *entity.MovieDetail) (string, error) {
	if s.Gen == nil || movie == nil {
		return "", nil
	}

	s.mu.RLock()
	cached, ok := s.cache[movie.ID]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	blurb, err := s.Gen.Generate(ctx, movie)
	if err != nil {
		return "", fmt.Errorf("generate blurb: %w", err)
	}

	s.mu.Lock()
	if len(s.cache) >= maxCacheEntries {
		// Full reset beats tracking recency for a cache this cheap to refill.
		s.cache = make(map[string]string)
	}
	s.cache[movie.ID] = blurb
	s.mu.Unlock()

	return blurb, nil
}
