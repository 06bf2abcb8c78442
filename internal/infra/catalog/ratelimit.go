package catalog

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter implements a token bucket over outbound catalog requests so a
// burst of chat intents cannot exhaust the API key's quota.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a RateLimiter allowing requestsPerSecond sustained
// with the given burst capacity.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
}

// Allow blocks until a token is available or the context is canceled.
func (r *RateLimiter) Allow(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
