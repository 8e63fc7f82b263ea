// Package worker provides rate limiting for remote recognition backends.
package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles calls to a remote recognition backend
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a limiter allowing requestsPerSecond sustained calls
// with the given burst
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Wait blocks until a call is allowed or the context is cancelled
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a call is allowed right now without waiting
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
