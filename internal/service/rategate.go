package service

import (
	"context"
	"sync"
	"time"
)

// RateGate enforces a minimum spacing between outbound provider calls.
// It is not a token bucket: a single timestamp guards all callers, and the
// mutex is held across the wait so two callers can never both observe a
// stale last-call instant and proceed.
type RateGate struct {
	mu       sync.Mutex
	delay    time.Duration
	lastCall time.Time
}

func NewRateGate(delay time.Duration) *RateGate {
	return &RateGate{delay: delay}
}

// Acquire blocks until at least the configured delay has elapsed since the
// previous successful Acquire returned, then stamps the new last-call
// instant. Returns early with the context error on cancellation, leaving
// the last-call instant untouched.
func (g *RateGate) Acquire(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if wait := g.delay - time.Since(g.lastCall); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	g.lastCall = time.Now()
	return nil
}
