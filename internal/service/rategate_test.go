package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRateGate_EnforcesMinimumSpacing(t *testing.T) {
	const delay = 50 * time.Millisecond
	g := NewRateGate(delay)
	ctx := context.Background()

	if err := g.Acquire(ctx); err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	start := time.Now()
	if err := g.Acquire(ctx); err != nil {
		t.Fatalf("second acquire: %v", err)
	}

	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("second acquire returned after %v, want >= %v", elapsed, delay)
	}
}

func TestRateGate_ConcurrentCallersAreSerialized(t *testing.T) {
	const delay = 20 * time.Millisecond
	g := NewRateGate(delay)

	start := time.Now()
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := g.Acquire(context.Background()); err != nil {
				t.Errorf("acquire: %v", err)
			}
		}()
	}
	wg.Wait()

	// First caller passes immediately, the other three each wait a full delay.
	if elapsed := time.Since(start); elapsed < 3*delay {
		t.Errorf("4 concurrent acquires finished in %v, want >= %v", elapsed, 3*delay)
	}
}

func TestRateGate_CancelledWhileWaiting(t *testing.T) {
	g := NewRateGate(time.Second)

	if err := g.Acquire(context.Background()); err != nil {
		t.Fatalf("first acquire: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := g.Acquire(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
}
