// Package ratelimit gates quote fetches so that polling stays within the
// remote API's request budget. A gated call still issues exactly one
// request; nothing here retries or caches.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"profitswitch/internal/profit"
)

// MinInterval wraps a fetcher and enforces a minimum time between calls.
// Each call reserves the next free slot before it waits, so concurrent
// callers are spaced Interval apart. A call canceled while waiting still
// consumes its slot.
type MinInterval struct {
	F        profit.Fetcher
	Interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func (m *MinInterval) Fetch(ctx context.Context) ([]byte, error) {
	if m.Interval > 0 {
		if err := m.wait(ctx); err != nil {
			return nil, err
		}
	}
	return m.F.Fetch(ctx)
}

func (m *MinInterval) wait(ctx context.Context) error {
	m.mu.Lock()
	now := time.Now()
	next := m.last.Add(m.Interval)
	if next.Before(now) {
		next = now
	}
	m.last = next
	m.mu.Unlock()

	d := time.Until(next)
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Wrap applies the configured limiter to f. A positive requests-per-minute
// wins over a minimum interval; with neither set f is returned unchanged.
func Wrap(f profit.Fetcher, maxPerMinute, burst int, minInterval time.Duration) profit.Fetcher {
	if maxPerMinute > 0 {
		return &TokenBucketFetcher{F: f, TB: NewTokenBucket(float64(maxPerMinute)/60.0, burst)}
	}
	if minInterval > 0 {
		return &MinInterval{F: f, Interval: minInterval}
	}
	return f
}
