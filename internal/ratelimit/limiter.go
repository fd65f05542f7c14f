// Package ratelimit implements fixed-window request counters. Windows reset
// wholesale at the boundary; bursts straddling a boundary can briefly exceed
// the limit, which the product accepts as a known imprecision.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter counts requests per key within a fixed window.
type Limiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	entries map[string]*entry

	now func() time.Time // overridable in tests
}

type entry struct {
	count       int
	windowStart time.Time
}

// New creates a limiter allowing max requests per window per key.
func New(max int, window time.Duration) *Limiter {
	return &Limiter{
		max:     max,
		window:  window,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Allow records one request for key and reports whether it is within the
// limit. Stale entries are pruned opportunistically so the map does not grow
// unbounded under rotating client IPs.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	e, ok := l.entries[key]
	if !ok || now.Sub(e.windowStart) >= l.window {
		if len(l.entries) > 10000 {
			l.prune(now)
		}
		l.entries[key] = &entry{count: 1, windowStart: now}
		return true
	}

	e.count++
	return e.count <= l.max
}

// prune drops entries whose window has already elapsed. Caller holds the lock.
func (l *Limiter) prune(now time.Time) {
	for k, e := range l.entries {
		if now.Sub(e.windowStart) >= l.window {
			delete(l.entries, k)
		}
	}
}
