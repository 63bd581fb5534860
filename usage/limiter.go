package usage

import (
	"sync"
	"time"
)

// rateLimiter is a per-key sliding-window rate limiter. It caps how many
// views one client can record per window.
type rateLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	max    int
	window time.Duration
}

func newRateLimiter(max int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		hits:   make(map[string][]time.Time),
		max:    max,
		window: window,
	}
}

// allow checks if key has not exceeded the limit and records the request.
// Expired keys are dropped as a side effect once the map grows.
func (rl *rateLimiter) allow(key string) bool {
	now := time.Now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if len(rl.hits) > 1024 {
		rl.sweep(cutoff)
	}

	hits := rl.hits[key]
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) >= rl.max {
		rl.hits[key] = kept
		return false
	}
	rl.hits[key] = append(kept, now)
	return true
}

// sweep must be called with rl.mu held.
func (rl *rateLimiter) sweep(cutoff time.Time) {
	for key, hits := range rl.hits {
		if len(hits) == 0 || !hits[len(hits)-1].After(cutoff) {
			delete(rl.hits, key)
		}
	}
}
