// Package ratelimit keeps a sliding window of recent request times per client
// key.
package ratelimit

import (
	"sync"
	"time"
)

type RateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time
	done     chan struct{}
	stop     sync.Once
}

// NewRateLimiter allows limit requests per key within window. A background
// sweep forgets idle keys until Stop is called.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
		done:     make(chan struct{}),
	}

	go rl.cleanup(time.Minute)

	return rl
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	recent := rl.prune(rl.requests[key], now)

	if len(recent) >= rl.limit {
		rl.requests[key] = recent
		return false
	}

	rl.requests[key] = append(recent, now)
	return true
}

func (rl *RateLimiter) Stop() {
	rl.stop.Do(func() { close(rl.done) })
}

// prune drops timestamps that fell out of the window. Timestamps are
// appended in order, so the first one inside the window ends the scan.
func (rl *RateLimiter) prune(timestamps []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-rl.window)
	for i, ts := range timestamps {
		if ts.After(cutoff) {
			return timestamps[i:]
		}
	}
	return timestamps[:0]
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, timestamps := range rl.requests {
		recent := rl.prune(timestamps, now)
		if len(recent) == 0 {
			delete(rl.requests, key)
			continue
		}
		rl.requests[key] = recent
	}
}

func (rl *RateLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.done:
			return
		}
	}
}
