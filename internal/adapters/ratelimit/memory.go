// Package ratelimit provides an in-process fixed-window rate limiter.
// Counters live in memory, so limits apply per instance. A shared store is
// only needed once the service runs more than one replica.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

const defaultMaxEntries = 10000

// Config configures the in-memory limiter.
type Config struct {
	// Requests is the number of allowed requests per window per key.
	Requests int

	// Window is the fixed window duration.
	Window time.Duration
}

type window struct {
	start time.Time
	count int
}

// Memory is a fixed-window rate limiter keyed by an arbitrary string,
// typically the client IP. It implements ports.RateLimiter.
type Memory struct {
	mu       sync.Mutex
	windows  map[string]*window
	requests int
	window   time.Duration
	now      func() time.Time
}

// NewMemory creates an in-memory rate limiter.
func NewMemory(cfg Config) *Memory {
	if cfg.Requests <= 0 {
		cfg.Requests = 100
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}

	return &Memory{
		windows:  make(map[string]*window),
		requests: cfg.Requests,
		window:   cfg.Window,
		now:      time.Now,
	}
}

// Allow reports whether the key may make another request in the current
// window, counting the request if so.
func (m *Memory) Allow(_ context.Context, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	w, ok := m.windows[key]
	if !ok || now.Sub(w.start) >= m.window {
		if len(m.windows) >= defaultMaxEntries {
			m.evictExpired(now)
		}
		m.windows[key] = &window{start: now, count: 1}
		return true
	}

	if w.count >= m.requests {
		return false
	}

	w.count++

	return true
}

// evictExpired drops windows that have already elapsed. Called with the lock
// held, only when the map is at capacity.
func (m *Memory) evictExpired(now time.Time) {
	for key, w := range m.windows {
		if now.Sub(w.start) >= m.window {
			delete(m.windows, key)
		}
	}
}
