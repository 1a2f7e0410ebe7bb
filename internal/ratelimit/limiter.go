package ratelimit

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config holds rate limiter configuration
type Config struct {
	RequestsPerMin  int // per-client request budget per minute
	BurstMultiplier int // burst capacity multiplier
}

// DefaultConfig returns default rate limiting configuration
func DefaultConfig() Config {
	return Config{
		RequestsPerMin:  60,
		BurstMultiplier: 2,
	}
}

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter provides in-memory token bucket rate limiting keyed by client.
type Limiter struct {
	config   Config
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
}

// NewLimiter creates a new per-client rate limiter
func NewLimiter(config Config) *Limiter {
	l := &Limiter{
		config:   config,
		limiters: make(map[string]*rate.Limiter),
	}

	go l.cleanup()

	return l
}

// Allow checks whether the client identified by key may make a request.
func (l *Limiter) Allow(key string) Result {
	limiter := l.limiterFor(key)

	allowed := limiter.Allow()

	remaining := int(limiter.Tokens())
	if remaining < 0 {
		remaining = 0
	}

	result := Result{
		Allowed:   allowed,
		Limit:     l.config.RequestsPerMin,
		Remaining: remaining,
	}
	if !allowed {
		result.RetryAfter = time.Minute
	}

	return result
}

func (l *Limiter) limiterFor(key string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[key]
	l.mu.RUnlock()
	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if limiter, exists = l.limiters[key]; exists {
		return limiter
	}

	burst := l.config.RequestsPerMin * l.config.BurstMultiplier
	if burst < 5 {
		burst = 5
	}
	limiter = rate.NewLimiter(rate.Limit(float64(l.config.RequestsPerMin)/60), burst)
	l.limiters[key] = limiter
	return limiter
}

// cleanup periodically resets the limiter map once it grows large.
func (l *Limiter) cleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		if len(l.limiters) > 1000 {
			slog.Info("Cleaning up rate limiters", "count", len(l.limiters))
			l.limiters = make(map[string]*rate.Limiter)
		}
		l.mu.Unlock()
	}
}

// Stats returns rate limiter statistics
func (l *Limiter) Stats() map[string]any {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return map[string]any{
		"tracked_clients":  len(l.limiters),
		"requests_per_min": l.config.RequestsPerMin,
	}
}
