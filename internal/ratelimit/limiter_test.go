package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLimiterAllowsWithinBudget(t *testing.T) {
	l := NewLimiter(Config{RequestsPerMin: 60, BurstMultiplier: 2})

	result := l.Allow("client-a")

	assert.True(t, result.Allowed)
	assert.Equal(t, 60, result.Limit)
	assert.Zero(t, result.RetryAfter)
}

func TestLimiterBlocksAfterBurst(t *testing.T) {
	// Burst floor is 5, and the refill rate of 1/min is too slow to matter
	// within the test.
	l := NewLimiter(Config{RequestsPerMin: 1, BurstMultiplier: 1})

	allowed := 0
	var blocked *Result
	for i := 0; i < 10; i++ {
		result := l.Allow("client-a")
		if result.Allowed {
			allowed++
		} else if blocked == nil {
			blocked = &result
		}
	}

	assert.Equal(t, 5, allowed)
	if assert.NotNil(t, blocked) {
		assert.Equal(t, time.Minute, blocked.RetryAfter)
	}
}

func TestLimiterIsolatesClients(t *testing.T) {
	l := NewLimiter(Config{RequestsPerMin: 1, BurstMultiplier: 1})

	for i := 0; i < 5; i++ {
		l.Allow("greedy")
	}
	assert.False(t, l.Allow("greedy").Allowed)
	assert.True(t, l.Allow("patient").Allowed)
}

func TestLimiterStats(t *testing.T) {
	l := NewLimiter(DefaultConfig())
	l.Allow("a")
	l.Allow("b")

	stats := l.Stats()

	assert.Equal(t, 2, stats["tracked_clients"])
	assert.Equal(t, 60, stats["requests_per_min"])
}

func TestMiddlewareSetsHeadersAndRejects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	l := NewLimiter(Config{RequestsPerMin: 1, BurstMultiplier: 1})

	r := gin.New()
	r.Use(l.Middleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		return w
	}

	var last *httptest.ResponseRecorder
	for i := 0; i < 5; i++ {
		last = do()
		assert.Equal(t, http.StatusOK, last.Code)
	}
	assert.Equal(t, "1", last.Header().Get("X-RateLimit-Limit"))

	rejected := do()
	assert.Equal(t, http.StatusTooManyRequests, rejected.Code)
	assert.Equal(t, "60", rejected.Header().Get("Retry-After"))
}
