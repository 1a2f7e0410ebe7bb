// Package monitoring provides request-level observability middleware.
package monitoring

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// slowRequestThreshold flags requests worth a closer look.
const slowRequestThreshold = 2 * time.Second

// RequestLogger logs one structured line per request with latency, status,
// and the correlation ID set by the router.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", duration.Milliseconds(),
			"ip", c.ClientIP(),
		}
		if id := c.GetString("request_id"); id != "" {
			attrs = append(attrs, "request_id", id)
		}

		switch {
		case status >= 500:
			slog.Error("Request failed", attrs...)
		case status >= 400:
			slog.Warn("Request rejected", attrs...)
		default:
			slog.Info("Request served", attrs...)
		}

		if duration > slowRequestThreshold {
			slog.Warn("Slow request", "path", c.Request.URL.Path, "duration", duration)
		}
	}
}
