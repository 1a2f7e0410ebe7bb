package ratelimit

import (
	"fmt"

	"github.com/gin-gonic/gin"

	apperrors "github.com/gitflexhq/gitflex/internal/errors"
)

// Middleware enforces the per-IP rate limit and sets standard X-RateLimit
// response headers.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		result := l.Allow(c.ClientIP())

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))

		if !result.Allowed {
			retryAfter := fmt.Sprintf("%d", int(result.RetryAfter.Seconds()))
			c.Header("Retry-After", retryAfter)

			appErr := apperrors.NewRateLimitError(retryAfter)
			apperrors.LogError(c, appErr)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
			return
		}

		c.Next()
	}
}
