// Package server assembles the HTTP surface around the scoring engine.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gitflexhq/gitflex/internal/analysis"
	"github.com/gitflexhq/gitflex/internal/cache"
	"github.com/gitflexhq/gitflex/internal/errors"
	"github.com/gitflexhq/gitflex/internal/middleware"
	"github.com/gitflexhq/gitflex/internal/monitoring"
	"github.com/gitflexhq/gitflex/internal/ratelimit"
	"github.com/gitflexhq/gitflex/internal/security"
	"github.com/gitflexhq/gitflex/internal/store"
)

// Config controls router assembly.
type Config struct {
	CORSOrigins []string
	CacheTTL    time.Duration
	RateLimit   ratelimit.Config
}

// DefaultConfig returns sensible defaults for local development.
func DefaultConfig() Config {
	return Config{
		CORSOrigins: []string{"http://localhost:3000"},
		CacheTTL:    15 * time.Minute,
		RateLimit:   ratelimit.DefaultConfig(),
	}
}

// New builds the gin engine with the full middleware stack and API routes.
func New(cfg Config, analyzer *analysis.Analyzer, reports *store.Store) *gin.Engine {
	r := gin.New()

	r.Use(errors.ErrorHandler())
	r.Use(errors.RecoveryHandler())
	r.Use(requestID())
	r.Use(monitoring.RequestLogger())
	r.Use(security.Headers())
	r.Use(middleware.Compression())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	r.Use(cors.New(corsConfig))

	limiter := ratelimit.NewLimiter(cfg.RateLimit)
	r.Use(limiter.Middleware())

	responseCache := cache.New(cfg.CacheTTL)
	r.Use(responseCache.Middleware("/api/v1/analyze/profile", "/api/v1/analyze/repo"))

	handler := NewHandler(analyzer, reports)

	r.GET("/health", func(c *gin.Context) {
		health := gin.H{
			"status":     "ok",
			"timestamp":  time.Now().Format(time.RFC3339),
			"cache":      responseCache.Stats(),
			"rate_limit": limiter.Stats(),
		}
		if reports != nil {
			health["store"] = reports.Stats()
		}
		c.JSON(http.StatusOK, health)
	})

	api := r.Group("/api/v1")
	{
		api.POST("/analyze/profile", handler.AnalyzeProfile)
		api.POST("/analyze/repo", handler.AnalyzeRepo)
		api.POST("/refine", handler.Refine)
		api.GET("/reports", handler.ListReports)
		api.GET("/reports/:username", handler.GetReport)
		api.DELETE("/reports/:username", handler.DeleteReport)
	}

	return r
}

// requestID attaches a request identifier for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}
