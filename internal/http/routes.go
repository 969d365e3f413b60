package http

import (
	"time"

	"rpsls/internal/http/handlers"
	"rpsls/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RouteConfig wires handlers and rate limits.
type RouteConfig struct {
	Handler *handlers.Handler
	Health  *handlers.HealthHandler

	RateLimit   int
	RateWindow  time.Duration
	RedisActive bool
}

func RegisterRoutes(r *gin.Engine, cfg RouteConfig) {
	// Health checks (no rate limiting)
	r.GET("/health", cfg.Health.Health)
	r.GET("/healthz", cfg.Health.Liveness)
	r.GET("/readyz", cfg.Health.Readiness)

	limit := middleware.MemoryRateLimit(cfg.RateLimit, cfg.RateWindow)
	if cfg.RedisActive {
		limit = middleware.RedisRateLimit(cfg.RateLimit, cfg.RateWindow)
	}

	v1 := r.Group("/api/v1")
	v1.Use(limit)
	registerAPIRoutes(v1, cfg.Handler)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	api.POST("/game/rpsls", h.Play)
	api.GET("/game/rpsls/info", h.Info)
	api.GET("/game/rpsls/:id", h.GetRound)
}
