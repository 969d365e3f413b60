package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rpsls/internal/config"
	"rpsls/internal/db"
	httpServer "rpsls/internal/http"
	"rpsls/internal/http/handlers"
	"rpsls/internal/http/middleware"
	"rpsls/internal/logger"
	"rpsls/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	var (
		rounds handlers.RoundStore
		pinger handlers.Pinger
	)
	if cfg.DatabaseURL != "" {
		dbPool := db.Connect(cfg.DatabaseURL)
		defer dbPool.Close()

		if err := db.Migrate(context.Background(), dbPool); err != nil {
			logger.Fatal("failed to apply migrations", "error", err)
		}
		rounds = repository.NewRoundRepository(dbPool)
		pinger = dbPool
	} else {
		logger.Info("DATABASE_URL not set, round history disabled")
	}

	redisActive := middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer middleware.CloseRedisRateLimiter()

	r := gin.Default()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer.RegisterRoutes(r, httpServer.RouteConfig{
		Handler: handlers.NewHandler(rounds, handlers.HandlerConfig{
			OpponentRange: cfg.OpponentRange(),
		}),
		Health:      handlers.NewHealthHandler(pinger, version),
		RateLimit:   cfg.APIRateLimit,
		RateWindow:  cfg.APIRateWindow(),
		RedisActive: redisActive,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort, "opponent_range", cfg.OpponentRange().String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
