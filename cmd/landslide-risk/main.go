package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/slopewatch/go-landslide-risk/internal/api"
	"github.com/slopewatch/go-landslide-risk/internal/config"
	"github.com/slopewatch/go-landslide-risk/internal/dataset"
	"github.com/slopewatch/go-landslide-risk/internal/logging"
	"github.com/slopewatch/go-landslide-risk/internal/risk"
	"github.com/slopewatch/go-landslide-risk/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	// The location dataset is the only external input; without it the
	// process has nothing to sample and must not start.
	locations, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		logging.Fatalf("Failed to load location dataset from %s: %v", cfg.Dataset.Path, err)
	}
	slog.Info("location dataset loaded", "path", cfg.Dataset.Path, "locations", locations.Len())

	alerts := store.New()
	sampler := risk.NewSampler(locations, alerts, nil)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // Set to false when using wildcard origins
	}))
	router.Use(api.RateLimitMiddleware(cfg.API.RateLimitRPS))
	router.Use(api.MetricsMiddleware())

	handler := api.NewHandler(sampler, alerts)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
}
