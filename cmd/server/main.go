package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dulceandina/panela-backend/internal/analytics"
	"github.com/dulceandina/panela-backend/internal/api"
	"github.com/dulceandina/panela-backend/internal/api/middleware"
	"github.com/dulceandina/panela-backend/internal/cache"
	"github.com/dulceandina/panela-backend/internal/config"
	"github.com/dulceandina/panela-backend/internal/repository/postgres"
	"github.com/dulceandina/panela-backend/internal/service"
	"github.com/dulceandina/panela-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize report cache
	reportCache, err := cache.NewReportCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Report cache unavailable, continuing without it")
		reportCache = cache.NewNoopReportCache()
	}

	// Initialize services
	analyticsRepo := postgres.NewAnalyticsRepository(db)
	builder := analytics.NewBuilder(analyticsRepo,
		analytics.WithTopSuppliers(cfg.Analytics.TopSuppliers))

	services := &api.Services{
		Analytics: service.NewAnalyticsService(builder, reportCache),
		Catalog:   service.NewCatalogService(postgres.NewCatalogRepository(db)),
	}

	issuer := middleware.NewTokenIssuer(cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	// Initialize HTTP server
	router := api.NewRouter(services, issuer, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
