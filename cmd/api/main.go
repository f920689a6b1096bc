// ABOUTME: Main entry point for the Weightless API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weightless-api/api"
	"weightless-api/api/handlers"
	"weightless-api/core/github"
	"weightless-api/core/interfaces"
	"weightless-api/infrastructure/cache/gocache"
	"weightless-api/infrastructure/cache/memory"
	stdhttp "weightless-api/infrastructure/http/standard"
	logruslogger "weightless-api/infrastructure/logger/logrus"
	"weightless-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogrusLogger(cfg.Log.Level)
	logger.Info("Starting Weightless API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "gocache":
		cache = gocache.NewGoCache(cfg.Cache.ReposTTL, 10*time.Minute)
		logger.Info("Using go-cache backend", nil)
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache backend", nil)
	}

	httpClient := stdhttp.NewStandardHTTPClient(cfg.GitHub.Timeout)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	githubService := github.NewService(deps, github.Config{
		Token:        cfg.GitHub.Token,
		MaxRetries:   cfg.GitHub.MaxRetries,
		ReposTTL:     cfg.Cache.ReposTTL,
		LanguagesTTL: cfg.Cache.LanguagesTTL,
	})

	humaAPI, router := api.NewAPI(api.APIConfig{
		Logger:      logger,
		CORSOrigins: cfg.Server.CORSOrigins,
		RateLimit:   cfg.Server.RateLimit,
		RateBurst:   cfg.Server.RateBurst,
	})

	reposHandler := handlers.NewReposHandler(githubService)
	reposHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler("http://localhost:" + cfg.Server.Port)
	healthHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
