package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/portal-router/internal/config"
	"github.com/jwebster45206/portal-router/internal/handlers"
	"github.com/jwebster45206/portal-router/internal/logger"
	"github.com/jwebster45206/portal-router/internal/metrics"
	"github.com/jwebster45206/portal-router/internal/middleware"
	"github.com/jwebster45206/portal-router/internal/services"
	"github.com/jwebster45206/portal-router/pkg/dataset"
	"github.com/jwebster45206/portal-router/pkg/route"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Portal Router API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"dataset_path", cfg.DatasetPath,
		"cache_enabled", cfg.CacheEnabled(),
		"memo", cfg.Memo)

	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		log.Error("Failed to load dataset", "error", err, "path", cfg.DatasetPath)
		os.Exit(1)
	}
	log.Info("Dataset loaded",
		"edges", ds.Len(),
		"locations", len(ds.Locations()),
		"fingerprint", ds.Fingerprint())

	var opts []route.RouterOption
	if cfg.Memo {
		opts = append(opts, route.WithMemo())
	}
	router := route.NewRouter(ds, opts...)

	reg := metrics.NewRegistry()
	reg.SetDataset(ds)

	var (
		cache      services.Cache
		routeCache *services.RouteCache
		redis      *services.RedisService
	)
	if cfg.CacheEnabled() {
		redis, err = services.NewRedisService(cfg.RedisURL, log)
		if err != nil {
			log.Error("Invalid Redis configuration", "error", err)
			os.Exit(1)
		}

		cacheCtx, cacheCancel := context.WithTimeout(context.Background(), 2*time.Minute)
		err = redis.WaitForConnection(cacheCtx)
		cacheCancel()
		if err != nil {
			log.Error("Failed to connect to cache", "error", err)
			os.Exit(1)
		}
		log.Info("Cache connection established successfully", "ttl", cfg.CacheTTL)

		cache = redis
		routeCache = services.NewRouteCache(redis, router, cfg.CacheTTL, log, reg)
	}

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(cache, ds, log)
	mux.Handle("/health", healthHandler)
	mux.Handle("/metrics", reg.Handler())

	mux.Handle("/v1/locations", handlers.NewLocationsHandler(log, ds))
	mux.Handle("/v1/edges", handlers.NewEdgesHandler(log, ds))
	mux.Handle("/v1/route", handlers.NewRouteHandler(log, router, routeCache, reg))

	handler := middleware.Logger(log, reg)(mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if redis != nil {
		if err := redis.Close(); err != nil {
			log.Error("Error closing cache connection", "error", err)
		}
	}

	log.Info("Server exited")
}
