package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"debt-health/config"
	httpLayer "debt-health/http"
	"debt-health/repository"
	"debt-health/service"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		logger.Infof("using redis cache at %s", cfg.RedisAddr)
	} else {
		cache = repository.NewMockCache()
		logger.Info("REDIS_ADDR not set, using in-memory cache")
	}
	reportRepo := repository.NewReportRepositoryMemory()

	cashFlowService := service.NewCashFlowService(logger)
	leakService := service.NewLeakService(logger)
	prioritizerService := service.NewPrioritizerService(logger)
	freedomService := service.NewFreedomGPSService(logger)
	healthService := service.NewDebtHealthService(
		cashFlowService,
		leakService,
		prioritizerService,
		freedomService,
		reportRepo,
		cache,
		logger,
	)

	healthHandler := httpLayer.NewDebtHealthHandler(healthService, logger)
	cashFlowHandler := httpLayer.NewCashFlowHandler(cashFlowService, logger)
	leakHandler := httpLayer.NewInterestLeakHandler(leakService, logger)
	prioritizerHandler := httpLayer.NewPrioritizerHandler(prioritizerService, logger)
	freedomHandler := httpLayer.NewFreedomGPSHandler(freedomService, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	router := mux.NewRouter()
	router.Use(httpLayer.RequestIDMiddleware(logger))
	router.Use(httpLayer.RateLimitMiddleware(rateLimiter, logger))

	router.HandleFunc("/debt/health-report", healthHandler.BuildReport).Methods(http.MethodPost)
	router.HandleFunc("/debt/cash-flow", cashFlowHandler.Project).Methods(http.MethodPost)
	router.HandleFunc("/debt/interest-leak", leakHandler.Estimate).Methods(http.MethodPost)
	router.HandleFunc("/debt/prioritize", prioritizerHandler.Prioritize).Methods(http.MethodPost)
	router.HandleFunc("/debt/freedom-gps", freedomHandler.Compare).Methods(http.MethodPost)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("debt health API listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.WithError(err).Error("error starting server")
		return
	case <-quit:
		logger.Info("shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("error during server shutdown")
	}

	logger.Info("server exited")
}
