package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/damon-houk/listing-currency-service/internal/application/service"
	"github.com/damon-houk/listing-currency-service/internal/domain/registry"
	"github.com/damon-houk/listing-currency-service/internal/domain/repository"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/cache"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/config"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/db"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/handler"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/logger"
	"github.com/damon-houk/listing-currency-service/internal/infrastructure/middleware"
	"github.com/dgraph-io/badger/v3"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewZapLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel))
	logger.SetDefaultLogger(log)
	defer log.Sync()

	log.Info("Starting listing currency service", map[string]interface{}{
		"port":               cfg.Port,
		"rate_store":         cfg.RateStore,
		"base_currency":      cfg.BaseCurrency,
		"display_currencies": cfg.DisplayCurrencies,
	})

	reg, err := cfg.Registry()
	if err != nil {
		log.Fatal("Failed to build currency registry", map[string]interface{}{"error": err.Error()})
	}

	store, closeStore, err := openRateStore(cfg, reg, log)
	if err != nil {
		log.Fatal("Failed to open rate store", map[string]interface{}{"error": err.Error()})
	}
	defer closeStore()

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	if cfg.RateCacheTTL > 0 {
		rateCache := cache.NewRateCache(cfg.RateCacheTTL)
		go rateCache.RunCleanup(appCtx, cfg.RateCacheTTL, func(evicted int) {
			log.Debug("Evicted expired rates", map[string]interface{}{"evicted": evicted})
		})
		store = cache.NewCachedRateStore(store, rateCache)
	}

	if cfg.SeedDefaultRates {
		if _, err := service.SeedDefaultRates(context.Background(), store, reg, log); err != nil {
			log.Fatal("Failed to seed default rates", map[string]interface{}{"error": err.Error()})
		}
	}

	// Initialize services
	converter := service.NewConverter(store, reg, cfg.Base(), cfg.Display(), log)
	detector := service.NewDetector(reg, log)
	resolver := service.NewProductResolver(detector, converter, log)

	// Setup router
	router := mux.NewRouter()
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.RecoveryMiddleware(log))

	handler.NewRateHandler(store, converter, reg, log).RegisterRoutes(router)
	handler.NewConversionHandler(converter, reg, log).RegisterRoutes(router)
	handler.NewDetectionHandler(detector, log).RegisterRoutes(router)
	handler.NewProductHandler(resolver, reg, log).RegisterRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Server listening", map[string]interface{}{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	stopApp()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed", map[string]interface{}{"error": err.Error()})
	}
	log.Info("Server stopped", nil)
}

// openRateStore opens the configured backend. The returned func releases it.
func openRateStore(cfg *config.Config, reg *registry.Registry, log logger.Logger) (repository.RateStore, func(), error) {
	switch cfg.RateStore {
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		repo := db.NewRedisRateRepository(client, cfg.RedisNamespace, reg)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repo.Ping(ctx); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
		}

		return repo, func() {
			if err := client.Close(); err != nil {
				log.Error("Error closing Redis client", map[string]interface{}{"error": err.Error()})
			}
		}, nil

	default:
		if err := os.MkdirAll(cfg.BadgerPath, 0755); err != nil {
			return nil, nil, fmt.Errorf("create database directory: %w", err)
		}

		badgerOpts := badger.DefaultOptions(cfg.BadgerPath)
		badgerOpts.Logger = nil // Disable Badger's default logger
		badgerOpts.SyncWrites = cfg.BadgerSyncWrites

		badgerDB, err := badger.Open(badgerOpts)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}

		return db.NewBadgerRateRepository(badgerDB, reg), func() {
			if err := badgerDB.Close(); err != nil {
				log.Error("Error closing BadgerDB", map[string]interface{}{"error": err.Error()})
			}
		}, nil
	}
}
