// ABOUTME: Main entry point for the MealMap API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mealmap-api/api"
	"mealmap-api/api/handlers"
	"mealmap-api/core/cache"
	"mealmap-api/core/interfaces"
	"mealmap-api/core/nutrition"
	"mealmap-api/core/places"
	"mealmap-api/core/restaurants"
	"mealmap-api/core/search"
	"mealmap-api/core/services"
	"mealmap-api/core/workers"
	stdhttp "mealmap-api/infrastructure/http/standard"
	logruslogger "mealmap-api/infrastructure/logger/logrus"
	memorystore "mealmap-api/infrastructure/storage/memory"
	redisstore "mealmap-api/infrastructure/storage/redis"
	sqlitestore "mealmap-api/infrastructure/storage/sqlite"
	"mealmap-api/pkg/config"
	"mealmap-api/pkg/featureflags"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger(cfg.LogLevel)
	logger.Info("Starting MealMap API", map[string]interface{}{
		"port":           cfg.Server.Port,
		"storage_type":   cfg.Storage.Type,
		"sweep_interval": cfg.Cache.SweepInterval.String(),
	})

	// Create the lookup cache with its namespaces
	lookupCache := cache.New(cfg.Cache.SweepInterval, cache.Defaults(cfg.Cache.MaxEntries)...)
	defer lookupCache.Close()

	// Create saved-place storage
	storage := newPlaceStorage(cfg, logger)

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Server.HTTPTimeout)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      lookupCache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	restaurantService := restaurants.NewRestaurantService(deps, cfg.APIs.OverpassURL)
	nutritionService := nutrition.NewNutritionService(deps, cfg.APIs.NutritionURL)
	searchService := search.NewSearchService(deps, cfg.APIs.SearchURL)
	metadataService := services.NewSiteMetadataService(deps)
	photoColorService := services.NewPhotoColorService(deps)
	placeService := places.NewPlaceService(storage, logger)

	// Background enrichment pre-warms metadata and photo color caches
	// for lookup results
	enricher := workers.NewEnricher(metadataService, photoColorService, logger, workers.DefaultWorkerConfig())
	defer enricher.Stop()

	// Feature flags control optional endpoints via FEATURE_* env vars
	flags := featureflags.NewEnvManager("")
	for flag, enabled := range flags.GetAllFlags() {
		if !enabled {
			logger.Info("Feature disabled", map[string]interface{}{
				"flag": string(flag),
			})
		}
	}

	// Create server
	server := api.NewServer(api.Config{
		Port:             cfg.Server.Port,
		Logger:           logger,
		RateLimitRPS:     cfg.Server.RateLimitRPS,
		RateLimitBurst:   cfg.Server.RateLimitBurst,
		ResponseCacheTTL: cfg.Server.ResponseCacheTTL,
		Flags:            flags,
	}, api.Handlers{
		Restaurants: handlers.NewRestaurantHandler(restaurantService, enricher),
		Nutrition:   handlers.NewNutritionHandler(nutritionService),
		Search:      handlers.NewSearchHandler(searchService),
		Metadata:    handlers.NewMetadataHandler(metadataService, photoColorService),
		Places:      handlers.NewPlaceHandler(placeService),
		Cache:       handlers.NewCacheHandler(lookupCache),
		Health:      handlers.NewHealthHandler(version),
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	logger.Info("Server stopped", nil)
}

// newPlaceStorage builds the configured storage backend, falling back
// to memory when a remote backend is unreachable.
func newPlaceStorage(cfg *config.Config, logger interfaces.Logger) interfaces.PlaceStorage {
	switch cfg.Storage.Type {
	case "redis":
		store, err := redisstore.NewStore(redisstore.Config{
			Address:  cfg.Storage.Redis.Address,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		if err != nil {
			logger.Error("Failed to connect to Redis, falling back to memory storage", map[string]interface{}{
				"error": err.Error(),
			})
			return memorystore.NewStore()
		}
		logger.Info("Using Redis storage", map[string]interface{}{
			"address": cfg.Storage.Redis.Address,
		})
		return store
	case "sqlite":
		store, err := sqlitestore.NewStore(cfg.Storage.SQLitePath)
		if err != nil {
			logger.Error("Failed to open SQLite database, falling back to memory storage", map[string]interface{}{
				"error": err.Error(),
			})
			return memorystore.NewStore()
		}
		logger.Info("Using SQLite storage", map[string]interface{}{
			"path": cfg.Storage.SQLitePath,
		})
		return store
	default:
		logger.Info("Using memory storage", nil)
		return memorystore.NewStore()
	}
}
