// ABOUTME: HTTP server wiring routes, middleware chain, and CORS
// ABOUTME: Owns the http.Server lifecycle including graceful shutdown

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"

	"mealmap-api/api/handlers"
	"mealmap-api/api/middleware"
	"mealmap-api/core/interfaces"
	"mealmap-api/pkg/featureflags"
)

// Config holds the server configuration.
type Config struct {
	Port             int
	Logger           interfaces.Logger
	RateLimitRPS     float64
	RateLimitBurst   int
	ResponseCacheTTL time.Duration

	// Flags gates optional endpoints; nil enables everything.
	Flags featureflags.Manager
}

// Handlers groups the endpoint handlers the server routes to.
type Handlers struct {
	Restaurants *handlers.RestaurantHandler
	Nutrition   *handlers.NutritionHandler
	Search      *handlers.SearchHandler
	Metadata    *handlers.MetadataHandler
	Places      *handlers.PlaceHandler
	Cache       *handlers.CacheHandler
	Health      *handlers.HealthHandler
}

// Server is the API HTTP server.
type Server struct {
	httpServer *http.Server
	logger     interfaces.Logger
}

// NewServer builds the router and middleware chain.
func NewServer(cfg Config, h Handlers) *Server {
	flags := cfg.Flags
	if flags == nil {
		flags = featureflags.AllEnabled()
	}
	ctx := context.Background()

	mux := http.NewServeMux()

	mux.HandleFunc("GET /restaurants", h.Restaurants.Nearby)
	if flags.IsEnabled(ctx, featureflags.RegionListingEnabled) {
		mux.HandleFunc("GET /restaurants/region", h.Restaurants.Region)
	}
	mux.HandleFunc("GET /nutrition", h.Nutrition.Lookup)
	mux.HandleFunc("GET /search", h.Search.Search)
	if flags.IsEnabled(ctx, featureflags.SiteMetadataEnabled) {
		mux.HandleFunc("GET /metadata", h.Metadata.SiteMetadata)
	}
	if flags.IsEnabled(ctx, featureflags.PhotoColorEnabled) {
		mux.HandleFunc("GET /photocolor", h.Metadata.PhotoColor)
	}

	mux.HandleFunc("POST /places", h.Places.Save)
	mux.HandleFunc("GET /places", h.Places.List)
	mux.HandleFunc("GET /places/{id}", h.Places.Get)
	mux.HandleFunc("DELETE /places/{id}", h.Places.Delete)

	mux.HandleFunc("GET /cache/stats", h.Cache.Stats)
	mux.HandleFunc("POST /cache/clear", h.Cache.Clear)
	mux.HandleFunc("POST /cache/sweep", h.Cache.Sweep)

	mux.HandleFunc("GET /health", h.Health.Health)

	// Innermost first: cache sits closest to the handlers so cached
	// responses still pass through rate limiting and logging.
	var handler http.Handler = mux
	if flags.IsEnabled(ctx, featureflags.ResponseCacheEnabled) {
		handler = middleware.NewResponseCache(cfg.ResponseCacheTTL).Middleware(handler)
	}
	handler = middleware.RateLimitMiddleware(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))(handler)
	handler = middleware.RequestLoggingMiddleware(cfg.Logger)(handler)

	handler = cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"X-Request-ID", "X-Cache"},
		MaxAge:         300,
	}).Handler(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		logger: cfg.Logger,
	}
}

// Start begins serving and blocks until the listener closes.
func (s *Server) Start() error {
	s.logger.Info("Starting API server", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server", nil)
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the fully wired handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
