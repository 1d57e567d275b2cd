// Package api provides the HTTP API layer for the MealMap application.
// It routes requests with the standard library mux and layers CORS,
// request logging, rate limiting, and response caching around the
// handlers.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Router, middleware chain, and server lifecycle
// - handlers/: HTTP request handlers per resource
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Middleware
//
// Requests pass through, in order:
//
// 1. CORS handling
// 2. Request logging with unique request IDs
// 3. Per-IP rate limiting
// 4. GET response caching (skipped for health, cache, and place routes)
//
// # Usage Example
//
//	server := api.NewServer(api.Config{
//	    Port:             8000,
//	    Logger:           logger,
//	    RateLimitRPS:     10,
//	    RateLimitBurst:   20,
//	    ResponseCacheTTL: time.Minute,
//	}, handlers)
//
//	go server.Start()
//	...
//	server.Shutdown(ctx)
//
// # Error Handling
//
// Handlers return a consistent error body:
//
//	{"error": "invalid lat: must be a number"}
//
// Domain errors are mapped to HTTP status codes: validation failures to
// 400, missing resources to 404, and upstream API failures to 502 (or
// 429/503 when the upstream reported those).
package api
