// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: One cache instance is built in main and threaded through this container

package interfaces

import "mealmap-api/core/cache"

// Dependencies holds the external collaborators required by the core
// services. The cache is a single per-process instance injected here
// rather than reached through a package-level singleton, so tests can
// construct a fresh isolated instance per test.
type Dependencies struct {
	// Cache memoizes external lookups per namespace
	Cache *cache.Cache

	// HTTPClient performs requests against external APIs
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
