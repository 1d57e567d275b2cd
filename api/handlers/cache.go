// ABOUTME: HTTP handlers for cache observability and administration
// ABOUTME: Exposes per-namespace stats plus clear and sweep operations

package handlers

import (
	"net/http"

	"mealmap-api/core/cache"
)

// CacheHandler exposes the lookup cache over HTTP.
type CacheHandler struct {
	cache *cache.Cache
}

// NewCacheHandler creates a cache handler.
func NewCacheHandler(c *cache.Cache) *CacheHandler {
	return &CacheHandler{cache: c}
}

// Stats handles GET /cache/stats.
func (h *CacheHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"namespaces": h.cache.Stats(),
	})
}

// Clear handles POST /cache/clear. An empty or "all" namespace clears
// every namespace.
func (h *CacheHandler) Clear(w http.ResponseWriter, r *http.Request) {
	namespace := r.URL.Query().Get("namespace")
	if namespace == "" || namespace == "all" {
		h.cache.ClearAll()
	} else {
		h.cache.Clear(namespace)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cleared": true,
	})
}

// Sweep handles POST /cache/sweep, forcing an expired-entry purge
// without waiting for the background sweeper.
func (h *CacheHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	h.cache.InvalidateExpired()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"swept": true,
	})
}
