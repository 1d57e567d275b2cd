// ABOUTME: Health check endpoint for load balancers and monitoring
// ABOUTME: Reports process liveness and uptime

package handlers

import (
	"net/http"
	"time"
)

// HealthHandler handles GET /health.
type HealthHandler struct {
	startTime time.Time
	version   string
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		startTime: time.Now(),
		version:   version,
	}
}

// Health responds with liveness information.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "healthy",
		"version":        h.version,
		"uptime_seconds": int(time.Since(h.startTime).Seconds()),
	})
}
