// ABOUTME: HTTP handlers for nearby-restaurant and region listing endpoints
// ABOUTME: Parses coordinate query parameters and delegates to the restaurant service

package handlers

import (
	"net/http"
	"strconv"

	coreerrors "mealmap-api/core/errors"
	"mealmap-api/core/restaurants"
	"mealmap-api/core/workers"
)

// defaultRadiusMeters applies when the radius query parameter is
// omitted.
const defaultRadiusMeters = 5000

// RestaurantHandler handles restaurant discovery endpoints.
type RestaurantHandler struct {
	service  *restaurants.RestaurantService
	enricher *workers.Enricher
}

// NewRestaurantHandler creates a restaurant handler. The enricher is
// optional; when set, lookup results are queued for background cache
// pre-warming.
func NewRestaurantHandler(service *restaurants.RestaurantService, enricher *workers.Enricher) *RestaurantHandler {
	return &RestaurantHandler{service: service, enricher: enricher}
}

// parseCoordinates reads lat, lon and radius from the query string.
func parseCoordinates(r *http.Request) (lat, lon float64, radius int, err error) {
	lat, err = strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		return 0, 0, 0, &coreerrors.ValidationError{Field: "lat", Message: "must be a number"}
	}

	lon, err = strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		return 0, 0, 0, &coreerrors.ValidationError{Field: "lon", Message: "must be a number"}
	}

	radius = defaultRadiusMeters
	if raw := r.URL.Query().Get("radius"); raw != "" {
		radius, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, 0, &coreerrors.ValidationError{Field: "radius", Message: "must be an integer"}
		}
	}
	return lat, lon, radius, nil
}

// Nearby handles GET /restaurants.
func (h *RestaurantHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, err := parseCoordinates(r)
	if err != nil {
		writeError(w, err)
		return
	}

	results, err := h.service.Nearby(r.Context(), lat, lon, radius)
	if err != nil {
		writeError(w, err)
		return
	}

	if h.enricher != nil {
		h.enricher.EnqueueRestaurants(results)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"restaurants": results,
		"count":       len(results),
	})
}

// Region handles GET /restaurants/region, returning restaurants sorted
// by distance from the query point.
func (h *RestaurantHandler) Region(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, err := parseCoordinates(r)
	if err != nil {
		writeError(w, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, &coreerrors.ValidationError{Field: "limit", Message: "must be an integer"})
			return
		}
	}

	results, err := h.service.ListForRegion(r.Context(), lat, lon, radius, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"restaurants": results,
		"count":       len(results),
	})
}
