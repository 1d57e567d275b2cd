// ABOUTME: HTTP handler for the free-text place search endpoint
// ABOUTME: Delegates query normalization and caching to the search service

package handlers

import (
	"net/http"

	"mealmap-api/core/search"
)

// SearchHandler handles GET /search.
type SearchHandler struct {
	service *search.SearchService
}

// NewSearchHandler creates a search handler.
func NewSearchHandler(service *search.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search handles GET /search?q=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.SearchPlaces(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"count":   len(results),
	})
}
