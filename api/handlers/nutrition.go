// ABOUTME: HTTP handler for the nutrition lookup endpoint
// ABOUTME: Delegates name normalization and caching to the nutrition service

package handlers

import (
	"net/http"

	"mealmap-api/core/nutrition"
)

// NutritionHandler handles GET /nutrition.
type NutritionHandler struct {
	service *nutrition.NutritionService
}

// NewNutritionHandler creates a nutrition handler.
func NewNutritionHandler(service *nutrition.NutritionService) *NutritionHandler {
	return &NutritionHandler{service: service}
}

// Lookup handles GET /nutrition?name=.
func (h *NutritionHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Lookup(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}
