// ABOUTME: HTTP handlers for saved places CRUD endpoints
// ABOUTME: Decodes request bodies and delegates persistence to the place service

package handlers

import (
	"encoding/json"
	"net/http"

	"mealmap-api/core/domain"
	coreerrors "mealmap-api/core/errors"
	"mealmap-api/core/places"
)

// PlaceHandler handles the saved places endpoints.
type PlaceHandler struct {
	service *places.PlaceService
}

// NewPlaceHandler creates a place handler.
func NewPlaceHandler(service *places.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

// savePlaceRequest is the body for POST /places.
type savePlaceRequest struct {
	Restaurant domain.Restaurant `json:"restaurant"`
	Note       string            `json:"note"`
}

// Save handles POST /places.
func (h *PlaceHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req savePlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &coreerrors.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}

	place, err := h.service.Save(r.Context(), req.Restaurant, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, place)
}

// Get handles GET /places/{id}.
func (h *PlaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	place, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, place)
}

// List handles GET /places.
func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	saved, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"places": saved,
		"count":  len(saved),
	})
}

// Delete handles DELETE /places/{id}.
func (h *PlaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
