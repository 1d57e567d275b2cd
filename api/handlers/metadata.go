// ABOUTME: HTTP handlers for site metadata and photo color extraction
// ABOUTME: Used by clients to enrich restaurant website links and photos

package handlers

import (
	"net/http"

	coreerrors "mealmap-api/core/errors"
	"mealmap-api/core/services"
)

// MetadataHandler handles metadata and photo color endpoints.
type MetadataHandler struct {
	metadata   *services.SiteMetadataService
	photoColor *services.PhotoColorService
}

// NewMetadataHandler creates a metadata handler.
func NewMetadataHandler(metadata *services.SiteMetadataService, photoColor *services.PhotoColorService) *MetadataHandler {
	return &MetadataHandler{metadata: metadata, photoColor: photoColor}
}

// SiteMetadata handles GET /metadata?url=.
func (h *MetadataHandler) SiteMetadata(w http.ResponseWriter, r *http.Request) {
	siteURL := r.URL.Query().Get("url")
	if siteURL == "" {
		writeError(w, &coreerrors.ValidationError{Field: "url", Message: "cannot be empty"})
		return
	}

	meta, err := h.metadata.ExtractMetadata(r.Context(), siteURL)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, meta)
}

// PhotoColor handles GET /photocolor?image=. The service never fails
// for bad input; it falls back to a neutral gray.
func (h *MetadataHandler) PhotoColor(w http.ResponseWriter, r *http.Request) {
	imageURL := r.URL.Query().Get("image")

	color, err := h.photoColor.ExtractColor(r.Context(), imageURL)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, color)
}
