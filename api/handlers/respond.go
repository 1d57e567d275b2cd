// ABOUTME: Shared JSON response helpers for all API handlers
// ABOUTME: Maps core error types onto HTTP status codes in one place

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	coreerrors "mealmap-api/core/errors"
)

// errorResponse is the JSON body for every error reply.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// writeError translates core errors into HTTP status codes:
// validation failures are the client's fault, missing resources are
// 404, and upstream API failures surface as 502 (or 429 / 503 when the
// upstream said so).
func writeError(w http.ResponseWriter, err error) {
	switch {
	case coreerrors.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case coreerrors.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case coreerrors.IsExternalAPI(err):
		var apiErr *coreerrors.ExternalAPIError
		errors.As(err, &apiErr)
		status := http.StatusBadGateway
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests:
			status = http.StatusTooManyRequests
		case http.StatusServiceUnavailable:
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
