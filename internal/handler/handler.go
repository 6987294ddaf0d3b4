// Package handler provides HTTP handlers for the portfolio API.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/portfolio/portfolio/internal/handler/dto"
)

// Handler serves the router-level fallbacks.
type Handler struct {
	spa http.Handler
}

// New creates a Handler. spa answers unmatched GET and HEAD requests.
func New(spa http.Handler) *Handler {
	return &Handler{spa: spa}
}

// NotFound handles unmatched routes.
// GET and HEAD fall through to the static client so it can own routing;
// anything else is a JSON 404.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	if h.spa != nil && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
		h.spa.ServeHTTP(w, r)
		return
	}

	response := map[string]string{
		"error": "resource not found",
	}
	writeJSON(w, http.StatusNotFound, response)
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"error": "method not allowed",
	}
	writeJSON(w, http.StatusMethodNotAllowed, response)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeStoreError logs err and reports it to the caller verbatim.
func writeStoreError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	logger.Error("store_error", "op", op, "error", err)
	writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
}

// decodeBody decodes a JSON request body into dst.
// An empty body decodes as an empty object.
func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: err.Error()})
		return false
	}

	logger.Error("decode_error", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	return false
}
