package handler

import (
	"encoding/json"
	"net/http"

	"github.com/byword/intake-api/internal/model"
)

const contentTypeJSON = "application/json; charset=utf-8"

// apiFunc is a handler whose error is turned into a 500 response.
type apiFunc func(w http.ResponseWriter, r *http.Request) error

type errorResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

type notFoundResponse struct {
	Success            bool     `json:"success"`
	Message            string   `json:"message"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// handle adapts fn to http.HandlerFunc.
func (h *Handler) handle(fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.serverError(w, r, err)
		}
	}
}

// serverError logs err and reports it to the caller as a 500.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	if werr := writeJSON(w, http.StatusInternalServerError, errorResponse{
		Success:   false,
		Message:   "Internal server error",
		Error:     err.Error(),
		Timestamp: model.Timestamp(h.now()),
	}); werr != nil {
		h.log.WarnContext(r.Context(), "failed to write error response", "error", werr)
	}
}

// NotFound answers every request that no route matched.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusNotFound, notFoundResponse{
		Success:            false,
		Message:            "Endpoint not found",
		AvailableEndpoints: availableEndpoints(),
	})
}
