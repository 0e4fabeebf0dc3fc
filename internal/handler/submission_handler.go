package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/byword/intake-api/internal/model"
)

// Contact handles POST /api/contact.
// No field is required; missing fields are empty strings.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) error {
	var sub model.ContactSubmission
	if err := decodeBody(r, &sub); err != nil {
		return err
	}
	ack, err := h.svc.Contact(r.Context(), &sub)
	if err != nil {
		return fmt.Errorf("acknowledge contact: %w", err)
	}
	return writeJSON(w, http.StatusOK, ack)
}

// Intake handles POST /api/intake. Any JSON object is accepted.
func (h *Handler) Intake(w http.ResponseWriter, r *http.Request) error {
	sub := model.Submission{}
	if err := decodeBody(r, &sub); err != nil {
		return err
	}
	ack, err := h.svc.Intake(r.Context(), sub)
	if err != nil {
		return fmt.Errorf("acknowledge intake: %w", err)
	}
	return writeJSON(w, http.StatusOK, ack)
}

// Catering handles POST /api/catering. Any JSON object is accepted.
func (h *Handler) Catering(w http.ResponseWriter, r *http.Request) error {
	sub := model.Submission{}
	if err := decodeBody(r, &sub); err != nil {
		return err
	}
	ack, err := h.svc.Catering(r.Context(), sub)
	if err != nil {
		return fmt.Errorf("acknowledge catering: %w", err)
	}
	return writeJSON(w, http.StatusOK, ack)
}

// decodeBody fills dst from the body parsed by JSONBody. An absent body
// leaves dst untouched, and fields of the wrong JSON type are skipped.
func decodeBody(r *http.Request, dst any) error {
	raw := BodyFromContext(r.Context())
	if len(raw) == 0 {
		return nil
	}
	err := json.Unmarshal(raw, dst)
	var typeErr *json.UnmarshalTypeError
	if err != nil && !errors.As(err, &typeErr) {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
