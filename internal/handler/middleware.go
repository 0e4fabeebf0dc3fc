package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// MaxBodyBytes caps the request body read by JSONBody.
const MaxBodyBytes = 1 << 20

type bodyKey struct{}

// BodyFromContext returns the JSON body stored by JSONBody, or nil.
func BodyFromContext(ctx context.Context) json.RawMessage {
	raw, _ := ctx.Value(bodyKey{}).(json.RawMessage)
	return raw
}

// JSONBody reads a JSON request body once and stores it in the request
// context. Bodies that are not JSON are ignored, so handlers see an absent
// body rather than a rejection. A body over MaxBodyBytes is a server error.
func (h *Handler) JSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody || !isJSONContent(r.Header.Get("Content-Type")) {
			next.ServeHTTP(w, r)
			return
		}

		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
		if err != nil {
			h.serverError(w, r, fmt.Errorf("read body: %w", err))
			return
		}
		data = bytes.TrimSpace(data)
		if len(data) == 0 {
			next.ServeHTTP(w, r)
			return
		}
		if !json.Valid(data) {
			h.log.DebugContext(r.Context(), "ignoring malformed JSON body", "path", r.URL.Path, "bytes", len(data))
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), bodyKey{}, json.RawMessage(data))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// isJSONContent accepts application/json and a missing Content-Type.
func isJSONContent(ct string) bool {
	if ct == "" {
		return true
	}
	mt, _, err := mime.ParseMediaType(ct)
	return err == nil && mt == "application/json"
}

// Recover is the terminal error formatter: a panic in any inner handler is
// logged and answered with the standard 500 payload.
func (h *Handler) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}
			if sr.wroteHeader {
				h.log.ErrorContext(r.Context(), "panic after response started", "path", r.URL.Path, "error", err)
				return
			}
			h.serverError(sr, r, err)
		}()
		next.ServeHTTP(sr, r)
	})
}
