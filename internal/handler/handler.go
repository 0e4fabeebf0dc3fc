package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/byword/intake-api/internal/config"
	"github.com/byword/intake-api/internal/metrics"
	"github.com/byword/intake-api/internal/service"
)

// Handler serves the intake API endpoints.
type Handler struct {
	cfg     config.Config
	svc     service.IntakeService
	log     *slog.Logger
	metrics *metrics.Metrics
	started time.Time
	now     func() time.Time
}

// New creates a Handler. log and m may be nil.
func New(cfg config.Config, svc service.IntakeService, log *slog.Logger, m *metrics.Metrics) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		cfg:     cfg,
		svc:     svc,
		log:     log,
		metrics: m,
		started: time.Now(),
		now:     time.Now,
	}
}

// CORS allows any origin. Preflight requests are answered with 200 and no body.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders adds response headers suited to a JSON-only API.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
