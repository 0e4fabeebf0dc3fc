package handler

import (
	"net/http"
	"time"

	"github.com/byword/intake-api/internal/model"
)

type endpointsInfo struct {
	Health   string `json:"health"`
	Status   string `json:"status"`
	Contact  string `json:"contact"`
	Intake   string `json:"intake"`
	Catering string `json:"catering"`
}

type rootResponse struct {
	Message   string        `json:"message"`
	Port      int           `json:"port"`
	Service   string        `json:"service"`
	Endpoints endpointsInfo `json:"endpoints"`
}

// Health handles GET /health. There are no dependencies to check, so a
// running process is always healthy.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, model.HealthReport{
		Status:    "healthy",
		Timestamp: model.Timestamp(h.now()),
		Port:      h.cfg.Port,
		Service:   h.cfg.ServiceName,
	})
}

// Root handles GET / with a welcome payload listing the endpoints.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, rootResponse{
		Message: "Byword Intake API is running",
		Port:    h.cfg.Port,
		Service: h.cfg.ServiceName,
		Endpoints: endpointsInfo{
			Health:   PathHealth,
			Status:   PathStatus,
			Contact:  PathContact,
			Intake:   PathIntake,
			Catering: PathCatering,
		},
	})
}

// Status handles GET /api/status. Uptime is in seconds since the handler was built.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	_ = writeJSON(w, http.StatusOK, model.ServiceStatus{
		Service:            h.cfg.ServiceName,
		Status:             "operational",
		Version:            h.cfg.Version,
		Uptime:             now.Sub(h.started).Round(time.Millisecond).Seconds(),
		Timestamp:          model.Timestamp(now),
		EndpointsAvailable: []string{"health", "status", "contact", "intake", "catering"},
	})
}
