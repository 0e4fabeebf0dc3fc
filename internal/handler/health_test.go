package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byword/intake-api/internal/model"
)

func TestHealth_OK(t *testing.T) {
	h := newTestHandler(&mockIntakeService{})
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var resp model.HealthReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, 8080, resp.Port)
	assert.Equal(t, "byword-intake-api", resp.Service)
	assert.Equal(t, "2026-10-19T08:15:30.123Z", resp.Timestamp)
}

func TestRoot_ListsEndpoints(t *testing.T) {
	h := newTestHandler(&mockIntakeService{})
	rec := httptest.NewRecorder()

	h.Root(rec, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp rootResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Message)
	assert.Equal(t, 8080, resp.Port)
	assert.Equal(t, "/health", resp.Endpoints.Health)
	assert.Equal(t, "/api/status", resp.Endpoints.Status)
	assert.Equal(t, "/api/contact", resp.Endpoints.Contact)
	assert.Equal(t, "/api/intake", resp.Endpoints.Intake)
	assert.Equal(t, "/api/catering", resp.Endpoints.Catering)
}

func TestStatus_Operational(t *testing.T) {
	h := newTestHandler(&mockIntakeService{})
	h.started = testNow.Add(-90 * time.Second)
	rec := httptest.NewRecorder()

	h.Status(rec, httptest.NewRequest("GET", "/api/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.ServiceStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "byword-intake-api", resp.Service)
	assert.Equal(t, "operational", resp.Status)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, 90.0, resp.Uptime)
	assert.Equal(t, "2026-10-19T08:15:30.123Z", resp.Timestamp)
	assert.Equal(t, []string{"health", "status", "contact", "intake", "catering"}, resp.EndpointsAvailable)
}
