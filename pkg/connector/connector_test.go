package connector

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byword/intake-api/internal/config"
	"github.com/byword/intake-api/internal/handler"
	"github.com/byword/intake-api/internal/model"
	"github.com/byword/intake-api/internal/service"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	svc := service.NewIntakeService(service.Options{Logger: logger})
	cfg := config.Config{Port: 8080, ServiceName: "byword-intake-api", Version: "1.0.0"}
	srv := httptest.NewServer(handler.NewRouter(handler.New(cfg, svc, logger, nil)))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Health(t *testing.T) {
	srv := newAPIServer(t)
	c := New(srv.URL + "/")

	report, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", report.Status)
	assert.Equal(t, "byword-intake-api", report.Service)
	assert.Equal(t, srv.URL, c.BaseURL())
}

func TestClient_Status(t *testing.T) {
	srv := newAPIServer(t)
	c := New(srv.URL)

	status, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "operational", status.Status)
	assert.Equal(t, "1.0.0", status.Version)
	assert.GreaterOrEqual(t, status.Uptime, 0.0)
}

func TestClient_SubmitContact(t *testing.T) {
	srv := newAPIServer(t)
	c := New(srv.URL)

	ack, err := c.SubmitContact(context.Background(), &model.ContactSubmission{
		Name:        "Dana",
		Email:       "dana@example.com",
		ServiceType: "catering",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^BWM_\d+$`, ack.ContactID)
	assert.Equal(t, "6 hours", ack.EstimatedResponseTime)
}

func TestClient_SubmitIntakeAndCatering(t *testing.T) {
	srv := newAPIServer(t)
	c := New(srv.URL)

	intake, err := c.SubmitIntake(context.Background(), model.Submission{"matter": "contract review"})
	require.NoError(t, err)
	assert.Regexp(t, `^LEGAL_\d+$`, intake.CaseID)
	assert.Equal(t, "pending_review", intake.Status)

	catering, err := c.SubmitCatering(context.Background(), nil)
	require.NoError(t, err)
	assert.Regexp(t, `^CATERING_\d+$`, catering.InquiryID)
	assert.Equal(t, "pending_quote", catering.Status)
}

func TestClient_NotFoundIsAPIError(t *testing.T) {
	srv := newAPIServer(t)
	c := New(srv.URL + "/v2")

	_, err := c.Status(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "got %v", err)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Endpoint not found", apiErr.Message)
}

func TestClient_ServerErrorCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"success":false,"message":"Internal server error","error":"boom"}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL).SubmitIntake(context.Background(), model.Submission{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Detail)
	assert.Contains(t, apiErr.Error(), "500 Internal server error: boom")
}

func TestClient_SuccessFalseIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":false,"message":"rejected"}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL).SubmitContact(context.Background(), &model.ContactSubmission{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
}

func TestClient_Unhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":"degraded"}`)
	}))
	defer srv.Close()

	report, err := New(srv.URL).Health(context.Background())
	assert.ErrorIs(t, err, ErrUnhealthy)
	require.NotNil(t, report)
	assert.Equal(t, "degraded", report.Status)
}

func TestProbe_States(t *testing.T) {
	srv := newAPIServer(t)
	p := New(srv.URL).Probe(context.Background())
	assert.Equal(t, ProbeHealthy, p.State)
	assert.Equal(t, "service healthy", p.String())

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer failing.Close()
	p = New(failing.URL).Probe(context.Background())
	assert.Equal(t, ProbeIssue, p.State)
	assert.Equal(t, http.StatusServiceUnavailable, p.StatusCode)
	assert.Equal(t, "service issue: 503", p.String())

	closed := httptest.NewServer(http.NotFoundHandler())
	url := closed.URL
	closed.Close()
	p = New(url).Probe(context.Background())
	assert.Equal(t, ProbeDown, p.State)
	assert.Error(t, p.Err)
}

func TestProbe_ClassifiesOnStatusCode(t *testing.T) {
	plain := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "OK")
	}))
	defer plain.Close()

	p := New(plain.URL).Probe(context.Background())
	assert.Equal(t, ProbeHealthy, p.State)
	assert.Equal(t, http.StatusOK, p.StatusCode)
	assert.NoError(t, p.Err)

	degraded := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":"degraded"}`)
	}))
	defer degraded.Close()

	p = New(degraded.URL).Probe(context.Background())
	assert.Equal(t, ProbeHealthy, p.State)
}

func TestMonitor_ReportsUntilCanceled(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = io.WriteString(w, `{"status":"healthy"}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var probes []Probe
	err := New(srv.URL).Monitor(ctx, 5*time.Millisecond, func(p Probe) {
		probes = append(probes, p)
		if len(probes) == 3 {
			cancel()
		}
	})

	require.NoError(t, err)
	assert.Len(t, probes, 3)
	assert.Equal(t, int32(3), hits.Load())
	for _, p := range probes {
		assert.Equal(t, ProbeHealthy, p.State)
	}
}

func TestSmoke_AllWorking(t *testing.T) {
	srv := newAPIServer(t)

	results := New(srv.URL).Smoke(context.Background())

	require.Len(t, results, 3)
	assert.True(t, AllWorking(results))
	assert.Equal(t, "/health", results[0].Path)
	assert.Equal(t, "/api/status", results[1].Path)
	assert.Equal(t, http.MethodPost, results[2].Method)
}

func TestSmoke_ReportsIssues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			_, _ = io.WriteString(w, `{"status":"healthy"}`)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	results := New(srv.URL).Smoke(context.Background())

	require.Len(t, results, 3)
	assert.False(t, AllWorking(results))
	assert.Equal(t, SmokeWorking, results[0].State)
	assert.Equal(t, SmokeIssue, results[1].State)
	assert.Equal(t, http.StatusBadGateway, results[2].StatusCode)
}
