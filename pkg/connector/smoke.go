package connector

import (
	"context"
	"errors"
	"net/http"

	"github.com/byword/intake-api/internal/model"
)

// SmokeState classifies one smoke-test call.
type SmokeState string

const (
	SmokeWorking SmokeState = "working"
	SmokeIssue   SmokeState = "issue"
	SmokeError   SmokeState = "error"
)

// SmokeResult records the outcome of one endpoint in Smoke.
type SmokeResult struct {
	Method     string
	Path       string
	State      SmokeState
	StatusCode int
	Err        error
}

// SampleContact is the payload posted by Smoke.
var SampleContact = model.ContactSubmission{
	Name:        "Test User",
	Email:       "test@example.com",
	Company:     "Test Company",
	ServiceType: model.ServiceLegal,
	Message:     "Test inquiry",
}

// Smoke exercises GET /health, GET /api/status and POST /api/contact once each.
func (c *Client) Smoke(ctx context.Context) []SmokeResult {
	calls := []struct {
		method string
		path   string
		call   func() error
	}{
		{http.MethodGet, "/health", func() error { _, err := c.Health(ctx); return err }},
		{http.MethodGet, "/api/status", func() error { _, err := c.Status(ctx); return err }},
		{http.MethodPost, "/api/contact", func() error {
			sub := SampleContact
			_, err := c.SubmitContact(ctx, &sub)
			return err
		}},
	}

	results := make([]SmokeResult, 0, len(calls))
	for _, call := range calls {
		res := SmokeResult{Method: call.method, Path: call.path}
		err := call.call()
		var apiErr *APIError
		switch {
		case err == nil:
			res.State = SmokeWorking
			res.StatusCode = http.StatusOK
		case errors.As(err, &apiErr):
			res.State = SmokeIssue
			res.StatusCode = apiErr.StatusCode
			res.Err = err
		default:
			res.State = SmokeError
			res.Err = err
		}
		results = append(results, res)
	}
	return results
}

// AllWorking reports whether every smoke result succeeded.
func AllWorking(results []SmokeResult) bool {
	for _, r := range results {
		if r.State != SmokeWorking {
			return false
		}
	}
	return true
}
