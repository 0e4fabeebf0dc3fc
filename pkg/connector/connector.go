// Package connector is a Go client for the intake API: the server-side
// counterpart of the landing-page form connector. It checks health, submits
// contact, intake and catering forms, and can monitor or smoke-test a deployment.
package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/byword/intake-api/internal/model"
)

// DefaultTimeout bounds every request made by a Client.
const DefaultTimeout = 10 * time.Second

// APIError is returned for a non-2xx response or a body with success=false.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Detail != "" {
		return fmt.Sprintf("intake api: %d %s: %s", e.StatusCode, msg, e.Detail)
	}
	return fmt.Sprintf("intake api: %d %s", e.StatusCode, msg)
}

// ErrUnhealthy is returned by Health when the service answers with a status other than "healthy".
var ErrUnhealthy = errors.New("intake api: service reported unhealthy")

// Client talks to one deployment of the intake API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Client for the API rooted at baseURL (e.g. http://localhost:8080).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*model.HealthReport, error) {
	var report model.HealthReport
	if err := c.do(ctx, http.MethodGet, "/health", nil, &report); err != nil {
		return nil, err
	}
	if report.Status != "healthy" {
		return &report, ErrUnhealthy
	}
	return &report, nil
}

// Status calls GET /api/status.
func (c *Client) Status(ctx context.Context) (*model.ServiceStatus, error) {
	var status model.ServiceStatus
	if err := c.do(ctx, http.MethodGet, "/api/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// SubmitContact posts a contact form.
func (c *Client) SubmitContact(ctx context.Context, sub *model.ContactSubmission) (*model.ContactAck, error) {
	var ack model.ContactAck
	if err := c.submit(ctx, "/api/contact", sub, &ack.Success, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// SubmitIntake posts a legal intake form.
func (c *Client) SubmitIntake(ctx context.Context, sub model.Submission) (*model.IntakeAck, error) {
	var ack model.IntakeAck
	if err := c.submit(ctx, "/api/intake", sub, &ack.Success, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// SubmitCatering posts a catering inquiry.
func (c *Client) SubmitCatering(ctx context.Context, sub model.Submission) (*model.CateringAck, error) {
	var ack model.CateringAck
	if err := c.submit(ctx, "/api/catering", sub, &ack.Success, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// submit posts body and treats success=false in the decoded acknowledgment as a failure.
func (c *Client) submit(ctx context.Context, path string, body any, success *bool, out any) error {
	if body == nil {
		body = struct{}{}
	}
	if err := c.do(ctx, http.MethodPost, path, body, out); err != nil {
		return err
	}
	if !*success {
		return &APIError{StatusCode: http.StatusOK, Message: "submission not acknowledged"}
	}
	return nil
}

// apiFailure is the shape of the 404 and 500 payloads.
type apiFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// statusCode issues a bodiless request and returns only the response status.
func (c *Client) statusCode(ctx context.Context, method, path string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
	return resp.StatusCode, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var failure apiFailure
		if json.Unmarshal(data, &failure) == nil {
			apiErr.Message = failure.Message
			apiErr.Detail = failure.Error
		}
		return apiErr
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
