package connector

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// DefaultMonitorInterval is the pause between health probes.
const DefaultMonitorInterval = time.Minute

// ProbeState classifies one health probe.
type ProbeState string

const (
	ProbeHealthy ProbeState = "healthy"
	ProbeIssue   ProbeState = "issue"
	ProbeDown    ProbeState = "down"
)

// Probe is the outcome of a single GET /health.
type Probe struct {
	At         time.Time
	State      ProbeState
	StatusCode int
	Err        error
}

func (p Probe) String() string {
	switch p.State {
	case ProbeHealthy:
		return "service healthy"
	case ProbeIssue:
		return fmt.Sprintf("service issue: %d", p.StatusCode)
	default:
		return fmt.Sprintf("service down: %v", p.Err)
	}
}

// Probe performs one health check. Only the status code is classified: a 200
// is healthy whatever the body says, any other status is an issue, and a
// transport error means the service is down.
func (c *Client) Probe(ctx context.Context) Probe {
	p := Probe{At: time.Now()}
	code, err := c.statusCode(ctx, http.MethodGet, "/health")
	switch {
	case err != nil:
		p.State = ProbeDown
		p.Err = err
	case code == http.StatusOK:
		p.State = ProbeHealthy
		p.StatusCode = code
	default:
		p.State = ProbeIssue
		p.StatusCode = code
		p.Err = &APIError{StatusCode: code}
	}
	return p
}

// Monitor probes health immediately and then every interval, passing each
// result to report, until ctx is done.
func (c *Client) Monitor(ctx context.Context, interval time.Duration, report func(Probe)) error {
	if interval <= 0 {
		interval = DefaultMonitorInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		report(c.Probe(ctx))
		if ctx.Err() != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
