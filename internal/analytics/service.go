// Package analytics emits anonymous usage events so we can tell which tools
// and batch features are actually used. It is best-effort: emission failures
// are logged at debug level and never surface to callers, and the whole
// package can be switched off with RISKSCOPE_TELEMETRY_DISABLED=true.
package analytics

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultEndpoint = "https://telemetry.fraudgraph.dev/v1/track"
	emitTimeout     = 3 * time.Second
)

// AnalyticsService implements Service against an HTTP collector.
type AnalyticsService struct {
	client      HTTPClient
	endpoint    string
	anonymousID string

	mu      sync.Mutex
	enabled bool
}

var _ Service = (*AnalyticsService)(nil)

// NewAnalyticsService builds a service with a fresh anonymous id. The id is
// random per process, so events from one run correlate without identifying
// the installation. Passing a nil client falls back to net/http with a short
// timeout.
func NewAnalyticsService(client HTTPClient) *AnalyticsService {
	if client == nil {
		client = &http.Client{Timeout: emitTimeout}
	}
	endpoint := os.Getenv("RISKSCOPE_TELEMETRY_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	s := &AnalyticsService{
		client:      client,
		endpoint:    endpoint,
		anonymousID: uuid.NewString(),
		enabled:     true,
	}
	if optedOut() {
		s.enabled = false
	}
	return s
}

func optedOut() bool {
	v := strings.ToLower(os.Getenv("RISKSCOPE_TELEMETRY_DISABLED"))
	return v == "true" || v == "1" || v == "yes"
}

// Disable stops all event emission until Enable is called.
func (s *AnalyticsService) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = false
}

// Enable resumes event emission.
func (s *AnalyticsService) Enable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = true
}

func (s *AnalyticsService) isEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// EmitEvent posts the event to the collector. Failures are swallowed; a
// telemetry outage must never affect an analysis run.
func (s *AnalyticsService) EmitEvent(event TrackEvent) {
	if !s.isEnabled() {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Debug("failed to encode analytics event", "event", event.Event, "error", err)
		return
	}
	resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		slog.Debug("failed to emit analytics event", "event", event.Event, "error", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		slog.Debug("analytics collector rejected event", "event", event.Event, "status", resp.StatusCode)
	}
}
