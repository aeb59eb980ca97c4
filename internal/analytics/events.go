package analytics

import "time"

// TrackEvent is the wire shape accepted by the usage collector. Properties
// never include uid keys or any other graph data, only coarse run metadata.
type TrackEvent struct {
	Event      string         `json:"event"`
	UserID     string         `json:"user_id"`
	Timestamp  string         `json:"timestamp"`
	Properties map[string]any `json:"properties,omitempty"`
}

// StartupEventInfo captures how the server was launched.
type StartupEventInfo struct {
	Version   string
	Transport string
	ReadOnly  bool
}

// BatchRunEventInfo captures the shape of a group analysis run, not its
// contents.
type BatchRunEventInfo struct {
	GroupName string
	SeedCount int
	Sampled   int
	Workers   int
}

func (s *AnalyticsService) newEvent(name string, properties map[string]any) TrackEvent {
	return TrackEvent{
		Event:      name,
		UserID:     s.anonymousID,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Properties: properties,
	}
}

// NewStartupEvent builds the event emitted once when the server boots.
func (s *AnalyticsService) NewStartupEvent(info StartupEventInfo) TrackEvent {
	return s.newEvent("riskscope-startup", map[string]any{
		"version":   info.Version,
		"transport": info.Transport,
		"read_only": info.ReadOnly,
	})
}

// NewToolsEvent builds the event emitted when an MCP tool is invoked.
func (s *AnalyticsService) NewToolsEvent(toolsUsed string) TrackEvent {
	return s.newEvent("riskscope-tool-used", map[string]any{
		"tool": toolsUsed,
	})
}

// NewBatchRunEvent builds the event emitted after a group analysis run.
func (s *AnalyticsService) NewBatchRunEvent(info BatchRunEventInfo) TrackEvent {
	return s.newEvent("riskscope-batch-run", map[string]any{
		"group":      info.GroupName,
		"seed_count": info.SeedCount,
		"sampled":    info.Sampled,
		"workers":    info.Workers,
	})
}
