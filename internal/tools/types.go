package tools

import (
	"github.com/fraudgraph/riskscope/internal/analytics"
	"github.com/fraudgraph/riskscope/internal/database"
	"github.com/fraudgraph/riskscope/internal/scoring/profile"
)

// ToolDependencies contains all dependencies needed by tools
type ToolDependencies struct {
	DBService        database.Service
	AnalyticsService analytics.Service
	Profiles         *profile.Registry

	// Engine defaults applied when a request does not override them.
	MaxHops            int
	IsolationThreshold int
	MaxNodes           int
	Workers            int
}
