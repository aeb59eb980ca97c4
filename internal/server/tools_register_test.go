package server

import (
	"testing"

	"go.uber.org/mock/gomock"

	analytics_mocks "github.com/fraudgraph/riskscope/internal/analytics/mocks"
	"github.com/fraudgraph/riskscope/internal/config"
	database_mocks "github.com/fraudgraph/riskscope/internal/database/mocks"
	"github.com/fraudgraph/riskscope/internal/scoring/profile"
	"github.com/fraudgraph/riskscope/internal/tools"
)

func newTestServer(ctrl *gomock.Controller, readOnly bool) *RiskMCPServer {
	return &RiskMCPServer{
		config: &config.Config{
			ReadOnly:           readOnly,
			MaxHops:            config.DefaultMaxHops,
			IsolationThreshold: config.DefaultThreshold,
			MaxNodes:           config.DefaultMaxNodes,
			Workers:            config.DefaultWorkers,
		},
		dbService: database_mocks.NewMockService(ctrl),
		anService: analytics_mocks.NewMockService(ctrl),
		profiles:  profile.NewRegistry("profiles/config"),
	}
}

func TestAnalysisToolsAreExposed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := newTestServer(ctrl, false)
	deps := &tools.ToolDependencies{
		DBService:        server.dbService,
		AnalyticsService: server.anService,
		Profiles:         server.profiles,
	}
	toolDefs := server.getAllToolsDefs(deps)

	if len(toolDefs) == 0 {
		t.Fatal("No tools found")
	}

	expectedTools := map[string]bool{
		"analyze-uid-neighborhood": false,
		"score-uid-risk":           false,
		"analyze-uid-group":        false,
		"compare-uid-groups":       false,
		"read-cypher":              false,
		"graph-snapshot-summary":   false,
	}

	for _, toolDef := range toolDefs {
		name := toolDef.definition.Tool.Name
		if _, exists := expectedTools[name]; exists {
			expectedTools[name] = true
		}
	}

	for toolName, found := range expectedTools {
		if !found {
			t.Errorf("Expected tool not found: %s", toolName)
		}
	}
}

func TestToolsHaveCorrectStructure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := newTestServer(ctrl, false)
	deps := &tools.ToolDependencies{
		DBService:        server.dbService,
		AnalyticsService: server.anService,
		Profiles:         server.profiles,
	}

	for _, toolDef := range server.getAllToolsDefs(deps) {
		tool := toolDef.definition.Tool
		t.Logf("Checking tool: %s", tool.Name)

		if tool.Name == "" {
			t.Errorf("Tool has empty name")
		}
		if tool.Description == "" {
			t.Errorf("Tool %s has empty description", tool.Name)
		}
		if toolDef.definition.Handler == nil {
			t.Errorf("Tool %s has nil handler", tool.Name)
		}
		// The analysis surface is read-only end to end.
		if !toolDef.readonly {
			t.Errorf("Tool %s is not marked as readonly", tool.Name)
		}
	}
}

func TestReadOnlyModeKeepsFullSurface(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	open := newTestServer(ctrl, false)
	restricted := newTestServer(ctrl, true)

	if got, want := len(restricted.getEnabledTools()), len(open.getEnabledTools()); got != want {
		t.Errorf("read-only mode dropped tools: got %d, want %d", got, want)
	}
}
