//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/fraudgraph/riskscope/internal/analytics"
	"github.com/fraudgraph/riskscope/internal/model"
	"github.com/fraudgraph/riskscope/internal/scoring"
	"github.com/fraudgraph/riskscope/internal/scoring/profile"
	"github.com/fraudgraph/riskscope/internal/tools"
	"github.com/fraudgraph/riskscope/internal/tools/groups"
	"github.com/fraudgraph/riskscope/internal/tools/neighborhood"
	"github.com/fraudgraph/riskscope/internal/tools/risk"
)

func newToolDeps(t *testing.T) *tools.ToolDependencies {
	t.Helper()

	registry := profile.NewRegistry("../../profiles/config")
	require.NoError(t, registry.LoadProfiles())

	anService := analytics.NewAnalyticsService(nil)
	anService.Disable()

	return &tools.ToolDependencies{
		DBService:          svc,
		AnalyticsService:   anService,
		Profiles:           registry,
		MaxHops:            3,
		IsolationThreshold: 2,
		Workers:            2,
	}
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	result, err := handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestAnalyzeNeighborhoodTool(t *testing.T) {
	deps := newToolDeps(t)
	handler := neighborhood.Handler(deps)

	result := callTool(t, handler, map[string]any{"uidKey": "u_good1"})
	require.False(t, result.IsError)

	var analysis model.UIDNeighborhoodAnalysis
	require.NoError(t, json.Unmarshal([]byte(toolText(t, result)), &analysis))
	require.Equal(t, "u_good1", analysis.UIDKey)
	require.False(t, analysis.IsBlacklisted)
	require.Equal(t, 3, analysis.TotalAnomalyNodes())
	require.Equal(t, 1, analysis.HopAnalyses[2].StatsByType["blacklisted_uid"].Count)
}

func TestAnalyzeNeighborhoodToolUnknownUID(t *testing.T) {
	deps := newToolDeps(t)
	handler := neighborhood.Handler(deps)

	result := callTool(t, handler, map[string]any{"uidKey": "u_missing"})
	require.True(t, result.IsError)
	require.Contains(t, toolText(t, result), "not found")
}

func TestScoreRiskTool(t *testing.T) {
	deps := newToolDeps(t)
	handler := risk.Handler(deps)

	result := callTool(t, handler, map[string]any{"uidKey": "u_good1"})
	require.False(t, result.IsError)

	var response struct {
		UIDKey        string                 `json:"uid_key"`
		Profile       string                 `json:"profile"`
		Score         float64                `json:"score"`
		Contributions []scoring.Contribution `json:"contributions"`
	}
	require.NoError(t, json.Unmarshal([]byte(toolText(t, result)), &response))
	require.Equal(t, "default", response.Profile)
	require.Equal(t, 11.0, response.Score)
	require.Len(t, response.Contributions, 3)
}

func TestScoreRiskToolUnknownProfile(t *testing.T) {
	deps := newToolDeps(t)
	handler := risk.Handler(deps)

	result := callTool(t, handler, map[string]any{"uidKey": "u_good1", "profile": "nope"})
	require.True(t, result.IsError)
	require.Contains(t, toolText(t, result), "unknown scoring profile")
}

func TestAnalyzeGroupToolWithDiscovery(t *testing.T) {
	deps := newToolDeps(t)
	handler := groups.AnalyzeGroupHandler(deps)

	result := callTool(t, handler, map[string]any{"groupName": "all"})
	require.False(t, result.IsError)

	var response groups.GroupResponse
	require.NoError(t, json.Unmarshal([]byte(toolText(t, result)), &response))
	require.Equal(t, 4, response.Report.Requested)
	require.Equal(t, 4, response.Report.Analyzed)
	require.Equal(t, "all", response.Document.GroupName)
}

func TestCompareGroupsTool(t *testing.T) {
	deps := newToolDeps(t)
	handler := groups.CompareGroupsHandler(deps)

	result := callTool(t, handler, map[string]any{})
	require.False(t, result.IsError)

	var response groups.CompareResponse
	require.NoError(t, json.Unmarshal([]byte(toolText(t, result)), &response))
	require.Equal(t, 2, response.ReportA.Analyzed)
	require.Equal(t, 2, response.ReportB.Analyzed)

	hop1 := response.Document.Comparison.ByHop[0]
	require.True(t, hop1.Ratio.Defined)
	require.Equal(t, 2.0, hop1.Ratio.Value)
}
