package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fraudgraph/riskscope/internal/model"
	"github.com/fraudgraph/riskscope/internal/tools"
)

// LabelCount is one label's population in the snapshot.
type LabelCount struct {
	Label       model.NodeLabel `json:"label"`
	Total       int64           `json:"total"`
	Blacklisted int64           `json:"blacklisted,omitempty"`
}

// SnapshotSummary is the JSON document returned to the caller.
type SnapshotSummary struct {
	TotalNodes int64        `json:"total_nodes"`
	Labels     []LabelCount `json:"labels"`
}

// Handler returns the tool handler function for the snapshot summary
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSnapshotSummary(ctx, deps)
	}
}

func handleSnapshotSummary(ctx context.Context, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.AnalyticsService == nil {
		errMessage := "analytics service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if deps.DBService == nil {
		errMessage := "database service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("graph-snapshot-summary"))
	slog.Info("summarizing graph snapshot")

	summary := SnapshotSummary{Labels: make([]LabelCount, 0, len(model.AllLabels))}
	for _, label := range model.AllLabels {
		count, err := countLabel(ctx, deps, label)
		if err != nil {
			slog.Error("error counting label population", "label", label, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		summary.TotalNodes += count.Total
		summary.Labels = append(summary.Labels, count)
	}

	response, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		slog.Error("error formatting snapshot summary", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(response)), nil
}

// countLabel counts one label's nodes and, where the label can carry a
// status, its blacklisted subset. The label comes from the closed catalog,
// never from caller input, so splicing it into the query is safe.
func countLabel(ctx context.Context, deps *tools.ToolDependencies, label model.NodeLabel) (LabelCount, error) {
	query := fmt.Sprintf(
		"MATCH (n:%s) RETURN count(n) AS total, count(CASE WHEN n.status = $status THEN 1 END) AS blacklisted",
		label)

	records, err := deps.DBService.ExecuteReadQuery(ctx, query, map[string]any{
		"status": model.StatusBlacklisted,
	})
	if err != nil {
		return LabelCount{}, fmt.Errorf("count %s nodes: %w", label, err)
	}
	if len(records) == 0 {
		return LabelCount{Label: label}, nil
	}

	count := LabelCount{Label: label}
	if total, ok := records[0].Get("total"); ok {
		count.Total, _ = total.(int64)
	}
	if model.Blacklistable(label) {
		if blacklisted, ok := records[0].Get("blacklisted"); ok {
			count.Blacklisted, _ = blacklisted.(int64)
		}
	}
	return count, nil
}
