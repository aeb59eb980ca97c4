package neighborhood

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fraudgraph/riskscope/internal/analysis"
	"github.com/fraudgraph/riskscope/internal/explore"
	"github.com/fraudgraph/riskscope/internal/tools"
)

// Handler returns the tool handler function for uid neighborhood analysis
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleAnalyzeNeighborhood(ctx, request, deps)
	}
}

func handleAnalyzeNeighborhood(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("analyze-uid-neighborhood"))

	var args AnalyzeNeighborhoodInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if args.UIDKey == "" {
		errMessage := "uidKey parameter is required and cannot be empty"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	maxHops := args.MaxHops
	if maxHops == 0 {
		maxHops = deps.MaxHops
	}
	maxNodes := args.MaxNodes
	if maxNodes == 0 {
		maxNodes = deps.MaxNodes
	}

	slog.Info("analyzing uid neighborhood", "uidKey", args.UIDKey, "maxHops", maxHops)

	explorer, err := explore.NewExplorer(deps.DBService, maxHops, explore.WithMaxNodes(maxNodes))
	if err != nil {
		slog.Error("invalid exploration settings", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	analyzer := analysis.NewAnalyzer(explorer, deps.DBService)
	result, err := analyzer.AnalyzeUID(ctx, args.UIDKey)
	if err != nil {
		if errors.Is(err, explore.ErrSeedNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("uid %q not found in the graph", args.UIDKey)), nil
		}
		slog.Error("error analyzing uid neighborhood", "uidKey", args.UIDKey, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	response, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		slog.Error("error formatting analysis result", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(response)), nil
}
