package groups

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fraudgraph/riskscope/internal/analysis"
	"github.com/fraudgraph/riskscope/internal/analytics"
	"github.com/fraudgraph/riskscope/internal/batch"
	"github.com/fraudgraph/riskscope/internal/explore"
	"github.com/fraudgraph/riskscope/internal/export"
	"github.com/fraudgraph/riskscope/internal/model"
	"github.com/fraudgraph/riskscope/internal/tools"
)

// defaultDiscoveryLimit caps store-discovered seeds when the caller gives
// neither explicit keys nor a limit.
const defaultDiscoveryLimit = 1000

// GroupResponse pairs the exported document with the run report.
type GroupResponse struct {
	Document export.GroupDocument `json:"document"`
	Report   batch.Report         `json:"report"`
}

// AnalyzeGroupHandler returns the tool handler function for group analysis
func AnalyzeGroupHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleAnalyzeGroup(ctx, request, deps)
	}
}

func handleAnalyzeGroup(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("analyze-uid-group"))

	var args AnalyzeGroupInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if args.GroupName == "" {
		errMessage := "groupName parameter is required and cannot be empty"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	seeds, err := resolveSeeds(ctx, deps, args.UIDKeys, args.Limit)
	if err != nil {
		slog.Error("error discovering group seeds", "group", args.GroupName, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(seeds) == 0 {
		errMessage := "no seeds to analyze: pass uidKeys or load uid nodes into the store"
		slog.Error(errMessage, "group", args.GroupName)
		return mcp.NewToolResultError(errMessage), nil
	}

	group, report, err := runGroup(ctx, deps, args.GroupName, seeds, args.SampleSize, args.MaxHops)
	if err != nil {
		slog.Error("group analysis aborted", "group", args.GroupName, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	threshold := args.Threshold
	if threshold == 0 {
		threshold = deps.IsolationThreshold
	}
	doc := export.BuildGroupDocument(group, export.RunConfig{
		MaxHops:            maxHopsOrDefault(args.MaxHops, deps),
		IsolationThreshold: threshold,
	})

	response, err := json.MarshalIndent(GroupResponse{Document: doc, Report: report}, "", "  ")
	if err != nil {
		slog.Error("error formatting group document", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(response)), nil
}

func maxHopsOrDefault(maxHops int, deps *tools.ToolDependencies) int {
	if maxHops > 0 {
		return maxHops
	}
	return deps.MaxHops
}

// resolveSeeds turns explicit uid keys into seeds, or discovers seeds from
// the store when none were given.
func resolveSeeds(ctx context.Context, deps *tools.ToolDependencies, uidKeys []string, limit int) ([]model.Seed, error) {
	if len(uidKeys) > 0 {
		seeds := make([]model.Seed, 0, len(uidKeys))
		for _, key := range uidKeys {
			if key == "" {
				return nil, fmt.Errorf("uidKeys must not contain empty keys")
			}
			seeds = append(seeds, model.Seed{UIDKey: key})
		}
		return seeds, nil
	}

	if limit <= 0 {
		limit = defaultDiscoveryLimit
	}
	seeds, err := deps.DBService.ListUIDs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list uids: %w", err)
	}
	return seeds, nil
}

// runGroup builds the engine for one batch run and executes it, emitting
// the batch analytics event on completion.
func runGroup(ctx context.Context, deps *tools.ToolDependencies, groupName string, seeds []model.Seed, sampleSize, maxHops int) (model.GroupAnalysisResult, batch.Report, error) {
	explorer, err := explore.NewExplorer(deps.DBService, maxHopsOrDefault(maxHops, deps), explore.WithMaxNodes(deps.MaxNodes))
	if err != nil {
		return model.GroupAnalysisResult{}, batch.Report{}, err
	}
	runner := batch.NewRunner(analysis.NewAnalyzer(explorer, deps.DBService), deps.Workers)

	group, report, err := runner.AnalyzeGroup(ctx, groupName, seeds, sampleSize)
	if err != nil {
		return model.GroupAnalysisResult{}, report, err
	}

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewBatchRunEvent(analytics.BatchRunEventInfo{
		GroupName: groupName,
		SeedCount: report.Requested,
		Sampled:   report.Sampled,
		Workers:   deps.Workers,
	}))
	return group, report, nil
}
