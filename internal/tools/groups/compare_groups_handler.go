package groups

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fraudgraph/riskscope/internal/batch"
	"github.com/fraudgraph/riskscope/internal/export"
	"github.com/fraudgraph/riskscope/internal/model"
	"github.com/fraudgraph/riskscope/internal/tools"
)

// CompareResponse pairs the comparison document with both run reports.
type CompareResponse struct {
	Document export.ComparisonDocument `json:"document"`
	ReportA  batch.Report              `json:"report_a"`
	ReportB  batch.Report              `json:"report_b"`
}

// CompareGroupsHandler returns the tool handler function for cross-group comparison
func CompareGroupsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCompareGroups(ctx, request, deps)
	}
}

func handleCompareGroups(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("compare-uid-groups"))

	var args CompareGroupsInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if args.GroupAName == "" {
		args.GroupAName = "blacklist"
	}
	if args.GroupBName == "" {
		args.GroupBName = "normal"
	}

	seedsA, seedsB, err := resolveComparisonSeeds(ctx, deps, args)
	if err != nil {
		slog.Error("error discovering comparison seeds", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(seedsA) == 0 || len(seedsB) == 0 {
		errMessage := fmt.Sprintf("both groups need seeds: %s has %d, %s has %d",
			args.GroupAName, len(seedsA), args.GroupBName, len(seedsB))
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	groupA, reportA, err := runGroup(ctx, deps, args.GroupAName, seedsA, args.SampleSize, args.MaxHops)
	if err != nil {
		slog.Error("group analysis aborted", "group", args.GroupAName, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	groupB, reportB, err := runGroup(ctx, deps, args.GroupBName, seedsB, args.SampleSize, args.MaxHops)
	if err != nil {
		slog.Error("group analysis aborted", "group", args.GroupBName, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc := export.BuildComparisonDocument(groupA, groupB, export.RunConfig{
		MaxHops:            maxHopsOrDefault(args.MaxHops, deps),
		IsolationThreshold: deps.IsolationThreshold,
	})

	response, err := json.MarshalIndent(CompareResponse{
		Document: doc,
		ReportA:  reportA,
		ReportB:  reportB,
	}, "", "  ")
	if err != nil {
		slog.Error("error formatting comparison document", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(response)), nil
}

// resolveComparisonSeeds returns the two seed sets, either from explicit key
// lists or by splitting store-discovered uids on blacklist status.
func resolveComparisonSeeds(ctx context.Context, deps *tools.ToolDependencies, args CompareGroupsInput) (seedsA, seedsB []model.Seed, err error) {
	if len(args.UIDKeysA) > 0 || len(args.UIDKeysB) > 0 {
		if len(args.UIDKeysA) == 0 || len(args.UIDKeysB) == 0 {
			return nil, nil, fmt.Errorf("uidKeysA and uidKeysB must be given together")
		}
		if seedsA, err = resolveSeeds(ctx, deps, args.UIDKeysA, 0); err != nil {
			return nil, nil, err
		}
		if seedsB, err = resolveSeeds(ctx, deps, args.UIDKeysB, 0); err != nil {
			return nil, nil, err
		}
		return seedsA, seedsB, nil
	}

	limit := args.Limit
	if limit <= 0 {
		limit = defaultDiscoveryLimit
	}
	discovered, err := deps.DBService.ListUIDs(ctx, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list uids: %w", err)
	}
	for _, seed := range discovered {
		if seed.IsBlacklisted {
			seedsA = append(seedsA, seed)
		} else {
			seedsB = append(seedsB, seed)
		}
	}
	return seedsA, seedsB, nil
}
