package risk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fraudgraph/riskscope/internal/explore"
	"github.com/fraudgraph/riskscope/internal/scoring"
	"github.com/fraudgraph/riskscope/internal/scoring/profile"
	"github.com/fraudgraph/riskscope/internal/tools"
)

// ScoreResponse is the JSON document returned to the caller.
type ScoreResponse struct {
	UIDKey        string                 `json:"uid_key"`
	Profile       string                 `json:"profile"`
	Score         float64                `json:"score"`
	Contributions []scoring.Contribution `json:"contributions"`
}

// Handler returns the tool handler function for uid risk scoring
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleScoreRisk(ctx, request, deps)
	}
}

func handleScoreRisk(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
	if deps.Profiles == nil {
		errMessage := "scoring profile registry is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("score-uid-risk"))

	var args ScoreRiskInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if args.UIDKey == "" {
		errMessage := "uidKey parameter is required and cannot be empty"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	profileName := args.Profile
	if profileName == "" {
		profileName = profile.DefaultName
	}
	cfg, ok := deps.Profiles.Get(profileName)
	if !ok {
		errMessage := fmt.Sprintf("unknown scoring profile %q, available: %s",
			profileName, strings.Join(deps.Profiles.Names(), ", "))
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	slog.Info("scoring uid risk", "uidKey", args.UIDKey, "profile", cfg.Name, "maxHops", cfg.MaxHops)

	explorer, err := explore.NewExplorer(deps.DBService, cfg.MaxHops, explore.WithMaxNodes(deps.MaxNodes))
	if err != nil {
		slog.Error("invalid exploration settings", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	scorer, err := scoring.NewScorer(explorer, cfg.Table())
	if err != nil {
		slog.Error("invalid scoring profile", "profile", cfg.Name, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	score, contributions, err := scorer.ScoreWithBreakdown(ctx, args.UIDKey)
	if err != nil {
		if errors.Is(err, explore.ErrSeedNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("uid %q not found in the graph", args.UIDKey)), nil
		}
		slog.Error("error scoring uid", "uidKey", args.UIDKey, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	response, err := json.MarshalIndent(ScoreResponse{
		UIDKey:        args.UIDKey,
		Profile:       cfg.Name,
		Score:         score,
		Contributions: contributions,
	}, "", "  ")
	if err != nil {
		slog.Error("error formatting score result", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(response)), nil
}
