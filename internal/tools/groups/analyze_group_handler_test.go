package groups_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/mock/gomock"

	analytics "github.com/fraudgraph/riskscope/internal/analytics/mocks"
	db "github.com/fraudgraph/riskscope/internal/database/mocks"
	"github.com/fraudgraph/riskscope/internal/model"
	"github.com/fraudgraph/riskscope/internal/tools"
	"github.com/fraudgraph/riskscope/internal/tools/groups"
)

func newRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("expected result content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func newAnalyticsMock(ctrl *gomock.Controller) *analytics.MockService {
	service := analytics.NewMockService(ctrl)
	service.EXPECT().NewToolsEvent(gomock.Any()).AnyTimes()
	service.EXPECT().NewBatchRunEvent(gomock.Any()).AnyTimes()
	service.EXPECT().EmitEvent(gomock.Any()).AnyTimes()
	return service
}

// expectSeedAnalysis wires the store calls one full seed analysis makes: two
// uid lookups and a neighbor expansion per visited node within the hop bound.
func expectSeedAnalysis(mockDB *db.MockService, uidKey string, blacklisted bool, neighbors []model.NodeAttributes) {
	mockDB.EXPECT().LookupUID(gomock.Any(), uidKey).Return(true, blacklisted, nil).Times(2)
	mockDB.EXPECT().NodeNeighbors(gomock.Any(), model.LabelUID, uidKey).Return(neighbors, nil)
	for _, nb := range neighbors {
		mockDB.EXPECT().NodeNeighbors(gomock.Any(), nb.Label, nb.Key).Return(nil, nil).AnyTimes()
	}
}

func TestAnalyzeGroupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := newAnalyticsMock(ctrl)

	t.Run("explicit seed list", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		expectSeedAnalysis(mockDB, "u1", true, []model.NodeAttributes{
			{Label: model.LabelCardNo, Key: "c1", AssociatedUIDCount: 4},
		})
		expectSeedAnalysis(mockDB, "u2", false, nil)

		deps := &tools.ToolDependencies{
			DBService:          mockDB,
			AnalyticsService:   analyticsService,
			MaxHops:            2,
			IsolationThreshold: 2,
			Workers:            2,
		}

		handler := groups.AnalyzeGroupHandler(deps)
		result, err := handler(context.Background(), newRequest(map[string]any{
			"groupName": "review-queue",
			"uidKeys":   []string{"u1", "u2"},
		}))

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if result.IsError {
			t.Fatalf("expected success result, got error: %s", resultText(t, result))
		}

		var response groups.GroupResponse
		if err := json.Unmarshal([]byte(resultText(t, result)), &response); err != nil {
			t.Fatalf("response is not valid JSON: %v", err)
		}
		if response.Document.GroupName != "review-queue" {
			t.Errorf("expected group name review-queue, got %s", response.Document.GroupName)
		}
		if response.Document.UIDCount != 2 {
			t.Errorf("expected 2 analyzed uids, got %d", response.Document.UIDCount)
		}
		if response.Report.Analyzed != 2 {
			t.Errorf("expected 2 analyzed in report, got %d", response.Report.Analyzed)
		}
		// u1 has one anomalous card, total 1 <= threshold 2: isolated.
		if response.Document.IsolatedBlacklist.IsolatedCount != 1 {
			t.Errorf("expected 1 isolated blacklisted uid, got %d", response.Document.IsolatedBlacklist.IsolatedCount)
		}
	})

	t.Run("store discovery when uidKeys omitted", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().ListUIDs(gomock.Any(), 10).
			Return([]model.Seed{{UIDKey: "u9", IsBlacklisted: false}}, nil)
		expectSeedAnalysis(mockDB, "u9", false, nil)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
			MaxHops:          2,
			Workers:          1,
		}

		handler := groups.AnalyzeGroupHandler(deps)
		result, err := handler(context.Background(), newRequest(map[string]any{
			"groupName": "all",
			"limit":     10,
		}))

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if result.IsError {
			t.Fatalf("expected success result, got error: %s", resultText(t, result))
		}
	})

	t.Run("empty group name rejected", func(t *testing.T) {
		deps := &tools.ToolDependencies{
			DBService:        db.NewMockService(ctrl),
			AnalyticsService: analyticsService,
			MaxHops:          2,
		}

		handler := groups.AnalyzeGroupHandler(deps)
		result, err := handler(context.Background(), newRequest(map[string]any{}))

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if !result.IsError {
			t.Fatal("expected tool error for missing group name")
		}
	})

	t.Run("no seeds is a tool error", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().ListUIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			AnalyticsService: analyticsService,
			MaxHops:          2,
		}

		handler := groups.AnalyzeGroupHandler(deps)
		result, err := handler(context.Background(), newRequest(map[string]any{"groupName": "empty"}))

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if !result.IsError {
			t.Fatal("expected tool error when no seeds are available")
		}
		if !strings.Contains(resultText(t, result), "no seeds") {
			t.Errorf("expected no-seeds message, got: %s", resultText(t, result))
		}
	})
}
