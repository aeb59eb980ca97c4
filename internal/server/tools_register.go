package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/fraudgraph/riskscope/internal/tools"
	"github.com/fraudgraph/riskscope/internal/tools/cypher/read"
	"github.com/fraudgraph/riskscope/internal/tools/groups"
	"github.com/fraudgraph/riskscope/internal/tools/neighborhood"
	"github.com/fraudgraph/riskscope/internal/tools/risk"
	"github.com/fraudgraph/riskscope/internal/tools/snapshot"
)

// registerTools registers all enabled MCP tools and adds them to the provided MCP server.
// Tools are filtered according to the server configuration. When read-only mode is enabled
// (e.g. via the NEO4J_READ_ONLY environment variable or the Config.ReadOnly flag), any tool
// that performs state mutation will be excluded; only tools annotated as read-only will be
// registered. The analysis surface is read-only throughout, so today the filter changes
// nothing, but the mechanism stays in place for tools added later.
func (s *RiskMCPServer) registerTools() error {
	filteredTools := s.getEnabledTools()
	s.MCPServer.AddTools(filteredTools...)
	return nil
}

type toolFilter func(tools []ToolDefinition) []ToolDefinition

type toolCategory int

const (
	analysisCategory toolCategory = 0 // per-seed neighborhood analysis
	scoringCategory  toolCategory = 1
	groupCategory    toolCategory = 2
	cypherCategory   toolCategory = 3 // ad-hoc query escape hatch
)

type ToolDefinition struct {
	category   toolCategory
	definition server.ServerTool
	readonly   bool
}

func (s *RiskMCPServer) getEnabledTools() []server.ServerTool {
	filters := make([]toolFilter, 0)

	// If read-only mode is enabled, expose only tools annotated as read-only.
	if s.config != nil && s.config.ReadOnly {
		filters = append(filters, filterWriteTools)
	}
	deps := &tools.ToolDependencies{
		DBService:          s.dbService,
		AnalyticsService:   s.anService,
		Profiles:           s.profiles,
		MaxHops:            s.config.MaxHops,
		IsolationThreshold: s.config.IsolationThreshold,
		MaxNodes:           s.config.MaxNodes,
		Workers:            s.config.Workers,
	}
	toolDefs := s.getAllToolsDefs(deps)

	for _, filter := range filters {
		toolDefs = filter(toolDefs)
	}
	enabledTools := make([]server.ServerTool, 0)
	for _, toolDef := range toolDefs {
		enabledTools = append(enabledTools, toolDef.definition)
	}
	return enabledTools
}

func filterWriteTools(tools []ToolDefinition) []ToolDefinition {
	readOnlyTools := make([]ToolDefinition, 0, len(tools))
	for _, t := range tools {
		if t.readonly {
			readOnlyTools = append(readOnlyTools, t)
		}
	}
	return readOnlyTools
}

// getAllToolsDefs returns all available tools with their specs and handlers
func (s *RiskMCPServer) getAllToolsDefs(deps *tools.ToolDependencies) []ToolDefinition {
	return []ToolDefinition{
		{
			category: analysisCategory,
			definition: server.ServerTool{
				Tool:    neighborhood.Spec(),
				Handler: neighborhood.Handler(deps),
			},
			readonly: true,
		},
		{
			category: scoringCategory,
			definition: server.ServerTool{
				Tool:    risk.Spec(),
				Handler: risk.Handler(deps),
			},
			readonly: true,
		},
		{
			category: groupCategory,
			definition: server.ServerTool{
				Tool:    groups.AnalyzeGroupSpec(),
				Handler: groups.AnalyzeGroupHandler(deps),
			},
			readonly: true,
		},
		{
			category: groupCategory,
			definition: server.ServerTool{
				Tool:    groups.CompareGroupsSpec(),
				Handler: groups.CompareGroupsHandler(deps),
			},
			readonly: true,
		},
		{
			category: cypherCategory,
			definition: server.ServerTool{
				Tool:    read.ReadCypherSpec(),
				Handler: read.ReadCypherHandler(deps),
			},
			readonly: true,
		},
		{
			category: cypherCategory,
			definition: server.ServerTool{
				Tool:    snapshot.Spec(),
				Handler: snapshot.Handler(deps),
			},
			readonly: true,
		},
	}
}
