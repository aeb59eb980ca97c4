package read

import "github.com/mark3labs/mcp-go/mcp"

type ReadCypherInput struct {
	Query  string         `json:"query" jsonschema:"default=MATCH(n) RETURN n,description=The Cypher query to execute"`
	Params map[string]any `json:"params,omitempty" jsonschema:"default={},description=Parameters to pass to the Cypher query"`
}

// ReadCypherSpec returns the MCP tool specification for ad-hoc read queries
func ReadCypherSpec() mcp.Tool {
	return mcp.NewTool("read-cypher",
		mcp.WithDescription(`Runs an ad-hoc read-only Cypher query against the shared-artifact graph snapshot. The escape hatch for questions the analysis tools do not answer: inspecting individual nodes, counting label populations, checking edge multiplicity. Queries are routed to reader instances; write clauses (CREATE, MERGE, DELETE, SET, ...) are rejected by the store.`),
		mcp.WithInputSchema[ReadCypherInput](),
		mcp.WithTitleAnnotation("Read Cypher"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
