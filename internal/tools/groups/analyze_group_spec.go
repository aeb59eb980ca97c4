package groups

import "github.com/mark3labs/mcp-go/mcp"

type AnalyzeGroupInput struct {
	GroupName  string   `json:"groupName" jsonschema:"description=Name for the group in the output document (e.g. blacklist or chargeback-cluster)"`
	UIDKeys    []string `json:"uidKeys,omitempty" jsonschema:"description=Explicit uid_keys to analyze. When omitted, seeds are discovered from the store up to the discovery limit."`
	SampleSize int      `json:"sampleSize,omitempty" jsonschema:"description=Random sample cap applied before analysis; 0 analyzes every seed"`
	Limit      int      `json:"limit,omitempty" jsonschema:"default=1000,description=Discovery cap when uidKeys is omitted"`
	MaxHops    int      `json:"maxHops,omitempty" jsonschema:"description=Hop bound per seed; defaults to the server configuration"`
	Threshold  int      `json:"threshold,omitempty" jsonschema:"description=Isolated-blacklist threshold; defaults to the server configuration"`
}

// AnalyzeGroupSpec returns the MCP tool specification for group analysis
func AnalyzeGroupSpec() mcp.Tool {
	return mcp.NewTool("analyze-uid-group",
		mcp.WithDescription(`Runs the per-uid neighborhood analysis over a whole group of accounts concurrently and aggregates the findings into group-level statistics.

**Seeds** come either from the uidKeys parameter or, when omitted, from the store itself (every known uid up to the discovery limit). A random sample cap keeps large groups tractable.

**Returns** one JSON document containing:
- per-seed summary rows (uid_key, blacklist flag, anomaly totals per hop)
- average anomaly-node counts per hop across the group
- per-hop distributions of detailed-type counts and association magnitudes
- the isolated-blacklist view: blacklisted accounts whose total anomaly count is at or below the threshold, with summary stats over the rest
- a run report (requested/sampled/analyzed/failed/not-found counts)

Individual seed failures are skipped and counted; the document covers the surviving subset.

**When to use this tool:**
- Profiling a labeled fraud cohort against the graph
- Measuring how isolated confirmed-bad accounts are from each other
- Producing the inputs for compare-uid-groups`),
		mcp.WithInputSchema[AnalyzeGroupInput](),
		mcp.WithTitleAnnotation("Analyze UID Group"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
