package neighborhood

import "github.com/mark3labs/mcp-go/mcp"

type AnalyzeNeighborhoodInput struct {
	UIDKey   string `json:"uidKey" jsonschema:"description=The uid_key of the account to analyze"`
	MaxHops  int    `json:"maxHops,omitempty" jsonschema:"default=3,description=How many hops to explore around the seed (1 or more)"`
	MaxNodes int    `json:"maxNodes,omitempty" jsonschema:"description=Optional cap on visited nodes; the result is flagged truncated when hit"`
}

// Spec returns the MCP tool specification for per-uid neighborhood analysis
func Spec() mcp.Tool {
	return mcp.NewTool("analyze-uid-neighborhood",
		mcp.WithDescription(`Explores the k-hop neighborhood of one account (uid) in the shared-artifact graph and reports every suspicious node found, grouped by hop distance and detailed type.

Nodes are classified as:
- **blacklisted**: uid, phone_num or identity_no nodes carrying a blacklisted status
- **anomalous**: non-uid artifact nodes shared by more than one account
- **normal**: everything else (discarded from the report)

**Returns** a per-hop breakdown: for each hop 1..maxHops, the total anomaly-node count and per-detailed-type statistics (count plus the associated-uid-count magnitudes of the matching nodes). Hops with no findings are present and empty, so consumers can rely on the shape.

**When to use this tool:**
- Investigating why an account was flagged
- Checking whether a new account shares devices, cards or phone numbers with known-bad accounts
- Producing the per-seed evidence behind a risk score (see score-uid-risk)`),
		mcp.WithInputSchema[AnalyzeNeighborhoodInput](),
		mcp.WithTitleAnnotation("Analyze UID Neighborhood"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
