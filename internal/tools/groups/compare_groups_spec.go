package groups

import "github.com/mark3labs/mcp-go/mcp"

type CompareGroupsInput struct {
	GroupAName string   `json:"groupAName,omitempty" jsonschema:"default=blacklist,description=Name for the first group"`
	GroupBName string   `json:"groupBName,omitempty" jsonschema:"default=normal,description=Name for the second group"`
	UIDKeysA   []string `json:"uidKeysA,omitempty" jsonschema:"description=Explicit uid_keys for group A. When both key lists are omitted, seeds are discovered from the store and split by blacklist status."`
	UIDKeysB   []string `json:"uidKeysB,omitempty" jsonschema:"description=Explicit uid_keys for group B"`
	SampleSize int      `json:"sampleSize,omitempty" jsonschema:"description=Random sample cap applied to each group before analysis; 0 analyzes every seed"`
	Limit      int      `json:"limit,omitempty" jsonschema:"default=1000,description=Discovery cap when key lists are omitted"`
	MaxHops    int      `json:"maxHops,omitempty" jsonschema:"description=Hop bound per seed; defaults to the server configuration"`
}

// CompareGroupsSpec returns the MCP tool specification for cross-group comparison
func CompareGroupsSpec() mcp.Tool {
	return mcp.NewTool("compare-uid-groups",
		mcp.WithDescription(`Analyzes two groups of accounts and compares their average anomaly-node counts hop by hop.

The headline number is the per-hop ratio of group A's average over group B's: how many times denser the first group's suspicious neighborhoods are. The usual pairing is a confirmed-blacklist cohort against a normal cohort, which is also what the store-discovery mode produces (seeds split by blacklist status).

Ratios carry a defined flag: when the denominator group averages zero at a hop, the ratio is marked undefined instead of reporting an infinity.

**Returns** the per-hop comparison plus an overall ratio over the summed per-hop averages, with both groups' run reports.

**When to use this tool:**
- Validating that the weight profile separates known-bad from known-good accounts
- Quantifying the lift of neighborhood features before tuning weights`),
		mcp.WithInputSchema[CompareGroupsInput](),
		mcp.WithTitleAnnotation("Compare UID Groups"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
