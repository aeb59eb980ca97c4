package snapshot

import "github.com/mark3labs/mcp-go/mcp"

type SnapshotSummaryInput struct{}

// Spec returns the MCP tool specification for the snapshot summary
func Spec() mcp.Tool {
	return mcp.NewTool("graph-snapshot-summary",
		mcp.WithDescription(`Reports the size and composition of the loaded graph snapshot.

Counts the nodes behind each label in the identity-artifact catalog (uid, phone_num, identity_no, card_no, device_no, td_device_id, remote_ip, geo_code), and for the labels that can carry a blacklist status, how many are blacklisted.

**Returns** per-label totals, blacklisted counts, and the overall node count.

**When to use this tool:**
- Sanity-checking a freshly loaded snapshot before running analyses
- Sizing a group analysis (how many uids exist, how many are blacklisted)
- Spotting empty or missing label populations`),
		mcp.WithInputSchema[SnapshotSummaryInput](),
		mcp.WithTitleAnnotation("Graph Snapshot Summary"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
