package risk

import "github.com/mark3labs/mcp-go/mcp"

type ScoreRiskInput struct {
	UIDKey  string `json:"uidKey" jsonschema:"description=The uid_key of the account to score"`
	Profile string `json:"profile,omitempty" jsonschema:"default=default,description=Name of the weight profile to score with. Profiles define hop depth and per-type weights."`
}

// Spec returns the MCP tool specification for uid risk scoring
func Spec() mcp.Tool {
	return mcp.NewTool("score-uid-risk",
		mcp.WithDescription(`Computes a weighted fraud-risk score for one account from its k-hop neighborhood.

Every suspicious node found around the seed contributes weight(hop, detailed_type) * multiplier, where the multiplier is 1 for blacklisted accounts and (associated_uid_count - 1) for shared artifacts. An account with no suspicious neighbors scores 0. Higher scores mean denser connections to blacklisted accounts and heavily shared artifacts.

The weight profile controls hop depth and the per-hop, per-type weights. List the built-in profiles with the server configuration, or ship your own YAML profile.

**Returns** the scalar score plus a per-node contribution breakdown so the score can be audited node by node.

**When to use this tool:**
- Ranking accounts for manual review
- Comparing an account against peers scored with the same profile
- Explaining which neighbors drive an account's score`),
		mcp.WithInputSchema[ScoreRiskInput](),
		mcp.WithTitleAnnotation("Score UID Risk"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
