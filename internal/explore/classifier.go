package explore

import "github.com/fraudgraph/riskscope/internal/model"

// Classify maps one node's attribute snapshot to its classification.
// Rule order matters:
//
//  1. Blacklistable labels (uid, phone_num, identity_no) with a blacklisted
//     status are authoritatively blacklisted.
//  2. Any non-uid node shared by more than one distinct uid is anomalous.
//  3. Everything else is normal.
//
// The associated-uid count is a density signal over artifact nodes and by
// definition never applies to uid nodes themselves, so a uid is never
// classified anomalous. Pure function of its inputs.
func Classify(label model.NodeLabel, status string, associatedUIDCount int) model.NodeType {
	if model.Blacklistable(label) && status == model.StatusBlacklisted {
		return model.NodeTypeBlacklisted
	}
	if label != model.LabelUID && associatedUIDCount > 1 {
		return model.NodeTypeAnomalous
	}
	return model.NodeTypeNormal
}
