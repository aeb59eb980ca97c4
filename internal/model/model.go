// Package model holds the shared data model for neighborhood risk analysis:
// the closed node-label catalog, node classifications, and the per-seed and
// per-group analysis results every other package operates on.
package model

import "fmt"

// NodeLabel identifies one of the closed set of identity-artifact node types
// in the shared-artifact graph.
type NodeLabel string

const (
	LabelUID        NodeLabel = "uid"
	LabelPhoneNum   NodeLabel = "phone_num"
	LabelIdentityNo NodeLabel = "identity_no"
	LabelCardNo     NodeLabel = "card_no"
	LabelDeviceNo   NodeLabel = "device_no"
	LabelTDDeviceID NodeLabel = "td_device_id"
	LabelRemoteIP   NodeLabel = "remote_ip"
	LabelGeoCode    NodeLabel = "geo_code"
)

// AllLabels is the closed catalog of node labels. Nodes carrying any other
// label are treated as malformed and skipped during traversal.
var AllLabels = []NodeLabel{
	LabelUID,
	LabelPhoneNum,
	LabelIdentityNo,
	LabelCardNo,
	LabelDeviceNo,
	LabelTDDeviceID,
	LabelRemoteIP,
	LabelGeoCode,
}

// BlacklistableLabels are the node types that can carry an authoritative
// blacklisted status.
var BlacklistableLabels = []NodeLabel{
	LabelUID,
	LabelPhoneNum,
	LabelIdentityNo,
}

// StatusBlacklisted is the status property value marking a node as
// externally blacklisted. Any other value (or absence) means not blacklisted.
const StatusBlacklisted = "blacklisted"

// KnownLabel reports whether label belongs to the closed catalog.
func KnownLabel(label NodeLabel) bool {
	for _, l := range AllLabels {
		if l == label {
			return true
		}
	}
	return false
}

// Blacklistable reports whether nodes with this label can carry a
// blacklisted status.
func Blacklistable(label NodeLabel) bool {
	for _, l := range BlacklistableLabels {
		if l == label {
			return true
		}
	}
	return false
}

// NodeType is the classification assigned to a node encountered during
// neighborhood exploration.
type NodeType string

const (
	NodeTypeBlacklisted NodeType = "blacklisted"
	NodeTypeAnomalous   NodeType = "anomalous"
	NodeTypeNormal      NodeType = "normal"
)

// DetailedType combines a classification with a node label, e.g.
// "blacklisted_uid" or "anomalous_phone_num". It is the grouping and
// weighting key for all downstream aggregation.
func DetailedType(nodeType NodeType, label NodeLabel) string {
	return string(nodeType) + "_" + string(label)
}

// NodeKey builds the dedup key for a node: label plus normalized key.
func NodeKey(label NodeLabel, key string) string {
	return fmt.Sprintf("%s_%s", label, key)
}

// NodeAttributes is the read-only attribute snapshot of one graph node as
// served by the store: everything classification needs, nothing more.
type NodeAttributes struct {
	Label              NodeLabel `json:"label"`
	Key                string    `json:"key"`
	Status             string    `json:"status,omitempty"`
	AssociatedUIDCount int       `json:"associated_uid_count"`
}

// AnomalyNode is a classified suspicious node found within a seed's k-hop
// neighborhood. Normal nodes are discarded before this point.
type AnomalyNode struct {
	NodeType           NodeType  `json:"node_type"`
	Label              NodeLabel `json:"label"`
	AssociatedUIDCount int       `json:"associated_uid_count"`
	HopDistance        int       `json:"hop_distance"`
	NodeKey            string    `json:"node_key"`
}

// DetailedType returns the aggregation key for this node.
func (n AnomalyNode) DetailedType() string {
	return DetailedType(n.NodeType, n.Label)
}

// TypeStats carries per-detailed-type statistics inside one hop:
// how many nodes of that type were found, and the associated-uid-count
// magnitudes (strictly positive values only) of those nodes.
type TypeStats struct {
	Count                int   `json:"count"`
	UIDAssociationCounts []int `json:"uid_association_counts"`
}

// HopAnalysis is the aggregate of all anomaly nodes at one hop distance.
type HopAnalysis struct {
	HopDistance       int                  `json:"hop_distance"`
	TotalAnomalyNodes int                  `json:"total_anomaly_nodes"`
	StatsByType       map[string]TypeStats `json:"stats_by_type"`
}

// UIDNeighborhoodAnalysis is the full per-seed analysis: one HopAnalysis per
// hop 1..K, present even when empty.
type UIDNeighborhoodAnalysis struct {
	UIDKey        string              `json:"uid_key"`
	IsBlacklisted bool                `json:"is_blacklisted"`
	Truncated     bool                `json:"truncated,omitempty"`
	HopAnalyses   map[int]HopAnalysis `json:"hop_analyses"`
}

// TotalAnomalyNodes sums anomaly-node counts across every hop.
func (a UIDNeighborhoodAnalysis) TotalAnomalyNodes() int {
	total := 0
	for _, hop := range a.HopAnalyses {
		total += hop.TotalAnomalyNodes
	}
	return total
}

// HopBreakdown returns the per-hop anomaly-node counts.
func (a UIDNeighborhoodAnalysis) HopBreakdown() map[int]int {
	breakdown := make(map[int]int, len(a.HopAnalyses))
	for hop, analysis := range a.HopAnalyses {
		breakdown[hop] = analysis.TotalAnomalyNodes
	}
	return breakdown
}

// Seed identifies one uid to analyze, with its blacklist membership as
// known from seed discovery.
type Seed struct {
	UIDKey        string `json:"uid_key"`
	IsBlacklisted bool   `json:"is_blacklisted"`
}

// GroupAnalysisResult is a named collection of per-seed analyses, the input
// to all group-level statistics.
type GroupAnalysisResult struct {
	GroupName   string                    `json:"group_name"`
	UIDAnalyses []UIDNeighborhoodAnalysis `json:"uid_analyses"`
}

// UIDCount returns the number of analyzed seeds in the group.
func (g GroupAnalysisResult) UIDCount() int {
	return len(g.UIDAnalyses)
}
