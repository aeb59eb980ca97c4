// Package export assembles the JSON documents handed to downstream
// consumers: per-seed analysis records, group aggregates with the full set
// of statistics views, and cross-group comparisons. Documents echo the run
// configuration so a consumer can tell which knobs produced them.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fraudgraph/riskscope/internal/model"
	"github.com/fraudgraph/riskscope/internal/stats"
)

// RunConfig is the configuration echo embedded in every document.
type RunConfig struct {
	MaxHops            int    `json:"max_hops"`
	IsolationThreshold int    `json:"isolation_threshold"`
	Profile            string `json:"profile"`
}

// SeedRecord is the flat per-seed summary row.
type SeedRecord struct {
	UIDKey            string      `json:"uid_key"`
	IsBlacklisted     bool        `json:"is_blacklisted"`
	TotalAnomalyNodes int         `json:"total_anomaly_nodes"`
	HopBreakdown      map[int]int `json:"hop_breakdown"`
	Truncated         bool        `json:"truncated,omitempty"`
}

// NewSeedRecord flattens one analysis into its summary row.
func NewSeedRecord(analysis model.UIDNeighborhoodAnalysis) SeedRecord {
	return SeedRecord{
		UIDKey:            analysis.UIDKey,
		IsBlacklisted:     analysis.IsBlacklisted,
		TotalAnomalyNodes: analysis.TotalAnomalyNodes(),
		HopBreakdown:      analysis.HopBreakdown(),
		Truncated:         analysis.Truncated,
	}
}

// GroupDocument is the full group-level export: summary rows plus every
// statistics view over the group.
type GroupDocument struct {
	GroupName string    `json:"group_name"`
	UIDCount  int       `json:"uid_count"`
	Config    RunConfig `json:"config"`

	Seeds []SeedRecord `json:"seeds"`

	AverageAnomalyNodesByHop map[int]float64                      `json:"average_anomaly_nodes_by_hop"`
	TypeDistributionByHop    map[int]map[string][]int             `json:"type_distribution_by_hop"`
	TypeSummariesByHop       map[int]map[string]stats.TypeSummary `json:"type_summaries_by_hop"`
	AssociationDistByHop     map[int]map[string][]int             `json:"association_distribution_by_hop"`
	IsolatedBlacklist        stats.IsolationStats                 `json:"isolated_blacklist"`
}

// BuildGroupDocument computes every statistics view over the group and
// packages them with per-seed rows and the config echo.
func BuildGroupDocument(group model.GroupAnalysisResult, cfg RunConfig) GroupDocument {
	seeds := make([]SeedRecord, 0, len(group.UIDAnalyses))
	for _, analysis := range group.UIDAnalyses {
		seeds = append(seeds, NewSeedRecord(analysis))
	}
	distributions := stats.TypeDistributionByHop(group, cfg.MaxHops)
	return GroupDocument{
		GroupName:                group.GroupName,
		UIDCount:                 group.UIDCount(),
		Config:                   cfg,
		Seeds:                    seeds,
		AverageAnomalyNodesByHop: stats.AverageAnomalyNodesByHop(group, cfg.MaxHops),
		TypeDistributionByHop:    distributions,
		TypeSummariesByHop:       stats.TypeSummariesByHop(distributions),
		AssociationDistByHop:     stats.AssociationDistributionByHop(group, cfg.MaxHops),
		IsolatedBlacklist:        stats.IsolatedBlacklistStats(group, cfg.IsolationThreshold),
	}
}

// ComparisonDocument pairs a cross-group comparison with the config echo.
type ComparisonDocument struct {
	Config     RunConfig        `json:"config"`
	Comparison stats.Comparison `json:"comparison"`
}

// BuildComparisonDocument compares the two groups hop by hop.
func BuildComparisonDocument(groupA, groupB model.GroupAnalysisResult, cfg RunConfig) ComparisonDocument {
	return ComparisonDocument{
		Config:     cfg,
		Comparison: stats.Compare(groupA, groupB, cfg.MaxHops),
	}
}

// WriteJSON renders the document as indented JSON.
func WriteJSON(w io.Writer, doc any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode export document: %w", err)
	}
	return nil
}

// WriteFile writes the document to path, creating or truncating it.
func WriteFile(path string, doc any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %w", path, err)
	}
	if err := WriteJSON(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
