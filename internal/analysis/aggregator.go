// Package analysis turns a seed's classified anomaly nodes into per-hop
// descriptive statistics and assembles the full per-seed analysis record.
package analysis

import (
	"context"
	"fmt"

	"github.com/fraudgraph/riskscope/internal/explore"
	"github.com/fraudgraph/riskscope/internal/model"
)

// BuildHopAnalyses groups classified nodes by hop distance and detailed
// type. The result always contains exactly maxHops entries (1..K); hops with
// no anomaly nodes get a zero-count entry. Read-only over its input.
func BuildHopAnalyses(nodes []model.AnomalyNode, maxHops int) map[int]model.HopAnalysis {
	byHop := make(map[int][]model.AnomalyNode)
	for _, n := range nodes {
		byHop[n.HopDistance] = append(byHop[n.HopDistance], n)
	}

	analyses := make(map[int]model.HopAnalysis, maxHops)
	for hop := 1; hop <= maxHops; hop++ {
		hopNodes := byHop[hop]
		analyses[hop] = model.HopAnalysis{
			HopDistance:       hop,
			TotalAnomalyNodes: len(hopNodes),
			StatsByType:       groupByDetailedType(hopNodes),
		}
	}
	return analyses
}

// groupByDetailedType buckets nodes under their detailed type and records
// the strictly positive associated-uid magnitudes per bucket.
func groupByDetailedType(nodes []model.AnomalyNode) map[string]model.TypeStats {
	stats := make(map[string]model.TypeStats)
	for _, n := range nodes {
		dt := n.DetailedType()
		s := stats[dt]
		s.Count++
		if n.AssociatedUIDCount > 0 {
			s.UIDAssociationCounts = append(s.UIDAssociationCounts, n.AssociatedUIDCount)
		}
		stats[dt] = s
	}
	return stats
}

// Analyzer composes exploration and hop aggregation into per-seed
// neighborhood analyses.
type Analyzer struct {
	explorer *explore.Explorer
	provider explore.Provider
}

// NewAnalyzer creates an Analyzer over an already-configured explorer.
func NewAnalyzer(explorer *explore.Explorer, provider explore.Provider) *Analyzer {
	return &Analyzer{explorer: explorer, provider: provider}
}

// AnalyzeUID explores one seed and aggregates the findings into a
// UIDNeighborhoodAnalysis with exactly MaxHops hop entries.
func (a *Analyzer) AnalyzeUID(ctx context.Context, uidKey string) (model.UIDNeighborhoodAnalysis, error) {
	_, blacklisted, err := a.provider.LookupUID(ctx, uidKey)
	if err != nil {
		return model.UIDNeighborhoodAnalysis{}, fmt.Errorf("lookup uid %q: %w", uidKey, err)
	}

	nodes, truncated, err := a.explorer.Explore(ctx, uidKey)
	if err != nil {
		return model.UIDNeighborhoodAnalysis{}, err
	}

	return model.UIDNeighborhoodAnalysis{
		UIDKey:        uidKey,
		IsBlacklisted: blacklisted,
		Truncated:     truncated,
		HopAnalyses:   BuildHopAnalyses(nodes, a.explorer.MaxHops()),
	}, nil
}
