// Package stats computes group-level distributions, isolation metrics, and
// cross-group comparisons over collections of per-seed neighborhood
// analyses. Every operation is a stateless aggregation pass over its input
// and is safe to run repeatedly or concurrently.
package stats

import (
	"sort"

	"github.com/fraudgraph/riskscope/internal/model"
)

// AverageAnomalyNodesByHop returns, per hop 1..maxHops, the mean
// total-anomaly-node count across the group. A uid without data for a hop
// counts as 0 there. An empty group yields all-zero means.
func AverageAnomalyNodesByHop(group model.GroupAnalysisResult, maxHops int) map[int]float64 {
	averages := make(map[int]float64, maxHops)
	n := len(group.UIDAnalyses)

	for hop := 1; hop <= maxHops; hop++ {
		if n == 0 {
			averages[hop] = 0
			continue
		}
		total := 0
		for _, analysis := range group.UIDAnalyses {
			total += analysis.HopAnalyses[hop].TotalAnomalyNodes
		}
		averages[hop] = float64(total) / float64(n)
	}
	return averages
}

// TypeDistributionByHop returns, per hop and detailed type, one count per
// uid in the group, zero-filled for uids that saw none of that type at that
// hop. Mean, max, min, and coverage all derive from these lists.
func TypeDistributionByHop(group model.GroupAnalysisResult, maxHops int) map[int]map[string][]int {
	distributions := make(map[int]map[string][]int, maxHops)

	for hop := 1; hop <= maxHops; hop++ {
		// Collect the union of detailed types seen at this hop first, so
		// every list is the same length as the group.
		types := make(map[string]bool)
		for _, analysis := range group.UIDAnalyses {
			for detailedType := range analysis.HopAnalyses[hop].StatsByType {
				types[detailedType] = true
			}
		}
		if len(types) == 0 {
			continue
		}

		byType := make(map[string][]int, len(types))
		for detailedType := range types {
			counts := make([]int, 0, len(group.UIDAnalyses))
			for _, analysis := range group.UIDAnalyses {
				counts = append(counts, analysis.HopAnalyses[hop].StatsByType[detailedType].Count)
			}
			byType[detailedType] = counts
		}
		distributions[hop] = byType
	}
	return distributions
}

// AssociationDistributionByHop returns, per hop and detailed type, the
// flattened list of every individual associated-uid-count magnitude observed
// across the group.
func AssociationDistributionByHop(group model.GroupAnalysisResult, maxHops int) map[int]map[string][]int {
	distributions := make(map[int]map[string][]int, maxHops)

	for hop := 1; hop <= maxHops; hop++ {
		byType := make(map[string][]int)
		for _, analysis := range group.UIDAnalyses {
			for detailedType, typeStats := range analysis.HopAnalyses[hop].StatsByType {
				byType[detailedType] = append(byType[detailedType], typeStats.UIDAssociationCounts...)
			}
		}
		if len(byType) > 0 {
			distributions[hop] = byType
		}
	}
	return distributions
}

// TypeSummary condenses one detailed type's per-uid count list: mean, max,
// and min over the zero-filled counts, plus the fraction of uids that saw
// the type at all.
type TypeSummary struct {
	Mean     float64 `json:"mean"`
	Max      int     `json:"max"`
	Min      int     `json:"min"`
	Coverage float64 `json:"coverage"`
}

// TypeSummariesByHop derives per-type summaries from the zero-filled count
// lists of TypeDistributionByHop.
func TypeSummariesByHop(distributions map[int]map[string][]int) map[int]map[string]TypeSummary {
	summaries := make(map[int]map[string]TypeSummary, len(distributions))
	for hop, byType := range distributions {
		hopSummaries := make(map[string]TypeSummary, len(byType))
		for detailedType, counts := range byType {
			hopSummaries[detailedType] = summarizeCounts(counts)
		}
		summaries[hop] = hopSummaries
	}
	return summaries
}

func summarizeCounts(counts []int) TypeSummary {
	if len(counts) == 0 {
		return TypeSummary{}
	}
	s := TypeSummary{Max: counts[0], Min: counts[0]}
	total, seen := 0, 0
	for _, c := range counts {
		total += c
		if c > 0 {
			seen++
		}
		if c > s.Max {
			s.Max = c
		}
		if c < s.Min {
			s.Min = c
		}
	}
	s.Mean = float64(total) / float64(len(counts))
	s.Coverage = float64(seen) / float64(len(counts))
	return s
}

// IsolatedUID describes one isolated blacklisted uid: a known-bad identity
// with (almost) no suspicious surroundings.
type IsolatedUID struct {
	UIDKey            string      `json:"uid_key"`
	TotalAnomalyNodes int         `json:"total_anomaly_nodes"`
	HopBreakdown      map[int]int `json:"hop_breakdown"`
}

// SummaryStats carries mean/max/min over a list of totals.
type SummaryStats struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Max   int     `json:"max"`
	Min   int     `json:"min"`
}

// IsolationStats is the isolated-blacklist view of a group.
type IsolationStats struct {
	TotalBlacklisted int           `json:"total_blacklisted_uids"`
	IsolatedCount    int           `json:"isolated_blacklisted_uids"`
	IsolationRate    float64       `json:"isolation_rate"`
	Threshold        int           `json:"isolation_threshold"`
	Isolated         []IsolatedUID `json:"isolated_uid_list"`
	NonIsolated      SummaryStats  `json:"non_isolated_stats"`
}

// IsolatedBlacklistStats restricts the group to blacklisted members and
// splits them at the threshold: a member is isolated iff its anomaly-node
// total across all hops is at or below it. An empty blacklisted subgroup is
// a defined vacuous result with rate 0, never an error.
func IsolatedBlacklistStats(group model.GroupAnalysisResult, threshold int) IsolationStats {
	result := IsolationStats{
		Threshold: threshold,
		Isolated:  make([]IsolatedUID, 0),
	}

	var nonIsolatedTotals []int
	for _, analysis := range group.UIDAnalyses {
		if !analysis.IsBlacklisted {
			continue
		}
		result.TotalBlacklisted++

		total := analysis.TotalAnomalyNodes()
		if total <= threshold {
			result.Isolated = append(result.Isolated, IsolatedUID{
				UIDKey:            analysis.UIDKey,
				TotalAnomalyNodes: total,
				HopBreakdown:      analysis.HopBreakdown(),
			})
		} else {
			nonIsolatedTotals = append(nonIsolatedTotals, total)
		}
	}

	result.IsolatedCount = len(result.Isolated)
	if result.TotalBlacklisted > 0 {
		result.IsolationRate = float64(result.IsolatedCount) / float64(result.TotalBlacklisted)
	}
	result.NonIsolated = summarize(nonIsolatedTotals)
	return result
}

func summarize(values []int) SummaryStats {
	if len(values) == 0 {
		return SummaryStats{}
	}
	s := SummaryStats{Count: len(values), Max: values[0], Min: values[0]}
	total := 0
	for _, v := range values {
		total += v
		if v > s.Max {
			s.Max = v
		}
		if v < s.Min {
			s.Min = v
		}
	}
	s.Mean = float64(total) / float64(len(values))
	return s
}

// Ratio is a guarded quotient: Defined is false when the denominator average
// was 0, in which case Value is 0. The sentinel keeps comparison documents
// JSON-encodable where an infinity would not be.
type Ratio struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
}

func divide(numerator, denominator float64) Ratio {
	if denominator == 0 {
		return Ratio{}
	}
	return Ratio{Value: numerator / denominator, Defined: true}
}

// HopComparison compares the two groups' averages at one hop.
type HopComparison struct {
	HopDistance int     `json:"hop_distance"`
	AverageA    float64 `json:"average_a"`
	AverageB    float64 `json:"average_b"`
	Ratio       Ratio   `json:"ratio"`
}

// Comparison is the cross-group view: per-hop ratios of group A's average
// anomaly-node count over group B's, plus an overall ratio of the summed
// per-hop averages.
type Comparison struct {
	GroupA       string          `json:"group_a"`
	GroupB       string          `json:"group_b"`
	ByHop        []HopComparison `json:"by_hop"`
	OverallRatio Ratio           `json:"overall_ratio"`
}

// Compare computes per-hop and overall average ratios between two groups,
// conventionally blacklisted (A) over normal (B).
func Compare(groupA, groupB model.GroupAnalysisResult, maxHops int) Comparison {
	avgA := AverageAnomalyNodesByHop(groupA, maxHops)
	avgB := AverageAnomalyNodesByHop(groupB, maxHops)

	comparison := Comparison{
		GroupA: groupA.GroupName,
		GroupB: groupB.GroupName,
		ByHop:  make([]HopComparison, 0, maxHops),
	}

	var sumA, sumB float64
	hops := make([]int, 0, maxHops)
	for hop := range avgA {
		hops = append(hops, hop)
	}
	sort.Ints(hops)

	for _, hop := range hops {
		a, b := avgA[hop], avgB[hop]
		sumA += a
		sumB += b
		comparison.ByHop = append(comparison.ByHop, HopComparison{
			HopDistance: hop,
			AverageA:    a,
			AverageB:    b,
			Ratio:       divide(a, b),
		})
	}
	comparison.OverallRatio = divide(sumA, sumB)
	return comparison
}
