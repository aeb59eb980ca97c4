package stats_test

import (
	"testing"

	"github.com/fraudgraph/riskscope/internal/analysis"
	"github.com/fraudgraph/riskscope/internal/model"
	"github.com/fraudgraph/riskscope/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// member builds a per-seed analysis whose hop totals follow totalsByHop,
// with every anomaly node attributed to anomalous_phone_num with an
// association count of 3.
func member(uidKey string, blacklisted bool, maxHops int, totalsByHop map[int]int) model.UIDNeighborhoodAnalysis {
	var nodes []model.AnomalyNode
	for hop, total := range totalsByHop {
		for i := 0; i < total; i++ {
			nodes = append(nodes, model.AnomalyNode{
				NodeType:           model.NodeTypeAnomalous,
				Label:              model.LabelPhoneNum,
				AssociatedUIDCount: 3,
				HopDistance:        hop,
				NodeKey:            model.NodeKey(model.LabelPhoneNum, uidKey+string(rune('a'+i))+string(rune('0'+hop))),
			})
		}
	}
	return model.UIDNeighborhoodAnalysis{
		UIDKey:        uidKey,
		IsBlacklisted: blacklisted,
		HopAnalyses:   analysis.BuildHopAnalyses(nodes, maxHops),
	}
}

func TestAverageAnomalyNodesByHop(t *testing.T) {
	group := model.GroupAnalysisResult{
		GroupName: "blacklist",
		UIDAnalyses: []model.UIDNeighborhoodAnalysis{
			member("u1", true, 3, map[int]int{1: 2, 2: 4}),
			member("u2", true, 3, map[int]int{1: 0, 2: 2}),
		},
	}

	averages := stats.AverageAnomalyNodesByHop(group, 3)
	assert.InDelta(t, 1.0, averages[1], 1e-9)
	assert.InDelta(t, 3.0, averages[2], 1e-9)
	assert.Zero(t, averages[3])
}

func TestAverageAnomalyNodesByHopEmptyGroup(t *testing.T) {
	averages := stats.AverageAnomalyNodesByHop(model.GroupAnalysisResult{}, 2)
	assert.Equal(t, map[int]float64{1: 0, 2: 0}, averages)
}

func TestTypeDistributionByHopZeroFills(t *testing.T) {
	group := model.GroupAnalysisResult{
		UIDAnalyses: []model.UIDNeighborhoodAnalysis{
			member("u1", false, 2, map[int]int{1: 2}),
			member("u2", false, 2, map[int]int{}), // nothing anywhere
		},
	}

	dist := stats.TypeDistributionByHop(group, 2)
	require.Contains(t, dist, 1)
	counts := dist[1]["anomalous_phone_num"]
	// One entry per uid, zero-filled for the uid that saw none.
	assert.ElementsMatch(t, []int{2, 0}, counts)

	// Hop 2 had no types at all across the group.
	assert.NotContains(t, dist, 2)
}

func TestTypeSummariesByHop(t *testing.T) {
	group := model.GroupAnalysisResult{
		UIDAnalyses: []model.UIDNeighborhoodAnalysis{
			member("u1", false, 2, map[int]int{1: 2}),
			member("u2", false, 2, map[int]int{1: 4}),
			member("u3", false, 2, map[int]int{}),
		},
	}

	summaries := stats.TypeSummariesByHop(stats.TypeDistributionByHop(group, 2))
	require.Contains(t, summaries, 1)

	summary := summaries[1]["anomalous_phone_num"]
	assert.InDelta(t, 2.0, summary.Mean, 1e-9)
	assert.Equal(t, 4, summary.Max)
	assert.Equal(t, 0, summary.Min)
	assert.InDelta(t, 2.0/3.0, summary.Coverage, 1e-9)
}

func TestAssociationDistributionByHopFlattens(t *testing.T) {
	group := model.GroupAnalysisResult{
		UIDAnalyses: []model.UIDNeighborhoodAnalysis{
			member("u1", false, 1, map[int]int{1: 2}),
			member("u2", false, 1, map[int]int{1: 1}),
		},
	}

	dist := stats.AssociationDistributionByHop(group, 1)
	require.Contains(t, dist, 1)
	// Three anomalous_phone_num nodes across the group, each count 3.
	assert.Equal(t, []int{3, 3, 3}, dist[1]["anomalous_phone_num"])
}

func TestIsolatedBlacklistStats(t *testing.T) {
	// Totals 0, 1, 5 with threshold 2: two isolated, one not.
	group := model.GroupAnalysisResult{
		GroupName: "blacklist",
		UIDAnalyses: []model.UIDNeighborhoodAnalysis{
			member("u1", true, 3, map[int]int{}),
			member("u2", true, 3, map[int]int{1: 1}),
			member("u3", true, 3, map[int]int{1: 2, 2: 3}),
		},
	}

	isolation := stats.IsolatedBlacklistStats(group, 2)
	assert.Equal(t, 3, isolation.TotalBlacklisted)
	assert.Equal(t, 2, isolation.IsolatedCount)
	assert.InDelta(t, 2.0/3.0, isolation.IsolationRate, 1e-9)

	require.Equal(t, 1, isolation.NonIsolated.Count)
	assert.InDelta(t, 5.0, isolation.NonIsolated.Mean, 1e-9)
	assert.Equal(t, 5, isolation.NonIsolated.Max)
	assert.Equal(t, 5, isolation.NonIsolated.Min)

	// isolated + non-isolated partitions the blacklisted subgroup
	assert.Equal(t, isolation.TotalBlacklisted, isolation.IsolatedCount+isolation.NonIsolated.Count)
	assert.GreaterOrEqual(t, isolation.IsolationRate, 0.0)
	assert.LessOrEqual(t, isolation.IsolationRate, 1.0)
}

func TestIsolatedBlacklistStatsIgnoresNormalMembers(t *testing.T) {
	group := model.GroupAnalysisResult{
		UIDAnalyses: []model.UIDNeighborhoodAnalysis{
			member("u1", false, 2, map[int]int{1: 1}),
			member("u2", true, 2, map[int]int{1: 1}),
		},
	}
	isolation := stats.IsolatedBlacklistStats(group, 2)
	assert.Equal(t, 1, isolation.TotalBlacklisted)
}

func TestIsolatedBlacklistStatsEmptySubgroup(t *testing.T) {
	group := model.GroupAnalysisResult{
		UIDAnalyses: []model.UIDNeighborhoodAnalysis{
			member("u1", false, 2, map[int]int{1: 4}),
		},
	}

	isolation := stats.IsolatedBlacklistStats(group, 2)
	assert.Equal(t, 0, isolation.TotalBlacklisted)
	assert.Zero(t, isolation.IsolationRate)
	assert.Empty(t, isolation.Isolated)
	assert.Equal(t, stats.SummaryStats{}, isolation.NonIsolated)
}

func TestCompare(t *testing.T) {
	blacklist := model.GroupAnalysisResult{
		GroupName: "blacklist",
		UIDAnalyses: []model.UIDNeighborhoodAnalysis{
			member("b1", true, 2, map[int]int{1: 4, 2: 2}),
			member("b2", true, 2, map[int]int{1: 2, 2: 0}),
		},
	}
	normal := model.GroupAnalysisResult{
		GroupName: "normal",
		UIDAnalyses: []model.UIDNeighborhoodAnalysis{
			member("n1", false, 2, map[int]int{1: 1, 2: 0}),
			member("n2", false, 2, map[int]int{1: 1, 2: 0}),
		},
	}

	comparison := stats.Compare(blacklist, normal, 2)
	require.Len(t, comparison.ByHop, 2)

	hop1 := comparison.ByHop[0]
	assert.Equal(t, 1, hop1.HopDistance)
	assert.InDelta(t, 3.0, hop1.AverageA, 1e-9)
	assert.InDelta(t, 1.0, hop1.AverageB, 1e-9)
	require.True(t, hop1.Ratio.Defined)
	assert.InDelta(t, 3.0, hop1.Ratio.Value, 1e-9)

	// Hop 2: normal group average is 0, so the ratio is undefined.
	hop2 := comparison.ByHop[1]
	assert.False(t, hop2.Ratio.Defined)
	assert.Zero(t, hop2.Ratio.Value)

	// Overall: (3+1)/(1+0)
	require.True(t, comparison.OverallRatio.Defined)
	assert.InDelta(t, 4.0, comparison.OverallRatio.Value, 1e-9)
}

func TestCompareEmptyDenominatorGroup(t *testing.T) {
	a := model.GroupAnalysisResult{
		GroupName: "a",
		UIDAnalyses: []model.UIDNeighborhoodAnalysis{
			member("u1", true, 1, map[int]int{1: 3}),
		},
	}
	comparison := stats.Compare(a, model.GroupAnalysisResult{GroupName: "b"}, 1)
	assert.False(t, comparison.OverallRatio.Defined)
}
