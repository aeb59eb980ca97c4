package scoring

import (
	"context"
	"fmt"

	"github.com/fraudgraph/riskscope/internal/explore"
	"github.com/fraudgraph/riskscope/internal/model"
)

// detailedTypeBlacklistedUID is the one detailed type whose weight applies
// directly instead of being multiplied by the association count: a
// blacklisted uid is an authoritative judgment, not a density signal.
const detailedTypeBlacklistedUID = "blacklisted_uid"

// Contribution records how much one anomaly node added to a seed's score,
// for explainability in tool output.
type Contribution struct {
	NodeKey      string  `json:"node_key"`
	DetailedType string  `json:"detailed_type"`
	HopDistance  int     `json:"hop_distance"`
	Weight       float64 `json:"weight"`
	Multiplier   float64 `json:"multiplier"`
	Value        float64 `json:"value"`
}

// Scorer computes weighted risk scores over a seed's k-hop neighborhood.
// It produces a scalar only; thresholding and decisioning belong to the
// caller.
type Scorer struct {
	explorer *explore.Explorer
	weights  WeightTable
}

// NewScorer validates the weight table against the explorer's hop bound and
// returns a Scorer. A table with a different hop count than the explorer is
// a configuration error.
func NewScorer(explorer *explore.Explorer, weights WeightTable) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weight table: %w", err)
	}
	if weights.MaxHops() != explorer.MaxHops() {
		return nil, fmt.Errorf("weight table covers %d hops, explorer is bounded to %d",
			weights.MaxHops(), explorer.MaxHops())
	}
	return &Scorer{explorer: explorer, weights: weights}, nil
}

// Score explores the seed's neighborhood and returns its weighted risk
// score. Deterministic for an unchanged snapshot and weight table.
func (s *Scorer) Score(ctx context.Context, seedKey string) (float64, error) {
	score, _, err := s.ScoreWithBreakdown(ctx, seedKey)
	return score, err
}

// ScoreWithBreakdown returns the score together with each node's
// contribution, ordered the same way the explorer orders its results.
func (s *Scorer) ScoreWithBreakdown(ctx context.Context, seedKey string) (float64, []Contribution, error) {
	nodes, _, err := s.explorer.Explore(ctx, seedKey)
	if err != nil {
		return 0, nil, err
	}
	return s.ScoreNodes(nodes)
}

// ScoreNodes computes the weighted sum over already-explored nodes. Each
// node contributes weight[hop][detailedType] times its multiplier: 1 for a
// blacklisted uid, associated_uid_count-1 for everything else. The
// multiplier is not clamped at zero; a blacklisted artifact with an
// association count of 0 contributes a small negative term.
func (s *Scorer) ScoreNodes(nodes []model.AnomalyNode) (float64, []Contribution, error) {
	var score float64
	contributions := make([]Contribution, 0, len(nodes))

	for _, n := range nodes {
		detailedType := n.DetailedType()
		weight := s.weights.Weight(n.HopDistance, detailedType)

		multiplier := 1.0
		if detailedType != detailedTypeBlacklistedUID {
			multiplier = float64(n.AssociatedUIDCount - 1)
		}

		value := weight * multiplier
		score += value
		contributions = append(contributions, Contribution{
			NodeKey:      n.NodeKey,
			DetailedType: detailedType,
			HopDistance:  n.HopDistance,
			Weight:       weight,
			Multiplier:   multiplier,
			Value:        value,
		})
	}

	return score, contributions, nil
}
