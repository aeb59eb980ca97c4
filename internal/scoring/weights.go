// Package scoring combines a seed's classified anomaly nodes with a per-hop
// weight table into a single fraud-risk scalar.
package scoring

import "fmt"

// WeightTable maps, per hop, a detailed type to a non-negative weight. The
// slice is indexed by hop-1; entry i applies to nodes at hop distance i+1.
// Detailed types absent from a hop's map silently weigh 0.
type WeightTable []map[string]float64

// Validate rejects empty tables and negative weights. A malformed table is a
// startup configuration error, not something to discover mid-batch.
func (w WeightTable) Validate() error {
	if len(w) < 1 {
		return fmt.Errorf("weight table needs at least one hop entry")
	}
	for i, hopWeights := range w {
		for detailedType, weight := range hopWeights {
			if weight < 0 {
				return fmt.Errorf("negative weight %v for %q at hop %d", weight, detailedType, i+1)
			}
		}
	}
	return nil
}

// Weight returns the configured weight for a detailed type at the given hop
// distance, defaulting to 0 for unlisted types and out-of-range hops.
func (w WeightTable) Weight(hopDistance int, detailedType string) float64 {
	if hopDistance < 1 || hopDistance > len(w) {
		return 0
	}
	return w[hopDistance-1][detailedType]
}

// MaxHops returns how many hop entries the table carries.
func (w WeightTable) MaxHops() int {
	return len(w)
}
