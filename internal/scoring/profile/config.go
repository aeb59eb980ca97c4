// Package profile loads named scoring profiles (per-hop weight tables with
// their analysis knobs) from YAML, either embedded in the binary or from a
// config directory on disk.
package profile

import "github.com/fraudgraph/riskscope/internal/scoring"

// Config is the YAML definition of one scoring profile.
type Config struct {
	// Name is the unique profile identifier (e.g. "default")
	Name string `yaml:"name"`

	// Description explains what population or tuning the profile targets
	Description string `yaml:"description"`

	// MaxHops is the neighborhood bound the weight table was tuned for;
	// the weights list must carry exactly this many entries
	MaxHops int `yaml:"max_hops"`

	// IsolationThreshold is the profile's isolated-blacklist cutoff
	IsolationThreshold int `yaml:"isolation_threshold"`

	// Weights holds one detailed-type->weight map per hop, hop 1 first
	Weights []map[string]float64 `yaml:"weights"`
}

// Table converts the profile's weight entries into a scoring.WeightTable.
func (c *Config) Table() scoring.WeightTable {
	table := make(scoring.WeightTable, len(c.Weights))
	for i, hopWeights := range c.Weights {
		entry := make(map[string]float64, len(hopWeights))
		for detailedType, weight := range hopWeights {
			entry[detailedType] = weight
		}
		table[i] = entry
	}
	return table
}
