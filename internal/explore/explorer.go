// Package explore implements the bounded k-hop neighborhood exploration and
// node classification at the core of the risk engine. The traversal is an
// explicit breadth-first search over an abstracted neighbor-iteration
// capability rather than a declarative store query, so minimal-hop dedup is
// guaranteed independent of any query engine's shortest-path semantics.
package explore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/fraudgraph/riskscope/internal/model"
)

// ErrSeedNotFound is returned when the seed uid does not exist in the store.
// In batch context the seed is skipped rather than aborting the run.
var ErrSeedNotFound = errors.New("seed uid not found")

// DefaultMaxNodes caps how many distinct nodes a single exploration may
// visit before reporting a truncated result. Per-hop fan-out is unbounded,
// so a densely connected seed needs a budget rather than a crash.
const DefaultMaxNodes = 100_000

// Provider gives the explorer read-only access to node attributes and
// neighbor enumeration against a point-in-time snapshot. Implementations
// must be safe for concurrent reads.
type Provider interface {
	// LookupUID reports whether a uid node exists and whether it is
	// blacklisted.
	LookupUID(ctx context.Context, uidKey string) (found bool, blacklisted bool, err error)

	// NodeNeighbors enumerates the attribute snapshots of every node adjacent
	// to (label, key), ignoring edge direction.
	NodeNeighbors(ctx context.Context, label model.NodeLabel, key string) ([]model.NodeAttributes, error)
}

// Explorer walks a seed's k-hop neighborhood, classifies every encountered
// node, and retains the suspicious ones with their shortest hop distance.
type Explorer struct {
	provider Provider
	maxHops  int
	maxNodes int
	logger   *slog.Logger
}

// Option configures an Explorer.
type Option func(*Explorer)

// WithMaxNodes overrides the per-seed visited-node budget.
func WithMaxNodes(n int) Option {
	return func(e *Explorer) {
		if n > 0 {
			e.maxNodes = n
		}
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Explorer) {
		e.logger = logger
	}
}

// NewExplorer creates an Explorer bounded to maxHops.
func NewExplorer(provider Provider, maxHops int, opts ...Option) (*Explorer, error) {
	if maxHops < 1 {
		return nil, fmt.Errorf("max hops must be at least 1, got %d", maxHops)
	}
	e := &Explorer{
		provider: provider,
		maxHops:  maxHops,
		maxNodes: DefaultMaxNodes,
		logger:   slog.Default().With("component", "explorer"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// MaxHops returns the hop bound K.
func (e *Explorer) MaxHops() int {
	return e.maxHops
}

// Explore finds every suspicious node within maxHops undirected steps of the
// seed uid. Each distinct (label, key) is reported once, at the minimum hop
// distance discovered, classified from a single attribute snapshot. Normal
// nodes are discarded. Results are ordered by (hop distance, node type,
// label) for deterministic downstream grouping.
//
// A seed with no neighbors yields an empty slice, not an error. A missing
// seed yields ErrSeedNotFound. The truncated flag reports that the visited
// budget was exhausted before the frontier was.
func (e *Explorer) Explore(ctx context.Context, seedKey string) (nodes []model.AnomalyNode, truncated bool, err error) {
	found, _, err := e.provider.LookupUID(ctx, seedKey)
	if err != nil {
		return nil, false, fmt.Errorf("lookup seed %q: %w", seedKey, err)
	}
	if !found {
		return nil, false, fmt.Errorf("seed %q: %w", seedKey, ErrSeedNotFound)
	}

	seed := model.NodeKey(model.LabelUID, seedKey)
	visited := map[string]bool{seed: true}

	type frontierNode struct {
		label model.NodeLabel
		key   string
	}
	frontier := []frontierNode{{label: model.LabelUID, key: seedKey}}

	anomalies := make([]model.AnomalyNode, 0)

	for hop := 1; hop <= e.maxHops && len(frontier) > 0 && !truncated; hop++ {
		next := make([]frontierNode, 0, len(frontier))

		for _, fn := range frontier {
			if err := ctx.Err(); err != nil {
				return nil, false, err
			}

			neighbors, err := e.provider.NodeNeighbors(ctx, fn.label, fn.key)
			if err != nil {
				return nil, false, fmt.Errorf("neighbors of %s %q at hop %d: %w", fn.label, fn.key, hop, err)
			}

			for _, nb := range neighbors {
				if !model.KnownLabel(nb.Label) {
					e.logger.Warn("skipping node with label outside the catalog",
						"label", nb.Label, "key", nb.Key, "seed", seedKey)
					continue
				}

				nodeKey := model.NodeKey(nb.Label, nb.Key)
				if visited[nodeKey] {
					continue
				}
				visited[nodeKey] = true

				if len(visited) > e.maxNodes {
					e.logger.Warn("exploration budget exhausted, truncating",
						"seed", seedKey, "hop", hop, "budget", e.maxNodes)
					truncated = true
					break
				}

				nodeType := Classify(nb.Label, nb.Status, nb.AssociatedUIDCount)
				if nodeType != model.NodeTypeNormal {
					anomalies = append(anomalies, model.AnomalyNode{
						NodeType:           nodeType,
						Label:              nb.Label,
						AssociatedUIDCount: nb.AssociatedUIDCount,
						HopDistance:        hop,
						NodeKey:            nodeKey,
					})
				}

				next = append(next, frontierNode{label: nb.Label, key: nb.Key})
			}
			if truncated {
				break
			}
		}

		frontier = next
	}

	sortAnomalyNodes(anomalies)
	return anomalies, truncated, nil
}

// sortAnomalyNodes orders nodes by (hop distance, node type, label, key) so
// repeated runs over an unchanged snapshot report identically.
func sortAnomalyNodes(nodes []model.AnomalyNode) {
	sort.Slice(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if a.HopDistance != b.HopDistance {
			return a.HopDistance < b.HopDistance
		}
		if a.NodeType != b.NodeType {
			return a.NodeType < b.NodeType
		}
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		return a.NodeKey < b.NodeKey
	})
}
