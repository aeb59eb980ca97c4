package explore_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/fraudgraph/riskscope/internal/explore"
	"github.com/fraudgraph/riskscope/internal/model"
)

// memProvider is an in-memory undirected graph used as the attribute
// provider in explorer tests.
type memProvider struct {
	nodes map[string]model.NodeAttributes // keyed by label_key
	edges map[string][]string             // adjacency, keyed by label_key
}

func newMemProvider() *memProvider {
	return &memProvider{
		nodes: make(map[string]model.NodeAttributes),
		edges: make(map[string][]string),
	}
}

func (p *memProvider) addNode(label model.NodeLabel, key, status string, count int) {
	p.nodes[model.NodeKey(label, key)] = model.NodeAttributes{
		Label:              label,
		Key:                key,
		Status:             status,
		AssociatedUIDCount: count,
	}
}

func (p *memProvider) addEdge(aLabel model.NodeLabel, aKey string, bLabel model.NodeLabel, bKey string) {
	a := model.NodeKey(aLabel, aKey)
	b := model.NodeKey(bLabel, bKey)
	p.edges[a] = append(p.edges[a], b)
	p.edges[b] = append(p.edges[b], a)
}

func (p *memProvider) LookupUID(_ context.Context, uidKey string) (bool, bool, error) {
	attrs, ok := p.nodes[model.NodeKey(model.LabelUID, uidKey)]
	if !ok {
		return false, false, nil
	}
	return true, attrs.Status == model.StatusBlacklisted, nil
}

func (p *memProvider) NodeNeighbors(_ context.Context, label model.NodeLabel, key string) ([]model.NodeAttributes, error) {
	var out []model.NodeAttributes
	for _, nk := range p.edges[model.NodeKey(label, key)] {
		out = append(out, p.nodes[nk])
	}
	return out, nil
}

func mustExplorer(t *testing.T, p explore.Provider, maxHops int, opts ...explore.Option) *explore.Explorer {
	t.Helper()
	e, err := explore.NewExplorer(p, maxHops, opts...)
	if err != nil {
		t.Fatalf("NewExplorer: %v", err)
	}
	return e
}

func TestExploreSeedNotFound(t *testing.T) {
	e := mustExplorer(t, newMemProvider(), 3)

	_, _, err := e.Explore(context.Background(), "missing")
	if !errors.Is(err, explore.ErrSeedNotFound) {
		t.Fatalf("expected ErrSeedNotFound, got %v", err)
	}
}

func TestExploreEmptyNeighborhood(t *testing.T) {
	p := newMemProvider()
	p.addNode(model.LabelUID, "u1", "", 0)

	e := mustExplorer(t, p, 3)
	nodes, truncated, err := e.Explore(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Explore: %v", err)
	}
	if truncated {
		t.Error("expected no truncation")
	}
	if len(nodes) != 0 {
		t.Errorf("expected empty result, got %d nodes", len(nodes))
	}
}

// A node reachable via two paths must be reported once, at the shorter hop.
func TestExploreDedupAtMinimalHop(t *testing.T) {
	p := newMemProvider()
	p.addNode(model.LabelUID, "seed", "", 0)
	p.addNode(model.LabelPhoneNum, "p1", "", 3)      // hop 1 (also reachable at hop 3)
	p.addNode(model.LabelDeviceNo, "d1", "", 2)      // hop 1
	p.addNode(model.LabelUID, "u2", "blacklisted", 0) // hop 2
	p.addEdge(model.LabelUID, "seed", model.LabelPhoneNum, "p1")
	p.addEdge(model.LabelUID, "seed", model.LabelDeviceNo, "d1")
	p.addEdge(model.LabelDeviceNo, "d1", model.LabelUID, "u2")
	p.addEdge(model.LabelUID, "u2", model.LabelPhoneNum, "p1") // longer path back to p1

	e := mustExplorer(t, p, 3)
	nodes, _, err := e.Explore(context.Background(), "seed")
	if err != nil {
		t.Fatalf("Explore: %v", err)
	}

	byKey := map[string]model.AnomalyNode{}
	for _, n := range nodes {
		if _, dup := byKey[n.NodeKey]; dup {
			t.Errorf("node %s reported more than once", n.NodeKey)
		}
		byKey[n.NodeKey] = n
	}

	if n, ok := byKey["phone_num_p1"]; !ok {
		t.Error("phone_num_p1 missing from results")
	} else if n.HopDistance != 1 {
		t.Errorf("phone_num_p1 hop = %d, want 1 (minimal)", n.HopDistance)
	}
	if n, ok := byKey["uid_u2"]; !ok {
		t.Error("uid_u2 missing from results")
	} else if n.HopDistance != 2 {
		t.Errorf("uid_u2 hop = %d, want 2", n.HopDistance)
	}
	if n := byKey["device_no_d1"]; n.NodeType != model.NodeTypeAnomalous {
		t.Errorf("device_no_d1 type = %s, want anomalous", n.NodeType)
	}
}

// The seed itself is never part of its own neighborhood result.
func TestExploreExcludesSeed(t *testing.T) {
	p := newMemProvider()
	p.addNode(model.LabelUID, "seed", "blacklisted", 0)
	p.addNode(model.LabelPhoneNum, "p1", "", 2)
	p.addEdge(model.LabelUID, "seed", model.LabelPhoneNum, "p1")

	e := mustExplorer(t, p, 2)
	nodes, _, err := e.Explore(context.Background(), "seed")
	if err != nil {
		t.Fatalf("Explore: %v", err)
	}
	for _, n := range nodes {
		if n.NodeKey == "uid_seed" {
			t.Error("seed reported in its own neighborhood")
		}
	}
}

func TestExploreHopBound(t *testing.T) {
	// Chain: seed - p1 - u2 - p2, with p2 at hop 3.
	p := newMemProvider()
	p.addNode(model.LabelUID, "seed", "", 0)
	p.addNode(model.LabelPhoneNum, "p1", "", 2)
	p.addNode(model.LabelUID, "u2", "", 0)
	p.addNode(model.LabelPhoneNum, "p2", "", 5)
	p.addEdge(model.LabelUID, "seed", model.LabelPhoneNum, "p1")
	p.addEdge(model.LabelPhoneNum, "p1", model.LabelUID, "u2")
	p.addEdge(model.LabelUID, "u2", model.LabelPhoneNum, "p2")

	e := mustExplorer(t, p, 2)
	nodes, _, err := e.Explore(context.Background(), "seed")
	if err != nil {
		t.Fatalf("Explore: %v", err)
	}
	for _, n := range nodes {
		if n.HopDistance > 2 {
			t.Errorf("node %s at hop %d exceeds bound 2", n.NodeKey, n.HopDistance)
		}
		if n.NodeKey == "phone_num_p2" {
			t.Error("phone_num_p2 beyond hop bound was reported")
		}
	}
}

func TestExploreDiscardsNormalNodes(t *testing.T) {
	p := newMemProvider()
	p.addNode(model.LabelUID, "seed", "", 0)
	p.addNode(model.LabelPhoneNum, "lonely", "", 1) // normal: count <= 1
	p.addNode(model.LabelCardNo, "shared", "", 4)   // anomalous
	p.addEdge(model.LabelUID, "seed", model.LabelPhoneNum, "lonely")
	p.addEdge(model.LabelUID, "seed", model.LabelCardNo, "shared")

	e := mustExplorer(t, p, 1)
	nodes, _, err := e.Explore(context.Background(), "seed")
	if err != nil {
		t.Fatalf("Explore: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
	if nodes[0].NodeKey != "card_no_shared" {
		t.Errorf("kept %s, want card_no_shared", nodes[0].NodeKey)
	}
}

// Nodes carrying labels outside the catalog are skipped with a warning, and
// traversal continues.
func TestExploreSkipsMalformedLabels(t *testing.T) {
	p := newMemProvider()
	p.addNode(model.LabelUID, "seed", "", 0)
	p.nodes["mystery_x"] = model.NodeAttributes{Label: "mystery", Key: "x", AssociatedUIDCount: 9}
	p.edges[model.NodeKey(model.LabelUID, "seed")] = append(
		p.edges[model.NodeKey(model.LabelUID, "seed")], "mystery_x")
	p.addNode(model.LabelPhoneNum, "p1", "", 2)
	p.addEdge(model.LabelUID, "seed", model.LabelPhoneNum, "p1")

	e := mustExplorer(t, p, 2)
	nodes, _, err := e.Explore(context.Background(), "seed")
	if err != nil {
		t.Fatalf("Explore: %v", err)
	}
	if len(nodes) != 1 || nodes[0].NodeKey != "phone_num_p1" {
		t.Errorf("expected only phone_num_p1 after skipping malformed node, got %v", nodes)
	}
}

func TestExploreDeterministicOrder(t *testing.T) {
	p := newMemProvider()
	p.addNode(model.LabelUID, "seed", "", 0)
	p.addNode(model.LabelRemoteIP, "ip1", "", 3)
	p.addNode(model.LabelPhoneNum, "p1", "blacklisted", 0)
	p.addNode(model.LabelCardNo, "c1", "", 2)
	p.addEdge(model.LabelUID, "seed", model.LabelRemoteIP, "ip1")
	p.addEdge(model.LabelUID, "seed", model.LabelPhoneNum, "p1")
	p.addEdge(model.LabelUID, "seed", model.LabelCardNo, "c1")

	e := mustExplorer(t, p, 1)
	nodes, _, err := e.Explore(context.Background(), "seed")
	if err != nil {
		t.Fatalf("Explore: %v", err)
	}

	sorted := sort.SliceIsSorted(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if a.HopDistance != b.HopDistance {
			return a.HopDistance < b.HopDistance
		}
		if a.NodeType != b.NodeType {
			return a.NodeType < b.NodeType
		}
		return a.Label <= b.Label
	})
	if !sorted {
		t.Errorf("results not ordered by (hop, type, label): %v", nodes)
	}
	// node types order lexically at the same hop: anomalous before blacklisted
	if nodes[0].NodeType != model.NodeTypeAnomalous {
		t.Errorf("first node type = %s, want anomalous", nodes[0].NodeType)
	}
	if nodes[len(nodes)-1].NodeKey != "phone_num_p1" {
		t.Errorf("last node = %s, want phone_num_p1", nodes[len(nodes)-1].NodeKey)
	}
}

func TestExploreTruncation(t *testing.T) {
	p := newMemProvider()
	p.addNode(model.LabelUID, "seed", "", 0)
	for _, key := range []string{"a", "b", "c", "d", "e"} {
		p.addNode(model.LabelDeviceNo, key, "", 3)
		p.addEdge(model.LabelUID, "seed", model.LabelDeviceNo, key)
	}

	e := mustExplorer(t, p, 1, explore.WithMaxNodes(3))
	nodes, truncated, err := e.Explore(context.Background(), "seed")
	if err != nil {
		t.Fatalf("Explore: %v", err)
	}
	if !truncated {
		t.Error("expected truncated result")
	}
	if len(nodes) > 3 {
		t.Errorf("budget 3 exceeded: %d nodes", len(nodes))
	}
}

func TestExploreCancellation(t *testing.T) {
	p := newMemProvider()
	p.addNode(model.LabelUID, "seed", "", 0)
	p.addNode(model.LabelPhoneNum, "p1", "", 2)
	p.addEdge(model.LabelUID, "seed", model.LabelPhoneNum, "p1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := mustExplorer(t, p, 3)
	if _, _, err := e.Explore(ctx, "seed"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewExplorerRejectsBadHops(t *testing.T) {
	if _, err := explore.NewExplorer(newMemProvider(), 0); err == nil {
		t.Fatal("expected error for max hops 0")
	}
}
