// Package database provides read-only access to the shared-artifact graph
// snapshot in Neo4j: node lookups, undirected neighbor enumeration, and the
// generic query helpers the MCP tools use.
package database

//go:generate mockgen -destination=mocks/mock_database.go -package=database_mocks -typed github.com/fraudgraph/riskscope/internal/database Service

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/fraudgraph/riskscope/internal/model"
)

// Service is the graph-store boundary. The analysis engine only ever reads:
// per-node attribute snapshots, neighbor enumeration, and uid listing for
// seed discovery. Implementations must be safe for concurrent use.
type Service interface {
	// VerifyConnectivity fails fast when the store is unreachable.
	VerifyConnectivity(ctx context.Context) error

	// Close releases the underlying driver.
	Close(ctx context.Context) error

	// LookupUID reports whether the uid exists and whether it carries a
	// blacklisted status.
	LookupUID(ctx context.Context, uidKey string) (found bool, blacklisted bool, err error)

	// NodeNeighbors returns the attribute snapshot of every node adjacent to
	// (label, key), ignoring edge direction. The label must belong to the
	// closed catalog.
	NodeNeighbors(ctx context.Context, label model.NodeLabel, key string) ([]model.NodeAttributes, error)

	// ListUIDs returns up to limit uid seeds with their blacklist status;
	// limit <= 0 means no cap.
	ListUIDs(ctx context.Context, limit int) ([]model.Seed, error)

	// ExecuteReadQuery runs an arbitrary read query. Used by tooling, not by
	// the engine itself.
	ExecuteReadQuery(ctx context.Context, query string, params map[string]any) ([]*neo4j.Record, error)

	// RecordsToJSON renders query records as a JSON array string.
	RecordsToJSON(records []*neo4j.Record) (string, error)
}
