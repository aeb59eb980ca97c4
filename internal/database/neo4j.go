package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/fraudgraph/riskscope/internal/model"
)

// keyProperty returns the identity property for a label: uid nodes are
// keyed by uid_key, artifact nodes by key.
func keyProperty(label model.NodeLabel) string {
	if label == model.LabelUID {
		return "uid_key"
	}
	return "key"
}

// Neo4jService implements Service over a Neo4j driver.
type Neo4jService struct {
	driver   neo4j.DriverWithContext
	database string
	logger   *slog.Logger
}

// NewNeo4jService connects to Neo4j and verifies connectivity before
// returning, so a bad URI or credentials fail at startup rather than on the
// first seed.
func NewNeo4jService(ctx context.Context, uri, user, password, database string) (*Neo4jService, error) {
	if uri == "" || user == "" {
		return nil, fmt.Errorf("neo4j credentials missing: uri=%q, user=%q", uri, user)
	}

	driver, err := neo4j.NewDriverWithContext(uri,
		neo4j.BasicAuth(user, password, ""),
		func(config *neo4j.Config) {
			config.MaxConnectionPoolSize = 50
			config.ConnectionAcquisitionTimeout = 60 * time.Second
			config.SocketConnectTimeout = 5 * time.Second
			config.SocketKeepalive = true
		})
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("failed to connect to neo4j at %s: %w", uri, err)
	}

	logger := slog.Default().With("component", "neo4j")
	logger.Info("neo4j connected", "uri", uri, "database", database)

	return &Neo4jService{
		driver:   driver,
		database: database,
		logger:   logger,
	}, nil
}

// VerifyConnectivity checks the store is still reachable.
func (s *Neo4jService) VerifyConnectivity(ctx context.Context) error {
	if err := s.driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("neo4j connectivity check failed: %w", err)
	}
	return nil
}

// Close releases the driver.
func (s *Neo4jService) Close(ctx context.Context) error {
	if err := s.driver.Close(ctx); err != nil {
		return fmt.Errorf("failed to close neo4j driver: %w", err)
	}
	s.logger.Info("neo4j connection closed")
	return nil
}

// LookupUID reports existence and blacklist status of one uid node.
func (s *Neo4jService) LookupUID(ctx context.Context, uidKey string) (bool, bool, error) {
	query := `
		MATCH (u:uid {uid_key: $uid_key})
		RETURN COALESCE(u.status = 'blacklisted', false) AS blacklisted
	`

	records, err := s.ExecuteReadQuery(ctx, query, map[string]any{"uid_key": uidKey})
	if err != nil {
		return false, false, fmt.Errorf("uid lookup for %q: %w", uidKey, err)
	}
	if len(records) == 0 {
		return false, false, nil
	}

	blacklisted, ok := records[0].Get("blacklisted")
	if !ok {
		return false, false, fmt.Errorf("uid lookup for %q returned no status column", uidKey)
	}
	flag, ok := blacklisted.(bool)
	if !ok {
		return false, false, fmt.Errorf("unexpected type for blacklisted: %T", blacklisted)
	}
	return true, flag, nil
}

// NodeNeighbors enumerates the attribute snapshots of every neighbor of
// (label, key). The label is checked against the closed catalog before it
// is spliced into the query text; key values travel as parameters.
func (s *Neo4jService) NodeNeighbors(ctx context.Context, label model.NodeLabel, key string) ([]model.NodeAttributes, error) {
	if !model.KnownLabel(label) {
		return nil, fmt.Errorf("label %q outside the node catalog", label)
	}

	query := fmt.Sprintf(`
		MATCH (n:%s {%s: $key})--(m)
		RETURN labels(m)[0] AS label,
		       CASE WHEN labels(m)[0] = 'uid' THEN m.uid_key ELSE m.key END AS key,
		       m.status AS status,
		       COALESCE(m.associated_uid_count, 0) AS associated_uid_count
	`, label, keyProperty(label))

	records, err := s.ExecuteReadQuery(ctx, query, map[string]any{"key": key})
	if err != nil {
		return nil, fmt.Errorf("neighbor query for %s %q: %w", label, key, err)
	}

	neighbors := make([]model.NodeAttributes, 0, len(records))
	for _, record := range records {
		attrs, err := recordToAttributes(record)
		if err != nil {
			s.logger.Warn("skipping unreadable neighbor record", "of", key, "error", err)
			continue
		}
		neighbors = append(neighbors, attrs)
	}
	return neighbors, nil
}

// ListUIDs returns uid seeds for batch discovery.
func (s *Neo4jService) ListUIDs(ctx context.Context, limit int) ([]model.Seed, error) {
	query := `
		MATCH (u:uid)
		RETURN u.uid_key AS uid_key,
		       COALESCE(u.status = 'blacklisted', false) AS blacklisted
	`
	params := map[string]any{}
	if limit > 0 {
		query += " LIMIT $limit"
		params["limit"] = limit
	}

	records, err := s.ExecuteReadQuery(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("uid listing: %w", err)
	}

	seeds := make([]model.Seed, 0, len(records))
	for _, record := range records {
		uidKey, ok := record.Get("uid_key")
		if !ok {
			continue
		}
		keyStr, ok := uidKey.(string)
		if !ok || keyStr == "" {
			continue
		}
		blacklisted, _ := record.Get("blacklisted")
		flag, _ := blacklisted.(bool)
		seeds = append(seeds, model.Seed{UIDKey: keyStr, IsBlacklisted: flag})
	}

	s.logger.Info("listed uid seeds", "count", len(seeds), "limit", limit)
	return seeds, nil
}

// ExecuteReadQuery runs a read query against the configured database with
// reader routing.
func (s *Neo4jService) ExecuteReadQuery(ctx context.Context, query string, params map[string]any) ([]*neo4j.Record, error) {
	result, err := neo4j.ExecuteQuery(ctx, s.driver, query, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(s.database),
		neo4j.ExecuteQueryWithReadersRouting())
	if err != nil {
		return nil, fmt.Errorf("read query failed: %w", err)
	}
	return result.Records, nil
}

// RecordsToJSON renders records as a JSON array of column maps.
func (s *Neo4jService) RecordsToJSON(records []*neo4j.Record) (string, error) {
	maps := make([]map[string]any, 0, len(records))
	for _, record := range records {
		maps = append(maps, record.AsMap())
	}
	data, err := json.Marshal(maps)
	if err != nil {
		return "", fmt.Errorf("failed to marshal records: %w", err)
	}
	return string(data), nil
}

// recordToAttributes converts one neighbor row into a node snapshot. Neo4j
// returns integers as int64 and missing properties as nil.
func recordToAttributes(record *neo4j.Record) (model.NodeAttributes, error) {
	var attrs model.NodeAttributes

	label, ok := record.Get("label")
	if !ok {
		return attrs, fmt.Errorf("record has no label column")
	}
	labelStr, ok := label.(string)
	if !ok {
		return attrs, fmt.Errorf("unexpected type for label: %T", label)
	}
	attrs.Label = model.NodeLabel(labelStr)

	key, ok := record.Get("key")
	if !ok {
		return attrs, fmt.Errorf("record has no key column")
	}
	if keyStr, ok := key.(string); ok {
		attrs.Key = keyStr
	} else {
		return attrs, fmt.Errorf("unexpected type for key: %T", key)
	}

	if status, ok := record.Get("status"); ok && status != nil {
		if statusStr, ok := status.(string); ok {
			attrs.Status = statusStr
		}
	}

	if count, ok := record.Get("associated_uid_count"); ok && count != nil {
		countInt, ok := count.(int64)
		if !ok {
			return attrs, fmt.Errorf("unexpected type for associated_uid_count: %T", count)
		}
		attrs.AssociatedUIDCount = int(countInt)
	}

	return attrs, nil
}
