package database

import (
	"context"

	"github.com/graphstack/neo4j-mcp-server/internal/query"
)

// DatabaseInfo reports the server version and edition alongside the
// configured database name and address.
type DatabaseInfo struct {
	Version      string `json:"version"`
	Edition      string `json:"edition"`
	DatabaseName string `json:"database_name"`
	Address      string `json:"address"`
}

// GetDatabaseInfo queries dbms.components() for version and edition. A
// failure to read components degrades to empty version fields rather than an
// error, so the tool still reports the address and database name.
func (s *Neo4jService) GetDatabaseInfo(ctx context.Context) (*DatabaseInfo, error) {
	info := &DatabaseInfo{
		DatabaseName: s.database,
		Address:      s.uri,
	}

	rows, err := s.RunQuery(ctx, "CALL dbms.components() YIELD name, versions, edition RETURN name, versions, edition", nil, "")
	if err != nil {
		s.log.Warn("could not read database components", "error", err)
		return info, nil
	}
	if len(rows) > 0 {
		if versions := toStrings(rows[0]["versions"]); len(versions) > 0 {
			info.Version = versions[0]
		}
		if edition, ok := rows[0]["edition"].(string); ok {
			info.Edition = edition
		}
	}
	return info, nil
}

// GetNodeCount returns the total number of nodes in the database.
func (s *Neo4jService) GetNodeCount(ctx context.Context) (int64, error) {
	return s.countQuery(ctx, "MATCH (n) RETURN count(n) AS count")
}

// GetRelationshipCount returns the total number of relationships in the database.
func (s *Neo4jService) GetRelationshipCount(ctx context.Context) (int64, error) {
	return s.countQuery(ctx, "MATCH ()-[r]->() RETURN count(r) AS count")
}

func (s *Neo4jService) countQuery(ctx context.Context, cypher string) (int64, error) {
	rows, err := s.RunQuery(ctx, cypher, nil, "")
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	count, _ := rows[0]["count"].(int64)
	return count, nil
}

// GetNodeLabels returns all node labels in the database.
func (s *Neo4jService) GetNodeLabels(ctx context.Context) ([]string, error) {
	return s.stringColumn(ctx, "CALL db.labels() YIELD label RETURN label", "label")
}

// GetRelationshipTypes returns all relationship types in the database.
func (s *Neo4jService) GetRelationshipTypes(ctx context.Context) ([]string, error) {
	return s.stringColumn(ctx, "CALL db.relationshipTypes() YIELD relationshipType RETURN relationshipType", "relationshipType")
}

func (s *Neo4jService) stringColumn(ctx context.Context, cypher, key string) ([]string, error) {
	rows, err := s.RunQuery(ctx, cypher, nil, "")
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		if v, ok := row[key].(string); ok {
			values = append(values, v)
		}
	}
	return values, nil
}

// GetIndexes lists all indexes in the database.
func (s *Neo4jService) GetIndexes(ctx context.Context) ([]map[string]any, error) {
	return s.RunQuery(ctx, "SHOW INDEXES YIELD name, labelsOrTypes, properties, type RETURN name, labelsOrTypes, properties, type", nil, "")
}

// GetConstraints lists all constraints in the database.
func (s *Neo4jService) GetConstraints(ctx context.Context) ([]map[string]any, error) {
	return s.RunQuery(ctx, "SHOW CONSTRAINTS YIELD name, labelsOrTypes, properties, type RETURN name, labelsOrTypes, properties, type", nil, "")
}

// GetSampleData collects up to limit nodes per label. When labels is empty,
// every label in the database is sampled.
func (s *Neo4jService) GetSampleData(ctx context.Context, labels []string, limit int) (map[string][]map[string]any, error) {
	if len(labels) == 0 {
		all, err := s.GetNodeLabels(ctx)
		if err != nil {
			return nil, err
		}
		labels = all
	}

	samples := make(map[string][]map[string]any, len(labels))
	for _, label := range labels {
		rows, err := s.RunQuery(ctx, query.SampleByLabel(label, limit), nil, "")
		if err != nil {
			return nil, err
		}
		nodes := make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			if node, ok := row["n"].(map[string]any); ok {
				nodes = append(nodes, node)
			}
		}
		samples[label] = nodes
	}
	return samples, nil
}
