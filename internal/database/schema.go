package database

import (
	"context"

	"github.com/graphstack/neo4j-mcp-server/internal/query"
)

// endpointSampleSize bounds the edges sampled per relationship type when
// deriving endpoint label pairs.
const endpointSampleSize = 5

// apocSchemaQuery is the meta-procedure used for detailed schema reflection
// when APOC is installed.
const apocSchemaQuery = `CALL apoc.meta.schema() YIELD value RETURN value`

// Schema describes node labels with their observed property names and the
// relationship types with their observed endpoint label pairs. The schema is
// empirically derived: relationship endpoints come from a bounded sample, so
// rare label combinations can be under-reported.
type Schema struct {
	Nodes         map[string]NodeSchema `json:"nodes"`
	Relationships []RelationshipSchema  `json:"relationships"`
}

// NodeSchema lists the property names observed on nodes of one label.
type NodeSchema struct {
	Properties map[string]PropertySchema `json:"properties"`
}

// PropertySchema describes one observed property. This layer does no type
// inference, so Type is always "unknown".
type PropertySchema struct {
	Type string `json:"type"`
}

// RelationshipSchema is one observed (type, source label, target label)
// combination.
type RelationshipSchema struct {
	Type   string `json:"type"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// GetSchema attempts the apoc.meta.schema() meta-procedure and returns its
// value verbatim. On any failure (missing procedure, permissions) it falls
// back to GetBasicSchema; the fallback is logged at info level, never
// surfaced as an error.
func (s *Neo4jService) GetSchema(ctx context.Context) (any, error) {
	rows, err := s.RunQuery(ctx, apocSchemaQuery, nil, "")
	if err != nil {
		s.log.Info("APOC not available, falling back to basic schema reflection", "reason", err)
		return s.GetBasicSchema(ctx)
	}
	if len(rows) == 0 {
		return map[string]any{}, nil
	}
	return rows[0]["value"], nil
}

// GetBasicSchema assembles the schema from the engine's introspection
// procedures: every node label with the union of its observed property
// names, and every relationship type with the distinct endpoint label pairs
// observed across a sample of up to 5 edges. A type with no sampled edges
// contributes no entries.
func (s *Neo4jService) GetBasicSchema(ctx context.Context) (*Schema, error) {
	schema := &Schema{
		Nodes:         make(map[string]NodeSchema),
		Relationships: make([]RelationshipSchema, 0),
	}

	labels, err := s.GetNodeLabels(ctx)
	if err != nil {
		return nil, err
	}
	for _, label := range labels {
		node := NodeSchema{Properties: make(map[string]PropertySchema)}
		rows, err := s.RunQuery(ctx, query.LabelProperties(label), nil, "")
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			if prop, ok := row["property"].(string); ok {
				node.Properties[prop] = PropertySchema{Type: "unknown"}
			}
		}
		schema.Nodes[label] = node
	}

	relTypes, err := s.GetRelationshipTypes(ctx)
	if err != nil {
		return nil, err
	}
	for _, relType := range relTypes {
		rows, err := s.RunQuery(ctx, query.RelationshipEndpoints(relType, endpointSampleSize), nil, "")
		if err != nil {
			return nil, err
		}

		// One entry per distinct (source, target) pair per type, not per edge.
		seen := make(map[string]bool)
		for _, row := range rows {
			for _, source := range toStrings(row["source_labels"]) {
				for _, target := range toStrings(row["target_labels"]) {
					key := source + "\x00" + target
					if seen[key] {
						continue
					}
					seen[key] = true
					schema.Relationships = append(schema.Relationships, RelationshipSchema{
						Type:   relType,
						Source: source,
						Target: target,
					})
				}
			}
		}
	}

	return schema, nil
}

func toStrings(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
