package database

import (
	"encoding/json"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// RecordsToMaps converts driver records into plain key-value mappings.
// Engine-native entity values are flattened: nodes and relationships become
// their property maps, paths become the uniform nodes/relationships/length
// shape produced by PathToMap.
func RecordsToMaps(records []*neo4j.Record) []map[string]any {
	results := make([]map[string]any, 0, len(records))
	for _, record := range records {
		results = append(results, RecordToMap(record))
	}
	return results
}

// RecordToMap converts one record into a plain key-value mapping keyed by
// return alias.
func RecordToMap(record *neo4j.Record) map[string]any {
	result := make(map[string]any, len(record.Keys))
	for i, key := range record.Keys {
		result[key] = NormalizeValue(record.Values[i])
	}
	return result
}

// NormalizeValue recursively converts driver entity values into JSON-friendly
// plain values. Scalars pass through untouched.
func NormalizeValue(value any) any {
	switch v := value.(type) {
	case dbtype.Node:
		return normalizeMap(v.Props)
	case dbtype.Relationship:
		return normalizeMap(v.Props)
	case dbtype.Path:
		return PathToMap(v)
	case []any:
		normalized := make([]any, len(v))
		for i, item := range v {
			normalized[i] = NormalizeValue(item)
		}
		return normalized
	case map[string]any:
		return normalizeMap(v)
	default:
		return v
	}
}

// PathToMap normalizes a path value to the uniform shape shared by every
// path-finding tool: node property maps, relationship property maps, and the
// edge count as the path length.
func PathToMap(path dbtype.Path) map[string]any {
	nodes := make([]any, 0, len(path.Nodes))
	for _, node := range path.Nodes {
		nodes = append(nodes, normalizeMap(node.Props))
	}
	relationships := make([]any, 0, len(path.Relationships))
	for _, rel := range path.Relationships {
		relationships = append(relationships, normalizeMap(rel.Props))
	}
	return map[string]any{
		"nodes":         nodes,
		"relationships": relationships,
		"length":        len(path.Relationships),
	}
}

func normalizeMap(m map[string]any) map[string]any {
	normalized := make(map[string]any, len(m))
	for key, value := range m {
		normalized[key] = NormalizeValue(value)
	}
	return normalized
}

// ToJSON renders any value as pretty-printed JSON, the payload format shared
// by every tool result.
func ToJSON(value any) (string, error) {
	formatted, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format value as JSON: %w", err)
	}
	return string(formatted), nil
}
