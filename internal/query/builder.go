// Package query builds Cypher query text from caller-supplied tool arguments.
//
// Labels, relationship types, and property keys cannot be parameter-bound in
// Cypher, and this adapter additionally interpolates property values as
// literals for compatibility with the tool surface it replaces. Identifiers
// and values are accepted verbatim, so callers of this package are trusted.
// Keeping all interpolation in one package keeps that surface auditable.
package query

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// FormatLiteral renders a property value as a Cypher literal. Strings are
// single-quoted with embedded quotes and backslashes escaped; every other
// value is emitted bare.
func FormatLiteral(value any) string {
	if s, ok := value.(string); ok {
		escaped := strings.ReplaceAll(s, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, "'", `\'`)
		return "'" + escaped + "'"
	}
	return fmt.Sprintf("%v", value)
}

// Conditions renders a conjunction of equality terms for the given alias,
// one per property key, in sorted key order. Returns "true" when the
// property map is empty so the result can always follow a WHERE.
func Conditions(alias string, properties map[string]any) string {
	if len(properties) == 0 {
		return "true"
	}
	keys := make([]string, 0, len(properties))
	for key := range properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	terms := make([]string, 0, len(keys))
	for _, key := range keys {
		terms = append(terms, fmt.Sprintf("%s.%s = %s", alias, key, FormatLiteral(properties[key])))
	}
	return strings.Join(terms, " AND ")
}

// FindNodes builds a node lookup on a single label with equality filters.
func FindNodes(label string, properties map[string]any, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "MATCH (n:%s)", label)
	if len(properties) > 0 {
		fmt.Fprintf(&b, " WHERE %s", Conditions("n", properties))
	}
	fmt.Fprintf(&b, " RETURN n LIMIT %d", limit)
	return b.String()
}

// FindRelationships builds a relationship lookup on a single type with
// optional endpoint labels and equality filters on the relationship.
func FindRelationships(relType, sourceLabel, targetLabel string, properties map[string]any, limit int) string {
	sourcePattern := "(source)"
	if sourceLabel != "" {
		sourcePattern = fmt.Sprintf("(source:%s)", sourceLabel)
	}
	targetPattern := "(target)"
	if targetLabel != "" {
		targetPattern = fmt.Sprintf("(target:%s)", targetLabel)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "MATCH %s-[r:%s]->%s", sourcePattern, relType, targetPattern)
	if len(properties) > 0 {
		fmt.Fprintf(&b, " WHERE %s", Conditions("r", properties))
	}
	fmt.Fprintf(&b, " RETURN source, r, target LIMIT %d", limit)
	return b.String()
}

// PathQuery carries the arguments shared by the path-finding builders.
type PathQuery struct {
	StartLabel      string
	StartProperties map[string]any
	EndLabel        string
	EndProperties   map[string]any
	RelTypes        []string
	MaxDepth        int
	Limit           int
}

// relPattern renders the variable-length relationship pattern. The type
// filter is applied exactly when a non-empty type list is supplied.
func (p PathQuery) relPattern() string {
	if len(p.RelTypes) > 0 {
		return fmt.Sprintf("[:%s*1..%d]", strings.Join(p.RelTypes, "|"), p.MaxDepth)
	}
	return fmt.Sprintf("[*1..%d]", p.MaxDepth)
}

func (p PathQuery) endpointClauses() string {
	return fmt.Sprintf("MATCH (start:%s), (end:%s)\nWHERE %s\nAND %s",
		p.StartLabel, p.EndLabel,
		Conditions("start", p.StartProperties),
		Conditions("end", p.EndProperties))
}

// FindPaths builds a variable-length path query between two endpoint sets.
func FindPaths(p PathQuery) string {
	return fmt.Sprintf("%s\nMATCH path = (start)-%s->(end)\nRETURN path\nLIMIT %d",
		p.endpointClauses(), p.relPattern(), p.Limit)
}

// ShortestPath builds a shortestPath query between two endpoint sets.
func ShortestPath(p PathQuery) string {
	return fmt.Sprintf("%s\nMATCH path = shortestPath((start)-%s->(end))\nRETURN path",
		p.endpointClauses(), p.relPattern())
}

// AllShortestPaths builds an allShortestPaths query between two endpoint sets.
func AllShortestPaths(p PathQuery) string {
	return fmt.Sprintf("%s\nMATCH path = allShortestPaths((start)-%s->(end))\nRETURN path\nLIMIT %d",
		p.endpointClauses(), p.relPattern(), p.Limit)
}

// ValidIndexTypes lists the index types accepted by CreateIndex.
var ValidIndexTypes = []string{"RANGE", "TEXT", "POINT", "FULLTEXT", "LOOKUP"}

// CreateIndex builds an index DDL statement. An empty indexType leaves the
// choice to the server; an empty name lets the server generate one.
func CreateIndex(label string, properties []string, name, indexType string) (string, error) {
	if label == "" || len(properties) == 0 {
		return "", fmt.Errorf("label and properties are required")
	}
	if indexType != "" && !slices.Contains(ValidIndexTypes, indexType) {
		return "", fmt.Errorf("unknown index type: %s", indexType)
	}

	props := make([]string, 0, len(properties))
	for _, prop := range properties {
		props = append(props, "n."+prop)
	}
	propsStr := strings.Join(props, ", ")

	var b strings.Builder
	b.WriteString("CREATE ")
	if indexType != "" {
		b.WriteString(indexType + " ")
	}
	b.WriteString("INDEX ")
	if name != "" {
		b.WriteString(name + " ")
	}
	fmt.Fprintf(&b, "FOR (n:%s) ON (%s)", label, propsStr)
	return b.String(), nil
}

// DropIndex builds a DROP INDEX statement for a named index.
func DropIndex(name string) string {
	return fmt.Sprintf("DROP INDEX %s", name)
}

// ValidConstraintTypes lists the constraint types accepted by CreateConstraint.
var ValidConstraintTypes = []string{"UNIQUE", "EXISTS", "NODE_KEY"}

// CreateConstraint builds a constraint DDL statement for one label/property.
func CreateConstraint(label, property, name, constraintType string) (string, error) {
	if label == "" || property == "" || constraintType == "" {
		return "", fmt.Errorf("label, property, and type are required")
	}

	var requirement string
	switch constraintType {
	case "UNIQUE":
		requirement = "IS UNIQUE"
	case "EXISTS":
		requirement = "IS NOT NULL"
	case "NODE_KEY":
		requirement = "IS NODE KEY"
	default:
		return "", fmt.Errorf("unknown constraint type: %s", constraintType)
	}

	var b strings.Builder
	b.WriteString("CREATE CONSTRAINT ")
	if name != "" {
		b.WriteString(name + " ")
	}
	fmt.Fprintf(&b, "FOR (n:%s) REQUIRE n.%s %s", label, property, requirement)
	return b.String(), nil
}

// DropConstraint builds a DROP CONSTRAINT statement for a named constraint.
func DropConstraint(name string) string {
	return fmt.Sprintf("DROP CONSTRAINT %s", name)
}

// NodeCountByLabel builds a count query for one label.
func NodeCountByLabel(label string) string {
	return fmt.Sprintf("MATCH (n:%s) RETURN count(n) AS count", label)
}

// RelationshipCountByType builds a count query for one relationship type.
func RelationshipCountByType(relType string) string {
	return fmt.Sprintf("MATCH ()-[r:%s]->() RETURN count(r) AS count", relType)
}

// LabelProperties builds the distinct-property-keys query for one label.
func LabelProperties(label string) string {
	return fmt.Sprintf("MATCH (n:%s) UNWIND keys(n) AS property RETURN DISTINCT property", label)
}

// RelationshipEndpoints builds the bounded endpoint-label sample query for
// one relationship type.
func RelationshipEndpoints(relType string, sampleSize int) string {
	return fmt.Sprintf(
		"MATCH (source)-[r:%s]->(target) RETURN DISTINCT labels(source) AS source_labels, labels(target) AS target_labels LIMIT %d",
		relType, sampleSize)
}

// SampleByLabel builds a bounded node sample query for one label.
func SampleByLabel(label string, limit int) string {
	return fmt.Sprintf("MATCH (n:%s) RETURN n LIMIT %d", label, limit)
}

// Explain wraps a query in EXPLAIN so the server returns the plan without
// executing the statement.
func Explain(cypher string) string {
	return "EXPLAIN " + cypher
}
