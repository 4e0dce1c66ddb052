package cypher

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/graphstack/neo4j-mcp-server/internal/tools"
)

type WriteCypherInput struct {
	Query    string       `json:"query" jsonschema:"description=The Cypher update query to execute"`
	Params   tools.Params `json:"params,omitempty" jsonschema:"default={},description=Parameters for the query"`
	Database string       `json:"database,omitempty" jsonschema:"description=Database name (overrides the configured default)"`
}

func WriteCypherSpec() mcp.Tool {
	return mcp.NewTool("write_neo4j_cypher",
		mcp.WithDescription("Execute updating Cypher queries to modify the database; returns the mutation counters instead of rows"),
		mcp.WithInputSchema[WriteCypherInput](),
		mcp.WithTitleAnnotation("Write Cypher"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
