package cypher

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/graphstack/neo4j-mcp-server/internal/tools"
)

type ReadCypherInput struct {
	Query    string       `json:"query" jsonschema:"description=The Cypher query to execute"`
	Params   tools.Params `json:"params,omitempty" jsonschema:"default={},description=Parameters for the query"`
	Database string       `json:"database,omitempty" jsonschema:"description=Database name (overrides the configured default)"`
}

func ReadCypherSpec() mcp.Tool {
	return mcp.NewTool("read_neo4j_cypher",
		mcp.WithDescription("Execute Cypher read queries to read data from the database"),
		mcp.WithInputSchema[ReadCypherInput](),
		mcp.WithTitleAnnotation("Read Cypher"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
