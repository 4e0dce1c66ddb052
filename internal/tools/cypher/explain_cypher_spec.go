package cypher

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type ExplainCypherInput struct {
	Query    string `json:"query" jsonschema:"description=The Cypher query to explain"`
	Database string `json:"database,omitempty" jsonschema:"description=Database name (overrides the configured default)"`
}

func ExplainCypherSpec() mcp.Tool {
	return mcp.NewTool("explain_neo4j_cypher",
		mcp.WithDescription("Explain a Cypher query execution plan without executing the query"),
		mcp.WithInputSchema[ExplainCypherInput](),
		mcp.WithTitleAnnotation("Explain Cypher"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
