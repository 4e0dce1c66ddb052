package schema

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetSchemaInput struct {
	Detailed bool `json:"detailed,omitempty" jsonschema:"default=false,description=Whether to use the APOC meta-procedure for detailed schema information"`
}

func GetSchemaSpec() mcp.Tool {
	return mcp.NewTool("get_neo4j_schema",
		mcp.WithDescription("Get a list of all node labels in the graph database, their observed property names, and relationship types with their endpoint labels"),
		mcp.WithInputSchema[GetSchemaInput](),
		mcp.WithTitleAnnotation("Get Neo4j Schema"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
