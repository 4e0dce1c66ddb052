package schema

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func DatabaseInfoSpec() mcp.Tool {
	return mcp.NewTool("get_database_info",
		mcp.WithDescription("Get information about the Neo4j database, including version, edition, and address"),
		mcp.WithTitleAnnotation("Get Database Info"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
