package stats

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func DatabaseStatisticsSpec() mcp.Tool {
	return mcp.NewTool("get_database_statistics",
		mcp.WithDescription("Get statistics about the Neo4j database, including node and relationship counts"),
		mcp.WithTitleAnnotation("Get Database Statistics"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

func NodeCountsByLabelSpec() mcp.Tool {
	return mcp.NewTool("get_node_counts_by_label",
		mcp.WithDescription("Get the number of nodes for each label in the database"),
		mcp.WithTitleAnnotation("Get Node Counts By Label"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

func RelationshipCountsByTypeSpec() mcp.Tool {
	return mcp.NewTool("get_relationship_counts_by_type",
		mcp.WithDescription("Get the number of relationships for each type in the database"),
		mcp.WithTitleAnnotation("Get Relationship Counts By Type"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
