package explore

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/graphstack/neo4j-mcp-server/internal/tools"
)

const defaultLimit = 10

type FindNodesInput struct {
	Label      string       `json:"label" jsonschema:"description=The node label to search for"`
	Properties tools.Params `json:"properties,omitempty" jsonschema:"description=Equality conditions on node properties"`
	Limit      int          `json:"limit,omitempty" jsonschema:"default=10,description=Maximum number of nodes to return"`
}

type FindRelationshipsInput struct {
	Type        string       `json:"type" jsonschema:"description=The relationship type to search for"`
	SourceLabel string       `json:"source_label,omitempty" jsonschema:"description=The label of the source node (optional)"`
	TargetLabel string       `json:"target_label,omitempty" jsonschema:"description=The label of the target node (optional)"`
	Properties  tools.Params `json:"properties,omitempty" jsonschema:"description=Equality conditions on relationship properties"`
	Limit       int          `json:"limit,omitempty" jsonschema:"default=10,description=Maximum number of relationships to return"`
}

type SampleDataInput struct {
	Limit  int      `json:"limit,omitempty" jsonschema:"default=10,description=Maximum number of nodes per label"`
	Labels []string `json:"labels,omitempty" jsonschema:"description=Specific labels to get sample data for (optional)"`
}

func FindNodesSpec() mcp.Tool {
	return mcp.NewTool("find_nodes",
		mcp.WithDescription("Find nodes in the database based on label and property conditions"),
		mcp.WithInputSchema[FindNodesInput](),
		mcp.WithTitleAnnotation("Find Nodes"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

func FindRelationshipsSpec() mcp.Tool {
	return mcp.NewTool("find_relationships",
		mcp.WithDescription("Find relationships in the database based on type and property conditions"),
		mcp.WithInputSchema[FindRelationshipsInput](),
		mcp.WithTitleAnnotation("Find Relationships"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

func SampleDataSpec() mcp.Tool {
	return mcp.NewTool("get_sample_data",
		mcp.WithDescription("Get sample data for each node label in the database"),
		mcp.WithInputSchema[SampleDataInput](),
		mcp.WithTitleAnnotation("Get Sample Data"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
