package paths

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/graphstack/neo4j-mcp-server/internal/tools"
)

const (
	defaultPathDepth     = 3
	defaultShortestDepth = 5
	defaultPathLimit     = 5
)

type FindPathsInput struct {
	StartLabel      string       `json:"start_label" jsonschema:"description=The label of the start node"`
	StartProperties tools.Params `json:"start_properties" jsonschema:"description=Equality conditions for the start node"`
	EndLabel        string       `json:"end_label" jsonschema:"description=The label of the end node"`
	EndProperties   tools.Params `json:"end_properties" jsonschema:"description=Equality conditions for the end node"`
	MaxDepth        int          `json:"max_depth,omitempty" jsonschema:"default=3,description=Maximum path depth"`
	Limit           int          `json:"limit,omitempty" jsonschema:"default=5,description=Maximum number of paths to return"`
}

type ShortestPathInput struct {
	StartLabel        string       `json:"start_label" jsonschema:"description=The label of the start node"`
	StartProperties   tools.Params `json:"start_properties" jsonschema:"description=Equality conditions for the start node"`
	EndLabel          string       `json:"end_label" jsonschema:"description=The label of the end node"`
	EndProperties     tools.Params `json:"end_properties" jsonschema:"description=Equality conditions for the end node"`
	RelationshipTypes []string     `json:"relationship_types,omitempty" jsonschema:"description=Specific relationship types to consider (optional)"`
	MaxDepth          int          `json:"max_depth,omitempty" jsonschema:"default=5,description=Maximum path depth"`
}

type AllPathsInput struct {
	StartLabel        string       `json:"start_label" jsonschema:"description=The label of the start node"`
	StartProperties   tools.Params `json:"start_properties" jsonschema:"description=Equality conditions for the start node"`
	EndLabel          string       `json:"end_label" jsonschema:"description=The label of the end node"`
	EndProperties     tools.Params `json:"end_properties" jsonschema:"description=Equality conditions for the end node"`
	RelationshipTypes []string     `json:"relationship_types,omitempty" jsonschema:"description=Specific relationship types to consider (optional)"`
	MaxDepth          int          `json:"max_depth,omitempty" jsonschema:"default=3,description=Maximum path depth"`
	Limit             int          `json:"limit,omitempty" jsonschema:"default=5,description=Maximum number of paths to return"`
}

func FindPathsSpec() mcp.Tool {
	return mcp.NewTool("find_paths",
		mcp.WithDescription("Find paths between nodes in the database"),
		mcp.WithInputSchema[FindPathsInput](),
		mcp.WithTitleAnnotation("Find Paths"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

func ShortestPathSpec() mcp.Tool {
	return mcp.NewTool("find_shortest_path",
		mcp.WithDescription("Find the shortest path between two nodes"),
		mcp.WithInputSchema[ShortestPathInput](),
		mcp.WithTitleAnnotation("Find Shortest Path"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

func AllPathsSpec() mcp.Tool {
	return mcp.NewTool("find_all_paths",
		mcp.WithDescription("Find all shortest paths between two nodes"),
		mcp.WithInputSchema[AllPathsInput](),
		mcp.WithTitleAnnotation("Find All Paths"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
