package admin

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type CreateIndexInput struct {
	Label      string   `json:"label" jsonschema:"description=The node label to create the index on"`
	Properties []string `json:"properties" jsonschema:"description=The properties to include in the index"`
	Name       string   `json:"name,omitempty" jsonschema:"description=The name of the index (optional)"`
	Type       string   `json:"type,omitempty" jsonschema:"description=The type of index (e.g. 'RANGE'\\, 'TEXT'\\, 'POINT'\\, 'FULLTEXT'\\, 'LOOKUP'),enum=RANGE,enum=TEXT,enum=POINT,enum=FULLTEXT,enum=LOOKUP"`
}

type DropIndexInput struct {
	Name string `json:"name" jsonschema:"description=The name of the index to drop"`
}

type CreateConstraintInput struct {
	Label    string `json:"label" jsonschema:"description=The node label to create the constraint on"`
	Property string `json:"property" jsonschema:"description=The property to create the constraint on"`
	Type     string `json:"type" jsonschema:"description=The type of constraint (e.g. 'UNIQUE'\\, 'EXISTS'\\, 'NODE_KEY'),enum=UNIQUE,enum=EXISTS,enum=NODE_KEY"`
	Name     string `json:"name,omitempty" jsonschema:"description=The name of the constraint (optional)"`
}

type DropConstraintInput struct {
	Name string `json:"name" jsonschema:"description=The name of the constraint to drop"`
}

func GetIndexesSpec() mcp.Tool {
	return mcp.NewTool("get_indexes",
		mcp.WithDescription("Get all indexes in the database"),
		mcp.WithTitleAnnotation("Get Indexes"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

func GetConstraintsSpec() mcp.Tool {
	return mcp.NewTool("get_constraints",
		mcp.WithDescription("Get all constraints in the database"),
		mcp.WithTitleAnnotation("Get Constraints"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

func CreateIndexSpec() mcp.Tool {
	return mcp.NewTool("create_index",
		mcp.WithDescription("Create a new index in the database"),
		mcp.WithInputSchema[CreateIndexInput](),
		mcp.WithTitleAnnotation("Create Index"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

func DropIndexSpec() mcp.Tool {
	return mcp.NewTool("drop_index",
		mcp.WithDescription("Drop an index from the database"),
		mcp.WithInputSchema[DropIndexInput](),
		mcp.WithTitleAnnotation("Drop Index"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

func CreateConstraintSpec() mcp.Tool {
	return mcp.NewTool("create_constraint",
		mcp.WithDescription("Create a new constraint in the database"),
		mcp.WithInputSchema[CreateConstraintInput](),
		mcp.WithTitleAnnotation("Create Constraint"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

func DropConstraintSpec() mcp.Tool {
	return mcp.NewTool("drop_constraint",
		mcp.WithDescription("Drop a constraint from the database"),
		mcp.WithInputSchema[DropConstraintInput](),
		mcp.WithTitleAnnotation("Drop Constraint"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
