package schema

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/graphstack/neo4j-mcp-server/internal/tools"
)

func GetSchemaHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetSchema(ctx, request, deps)
	}
}

func handleGetSchema(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	var args GetSchemaInput
	if err := tools.BindArguments(request, &args); err != nil {
		deps.Log.Error("error binding arguments", "tool", "get_neo4j_schema", "error", err)
		return tools.ValidationError(err.Error()), nil
	}

	deps.Log.Debug("retrieving schema from the database", "detailed", args.Detailed)

	if args.Detailed {
		// Meta-procedure with silent fallback to manual reflection.
		result, err := deps.DBService.GetSchema(ctx)
		if err != nil {
			deps.Log.Error("failed to retrieve schema", "error", err)
			return tools.ExecError(err), nil
		}
		return tools.JSONResult(result), nil
	}

	result, err := deps.DBService.GetBasicSchema(ctx)
	if err != nil {
		deps.Log.Error("failed to retrieve basic schema", "error", err)
		return tools.ExecError(err), nil
	}
	return tools.JSONResult(result), nil
}
