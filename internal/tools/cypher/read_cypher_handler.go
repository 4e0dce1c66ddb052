package cypher

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/graphstack/neo4j-mcp-server/internal/tools"
)

func ReadCypherHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleReadCypher(ctx, request, deps)
	}
}

func handleReadCypher(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	var args ReadCypherInput
	if err := tools.BindArguments(request, &args); err != nil {
		deps.Log.Error("error binding arguments", "tool", "read_neo4j_cypher", "error", err)
		return tools.ValidationError(err.Error()), nil
	}

	if args.Query == "" {
		return tools.ValidationError("Query parameter is required and cannot be empty"), nil
	}

	deps.Log.Debug("executing read cypher query", "query", args.Query)

	rows, err := deps.DBService.RunQuery(ctx, args.Query, args.Params, args.Database)
	if err != nil {
		deps.Log.Error("error executing cypher query", "error", err)
		return tools.ExecError(err), nil
	}

	return tools.JSONResult(rows), nil
}
