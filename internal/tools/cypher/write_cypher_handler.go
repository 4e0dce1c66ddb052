package cypher

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/graphstack/neo4j-mcp-server/internal/tools"
)

func WriteCypherHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleWriteCypher(ctx, request, deps)
	}
}

func handleWriteCypher(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	var args WriteCypherInput
	if err := tools.BindArguments(request, &args); err != nil {
		deps.Log.Error("error binding arguments", "tool", "write_neo4j_cypher", "error", err)
		return tools.ValidationError(err.Error()), nil
	}

	if args.Query == "" {
		return tools.ValidationError("Query parameter is required and cannot be empty"), nil
	}

	deps.Log.Info("executing write cypher query", "query", args.Query)

	counters, err := deps.DBService.RunWriteQuery(ctx, args.Query, args.Params, args.Database)
	if err != nil {
		deps.Log.Error("error executing write cypher query", "error", err)
		return tools.ExecError(err), nil
	}

	return tools.JSONResult(counters), nil
}
