package cypher

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/graphstack/neo4j-mcp-server/internal/tools"
)

func ExplainCypherHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleExplainCypher(ctx, request, deps)
	}
}

func handleExplainCypher(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	var args ExplainCypherInput
	if err := tools.BindArguments(request, &args); err != nil {
		deps.Log.Error("error binding arguments", "tool", "explain_neo4j_cypher", "error", err)
		return tools.ValidationError(err.Error()), nil
	}

	if args.Query == "" {
		return tools.ValidationError("Query parameter is required and cannot be empty"), nil
	}

	plan, err := deps.DBService.ExplainQuery(ctx, args.Query, args.Database)
	if err != nil {
		deps.Log.Error("error explaining cypher query", "error", err)
		return tools.ExecError(err), nil
	}

	return tools.JSONResult(plan), nil
}
