package schema

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/graphstack/neo4j-mcp-server/internal/tools"
)

func DatabaseInfoHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		info, err := deps.DBService.GetDatabaseInfo(ctx)
		if err != nil {
			deps.Log.Error("failed to retrieve database info", "error", err)
			return tools.ExecError(err), nil
		}
		return tools.JSONResult(info), nil
	}
}
