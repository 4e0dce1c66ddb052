package paths

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/graphstack/neo4j-mcp-server/internal/query"
	"github.com/graphstack/neo4j-mcp-server/internal/tools"
)

func FindPathsHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args FindPathsInput
		if err := tools.BindArguments(request, &args); err != nil {
			deps.Log.Error("error binding arguments", "tool", "find_paths", "error", err)
			return tools.ValidationError(err.Error()), nil
		}

		if args.StartLabel == "" || args.EndLabel == "" {
			return tools.ValidationError("Start and end labels are required"), nil
		}
		if args.MaxDepth <= 0 {
			args.MaxDepth = defaultPathDepth
		}
		if args.Limit <= 0 {
			args.Limit = defaultPathLimit
		}

		cypher := query.FindPaths(query.PathQuery{
			StartLabel:      args.StartLabel,
			StartProperties: args.StartProperties,
			EndLabel:        args.EndLabel,
			EndProperties:   args.EndProperties,
			MaxDepth:        args.MaxDepth,
			Limit:           args.Limit,
		})
		deps.Log.Debug("executing path search", "query", cypher)

		rows, err := deps.DBService.RunQuery(ctx, cypher, nil, "")
		if err != nil {
			deps.Log.Error("failed to find paths", "error", err)
			return tools.ExecError(err), nil
		}
		return tools.JSONResult(collectPaths(rows)), nil
	}
}

// ShortestPathHandler returns a single path object rather than a list.
func ShortestPathHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ShortestPathInput
		if err := tools.BindArguments(request, &args); err != nil {
			deps.Log.Error("error binding arguments", "tool", "find_shortest_path", "error", err)
			return tools.ValidationError(err.Error()), nil
		}

		if args.StartLabel == "" || args.EndLabel == "" {
			return tools.ValidationError("Start and end labels are required"), nil
		}
		if args.MaxDepth <= 0 {
			args.MaxDepth = defaultShortestDepth
		}

		cypher := query.ShortestPath(query.PathQuery{
			StartLabel:      args.StartLabel,
			StartProperties: args.StartProperties,
			EndLabel:        args.EndLabel,
			EndProperties:   args.EndProperties,
			RelTypes:        args.RelationshipTypes,
			MaxDepth:        args.MaxDepth,
		})
		deps.Log.Debug("executing shortest path search", "query", cypher)

		rows, err := deps.DBService.RunQuery(ctx, cypher, nil, "")
		if err != nil {
			deps.Log.Error("failed to find shortest path", "error", err)
			return tools.ExecError(err), nil
		}
		if len(rows) == 0 {
			return mcp.NewToolResultText("No path found"), nil
		}
		return tools.JSONResult(rows[0]["path"]), nil
	}
}

func AllPathsHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args AllPathsInput
		if err := tools.BindArguments(request, &args); err != nil {
			deps.Log.Error("error binding arguments", "tool", "find_all_paths", "error", err)
			return tools.ValidationError(err.Error()), nil
		}

		if args.StartLabel == "" || args.EndLabel == "" {
			return tools.ValidationError("Start and end labels are required"), nil
		}
		if args.MaxDepth <= 0 {
			args.MaxDepth = defaultPathDepth
		}
		if args.Limit <= 0 {
			args.Limit = defaultPathLimit
		}

		cypher := query.AllShortestPaths(query.PathQuery{
			StartLabel:      args.StartLabel,
			StartProperties: args.StartProperties,
			EndLabel:        args.EndLabel,
			EndProperties:   args.EndProperties,
			RelTypes:        args.RelationshipTypes,
			MaxDepth:        args.MaxDepth,
			Limit:           args.Limit,
		})
		deps.Log.Debug("executing all paths search", "query", cypher)

		rows, err := deps.DBService.RunQuery(ctx, cypher, nil, "")
		if err != nil {
			deps.Log.Error("failed to find paths", "error", err)
			return tools.ExecError(err), nil
		}
		return tools.JSONResult(collectPaths(rows)), nil
	}
}

func collectPaths(rows []map[string]any) []any {
	paths := make([]any, 0, len(rows))
	for _, row := range rows {
		if p, ok := row["path"]; ok {
			paths = append(paths, p)
		}
	}
	return paths
}
