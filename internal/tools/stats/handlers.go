package stats

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/graphstack/neo4j-mcp-server/internal/query"
	"github.com/graphstack/neo4j-mcp-server/internal/tools"
)

func DatabaseStatisticsHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		nodeCount, err := deps.DBService.GetNodeCount(ctx)
		if err != nil {
			deps.Log.Error("failed to count nodes", "error", err)
			return tools.ExecError(err), nil
		}
		relCount, err := deps.DBService.GetRelationshipCount(ctx)
		if err != nil {
			deps.Log.Error("failed to count relationships", "error", err)
			return tools.ExecError(err), nil
		}
		info, err := deps.DBService.GetDatabaseInfo(ctx)
		if err != nil {
			deps.Log.Error("failed to retrieve database info", "error", err)
			return tools.ExecError(err), nil
		}

		return tools.JSONResult(map[string]any{
			"node_count":         nodeCount,
			"relationship_count": relCount,
			"database_info":      info,
		}), nil
	}
}

func NodeCountsByLabelHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		labels, err := deps.DBService.GetNodeLabels(ctx)
		if err != nil {
			deps.Log.Error("failed to list node labels", "error", err)
			return tools.ExecError(err), nil
		}

		counts := make(map[string]int64, len(labels))
		for _, label := range labels {
			rows, err := deps.DBService.RunQuery(ctx, query.NodeCountByLabel(label), nil, "")
			if err != nil {
				deps.Log.Error("failed to count nodes for label", "label", label, "error", err)
				return tools.ExecError(err), nil
			}
			counts[label] = firstCount(rows)
		}
		return tools.JSONResult(counts), nil
	}
}

func RelationshipCountsByTypeHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		relTypes, err := deps.DBService.GetRelationshipTypes(ctx)
		if err != nil {
			deps.Log.Error("failed to list relationship types", "error", err)
			return tools.ExecError(err), nil
		}

		counts := make(map[string]int64, len(relTypes))
		for _, relType := range relTypes {
			rows, err := deps.DBService.RunQuery(ctx, query.RelationshipCountByType(relType), nil, "")
			if err != nil {
				deps.Log.Error("failed to count relationships for type", "type", relType, "error", err)
				return tools.ExecError(err), nil
			}
			counts[relType] = firstCount(rows)
		}
		return tools.JSONResult(counts), nil
	}
}

func firstCount(rows []map[string]any) int64 {
	if len(rows) == 0 {
		return 0
	}
	count, _ := rows[0]["count"].(int64)
	return count
}
