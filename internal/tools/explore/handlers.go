package explore

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/graphstack/neo4j-mcp-server/internal/query"
	"github.com/graphstack/neo4j-mcp-server/internal/tools"
)

func FindNodesHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args FindNodesInput
		if err := tools.BindArguments(request, &args); err != nil {
			deps.Log.Error("error binding arguments", "tool", "find_nodes", "error", err)
			return tools.ValidationError(err.Error()), nil
		}

		if args.Label == "" {
			return tools.ValidationError("Node label is required"), nil
		}
		if args.Limit <= 0 {
			args.Limit = defaultLimit
		}

		cypher := query.FindNodes(args.Label, args.Properties, args.Limit)
		deps.Log.Debug("finding nodes", "query", cypher)

		rows, err := deps.DBService.RunQuery(ctx, cypher, nil, "")
		if err != nil {
			deps.Log.Error("failed to find nodes", "error", err)
			return tools.ExecError(err), nil
		}
		return tools.JSONResult(rows), nil
	}
}

func FindRelationshipsHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args FindRelationshipsInput
		if err := tools.BindArguments(request, &args); err != nil {
			deps.Log.Error("error binding arguments", "tool", "find_relationships", "error", err)
			return tools.ValidationError(err.Error()), nil
		}

		if args.Type == "" {
			return tools.ValidationError("Relationship type is required"), nil
		}
		if args.Limit <= 0 {
			args.Limit = defaultLimit
		}

		cypher := query.FindRelationships(args.Type, args.SourceLabel, args.TargetLabel, args.Properties, args.Limit)
		deps.Log.Debug("finding relationships", "query", cypher)

		rows, err := deps.DBService.RunQuery(ctx, cypher, nil, "")
		if err != nil {
			deps.Log.Error("failed to find relationships", "error", err)
			return tools.ExecError(err), nil
		}
		return tools.JSONResult(rows), nil
	}
}

func SampleDataHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args SampleDataInput
		if err := tools.BindArguments(request, &args); err != nil {
			deps.Log.Error("error binding arguments", "tool", "get_sample_data", "error", err)
			return tools.ValidationError(err.Error()), nil
		}

		if args.Limit <= 0 {
			args.Limit = defaultLimit
		}

		samples, err := deps.DBService.GetSampleData(ctx, args.Labels, args.Limit)
		if err != nil {
			deps.Log.Error("failed to collect sample data", "error", err)
			return tools.ExecError(err), nil
		}
		return tools.JSONResult(samples), nil
	}
}
