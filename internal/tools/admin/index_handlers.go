package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/graphstack/neo4j-mcp-server/internal/query"
	"github.com/graphstack/neo4j-mcp-server/internal/tools"
)

func GetIndexesHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		indexes, err := deps.DBService.GetIndexes(ctx)
		if err != nil {
			deps.Log.Error("failed to list indexes", "error", err)
			return tools.ExecError(err), nil
		}
		return tools.JSONResult(indexes), nil
	}
}

func CreateIndexHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args CreateIndexInput
		if err := tools.BindArguments(request, &args); err != nil {
			deps.Log.Error("error binding arguments", "tool", "create_index", "error", err)
			return tools.ValidationError(err.Error()), nil
		}

		if args.Label == "" || len(args.Properties) == 0 {
			return tools.ValidationError("Label and properties are required"), nil
		}

		cypher, err := query.CreateIndex(args.Label, args.Properties, args.Name, args.Type)
		if err != nil {
			return tools.ValidationError(err.Error()), nil
		}

		deps.Log.Info("creating index", "label", args.Label, "properties", args.Properties)

		if _, err := deps.DBService.RunWriteQuery(ctx, cypher, nil, ""); err != nil {
			deps.Log.Error("failed to create index", "error", err)
			return tools.ExecError(err), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Index created successfully on :%s(%s)", args.Label, strings.Join(args.Properties, ", "))), nil
	}
}

func DropIndexHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args DropIndexInput
		if err := tools.BindArguments(request, &args); err != nil {
			deps.Log.Error("error binding arguments", "tool", "drop_index", "error", err)
			return tools.ValidationError(err.Error()), nil
		}

		if args.Name == "" {
			return tools.ValidationError("Index name is required"), nil
		}

		deps.Log.Info("dropping index", "name", args.Name)

		if _, err := deps.DBService.RunWriteQuery(ctx, query.DropIndex(args.Name), nil, ""); err != nil {
			deps.Log.Error("failed to drop index", "error", err)
			return tools.ExecError(err), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Index %s dropped successfully", args.Name)), nil
	}
}
