package admin

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/graphstack/neo4j-mcp-server/internal/query"
	"github.com/graphstack/neo4j-mcp-server/internal/tools"
)

func GetConstraintsHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		constraints, err := deps.DBService.GetConstraints(ctx)
		if err != nil {
			deps.Log.Error("failed to list constraints", "error", err)
			return tools.ExecError(err), nil
		}
		return tools.JSONResult(constraints), nil
	}
}

func CreateConstraintHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args CreateConstraintInput
		if err := tools.BindArguments(request, &args); err != nil {
			deps.Log.Error("error binding arguments", "tool", "create_constraint", "error", err)
			return tools.ValidationError(err.Error()), nil
		}

		if args.Label == "" || args.Property == "" || args.Type == "" {
			return tools.ValidationError("Label, property, and type are required"), nil
		}

		cypher, err := query.CreateConstraint(args.Label, args.Property, args.Name, args.Type)
		if err != nil {
			return tools.ValidationError(err.Error()), nil
		}

		deps.Log.Info("creating constraint", "label", args.Label, "property", args.Property, "type", args.Type)

		if _, err := deps.DBService.RunWriteQuery(ctx, cypher, nil, ""); err != nil {
			deps.Log.Error("failed to create constraint", "error", err)
			return tools.ExecError(err), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Constraint created successfully on :%s.%s", args.Label, args.Property)), nil
	}
}

func DropConstraintHandler(deps *tools.ToolDependencies) tools.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args DropConstraintInput
		if err := tools.BindArguments(request, &args); err != nil {
			deps.Log.Error("error binding arguments", "tool", "drop_constraint", "error", err)
			return tools.ValidationError(err.Error()), nil
		}

		if args.Name == "" {
			return tools.ValidationError("Constraint name is required"), nil
		}

		deps.Log.Info("dropping constraint", "name", args.Name)

		if _, err := deps.DBService.RunWriteQuery(ctx, query.DropConstraint(args.Name), nil, ""); err != nil {
			deps.Log.Error("failed to drop constraint", "error", err)
			return tools.ExecError(err), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Constraint %s dropped successfully", args.Name)), nil
	}
}
