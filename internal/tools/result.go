package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/graphstack/neo4j-mcp-server/internal/database"
)

// JSONResult renders a value as pretty-printed JSON wrapped in a text tool
// result. A marshaling failure degrades to an error text result; it never
// fails the protocol call.
func JSONResult(value any) *mcp.CallToolResult {
	text, err := database.ToJSON(value)
	if err != nil {
		return ExecError(err)
	}
	return mcp.NewToolResultText(text)
}

// ExecError converts an execution failure into the "Error: <message>" text
// result every tool returns instead of failing the protocol call.
func ExecError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("Error: %s", err.Error()))
}

// ValidationError reports a missing or invalid argument as a plain-text tool
// result.
func ValidationError(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(message)
}
