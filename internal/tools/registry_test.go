package tools_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphstack/neo4j-mcp-server/internal/tools"
)

func echoHandler(text string) tools.HandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(text), nil
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	textContent, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return textContent.Text
}

func TestRegistry(t *testing.T) {
	t.Run("names preserve registration order", func(t *testing.T) {
		registry := tools.NewRegistry()
		require.NoError(t, registry.Register(mcp.NewTool("beta"), echoHandler("b")))
		require.NoError(t, registry.Register(mcp.NewTool("alpha"), echoHandler("a")))

		assert.Equal(t, []string{"beta", "alpha"}, registry.Names())

		serverTools := registry.ServerTools()
		require.Len(t, serverTools, 2)
		assert.Equal(t, "beta", serverTools[0].Tool.Name)
		assert.Equal(t, "alpha", serverTools[1].Tool.Name)
	})

	t.Run("duplicate names are rejected", func(t *testing.T) {
		registry := tools.NewRegistry()
		require.NoError(t, registry.Register(mcp.NewTool("alpha"), echoHandler("a")))
		assert.Error(t, registry.Register(mcp.NewTool("alpha"), echoHandler("again")))
	})

	t.Run("dispatch routes to the named handler", func(t *testing.T) {
		registry := tools.NewRegistry()
		var gotName string
		var gotArgs map[string]any
		require.NoError(t, registry.Register(mcp.NewTool("alpha"),
			func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				gotName = request.Params.Name
				gotArgs, _ = request.Params.Arguments.(map[string]any)
				return mcp.NewToolResultText("done"), nil
			}))

		result, err := registry.Dispatch(context.Background(), "alpha", map[string]any{"limit": 5})
		require.NoError(t, err)
		assert.Equal(t, "done", resultText(t, result))
		assert.Equal(t, "alpha", gotName)
		assert.Equal(t, map[string]any{"limit": 5}, gotArgs)
	})

	t.Run("unknown tool yields a text result, not an error", func(t *testing.T) {
		registry := tools.NewRegistry()
		result, err := registry.Dispatch(context.Background(), "does_not_exist", nil)
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Equal(t, "Unknown tool: does_not_exist", resultText(t, result))
	})
}
