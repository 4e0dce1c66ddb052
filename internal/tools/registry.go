package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// HandlerFunc is the signature shared by every tool handler.
type HandlerFunc func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

// Registry is the fixed, ordered catalog of tools. Dispatch resolves a tool
// by exact name; names are unique within the catalog.
type Registry struct {
	order    []string
	handlers map[string]HandlerFunc
	specs    map[string]mcp.Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]HandlerFunc),
		specs:    make(map[string]mcp.Tool),
	}
}

// Register adds a tool to the catalog. Registering a duplicate name is a
// programming error and is rejected.
func (r *Registry) Register(spec mcp.Tool, handler HandlerFunc) error {
	if _, exists := r.handlers[spec.Name]; exists {
		return fmt.Errorf("tool %q is already registered", spec.Name)
	}
	r.order = append(r.order, spec.Name)
	r.handlers[spec.Name] = handler
	r.specs[spec.Name] = spec
	return nil
}

// Names returns the tool names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// ServerTools returns the catalog in registration order for registration
// with the MCP server.
func (r *Registry) ServerTools() []server.ServerTool {
	tools := make([]server.ServerTool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, server.ServerTool{
			Tool:    r.specs[name],
			Handler: server.ToolHandlerFunc(r.handlers[name]),
		})
	}
	return tools
}

// Dispatch routes a tool call by name. An unregistered name yields the text
// result "Unknown tool: <name>"; the call itself still succeeds.
func (r *Registry) Dispatch(ctx context.Context, name string, arguments map[string]any) (*mcp.CallToolResult, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf("Unknown tool: %s", name)), nil
	}

	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = arguments
	return handler(ctx, request)
}
