package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/graphstack/neo4j-mcp-server/internal/logger"
)

// withRequestLogging wraps a tool handler so every call is logged with a
// unique request id, the tool name and the call duration. Handler errors are
// logged and passed through unchanged.
func withRequestLogging(log *logger.Service, toolName string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		requestID := uuid.NewString()
		start := time.Now()

		log.Debug("Tool call started", "request_id", requestID, "tool", toolName)

		result, err := next(ctx, request)

		attrs := []any{
			"request_id", requestID,
			"tool", toolName,
			"duration", time.Since(start).String(),
		}
		if err != nil {
			log.Error("Tool call failed", append(attrs, "error", err)...)
			return result, err
		}
		if result != nil && result.IsError {
			log.Warn("Tool call returned an error result", attrs...)
			return result, nil
		}
		log.Debug("Tool call completed", attrs...)
		return result, nil
	}
}

// chainHTTPMiddleware wires the HTTP middleware around the MCP endpoint.
// Execution order: path validation, then request logging, then the handler.
func chainHTTPMiddleware(log *logger.Service, next http.Handler) http.Handler {
	handler := httpLoggingMiddleware(log)(next)
	handler = pathValidationMiddleware()(handler)
	return handler
}

// pathValidationMiddleware rejects requests outside the /mcp path early to
// avoid hanging connections on unknown endpoints.
func pathValidationMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/mcp" {
				http.Error(w, "Not Found: This server only handles requests to /mcp", http.StatusNotFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// httpLoggingMiddleware logs HTTP requests for debugging.
func httpLoggingMiddleware(log *logger.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Debug("HTTP request",
				"method", r.Method,
				"url", r.URL.Path,
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
				"content_length", r.ContentLength,
			)
			next.ServeHTTP(w, r)
		})
	}
}
