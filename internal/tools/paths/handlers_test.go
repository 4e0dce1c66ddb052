package paths_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/mock/gomock"

	db "github.com/graphstack/neo4j-mcp-server/internal/database/mocks"
	"github.com/graphstack/neo4j-mcp-server/internal/logger"
	"github.com/graphstack/neo4j-mcp-server/internal/tools"
	"github.com/graphstack/neo4j-mcp-server/internal/tools/paths"
)

func callRequest(arguments any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = arguments
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("expected a result with content")
	}
	textContent, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return textContent.Text
}

func pathArguments() map[string]any {
	return map[string]any{
		"start_label":      "Person",
		"start_properties": map[string]any{"name": "Alice"},
		"end_label":        "Person",
		"end_properties":   map[string]any{"name": "Bob"},
	}
}

func samplePath() map[string]any {
	return map[string]any{
		"nodes": []any{
			map[string]any{"name": "Alice"},
			map[string]any{"name": "Bob"},
		},
		"relationships": []any{map[string]any{}},
		"length":        1,
	}
}

func TestFindPathsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.New("debug", "text", os.Stderr)

	t.Run("uses default depth and limit", func(t *testing.T) {
		wantQuery := "MATCH (start:Person), (end:Person)\n" +
			"WHERE start.name = 'Alice'\n" +
			"AND end.name = 'Bob'\n" +
			"MATCH path = (start)-[*1..3]->(end)\n" +
			"RETURN path\n" +
			"LIMIT 5"

		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			RunQuery(gomock.Any(), wantQuery, gomock.Nil(), "").
			Return([]map[string]any{{"path": samplePath()}}, nil)

		handler := paths.FindPathsHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(pathArguments()))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}
		text := resultText(t, result)
		if !strings.Contains(text, `"nodes"`) || !strings.Contains(text, `"Alice"`) {
			t.Errorf("Expected normalized paths in the result, got: %s", text)
		}
	})

	t.Run("missing labels are a validation error", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		handler := paths.FindPathsHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{
			"start_label": "Person",
		}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Fatal("Expected an error result")
		}
		if got := resultText(t, result); got != "Start and end labels are required" {
			t.Errorf("Unexpected validation message: %q", got)
		}
	})

	t.Run("query failure becomes an error result", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			RunQuery(gomock.Any(), gomock.Any(), gomock.Nil(), "").
			Return(nil, errors.New("timeout"))

		handler := paths.FindPathsHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(pathArguments()))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected an error result")
		}
	})
}

func TestShortestPathHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.New("debug", "text", os.Stderr)

	t.Run("returns the single shortest path", func(t *testing.T) {
		wantQuery := "MATCH (start:Person), (end:Person)\n" +
			"WHERE start.name = 'Alice'\n" +
			"AND end.name = 'Bob'\n" +
			"MATCH path = shortestPath((start)-[*1..5]->(end))\n" +
			"RETURN path"

		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			RunQuery(gomock.Any(), wantQuery, gomock.Nil(), "").
			Return([]map[string]any{{"path": samplePath()}}, nil)

		handler := paths.ShortestPathHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(pathArguments()))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}
		if !strings.Contains(resultText(t, result), `"length": 1`) {
			t.Error("Expected the path object in the result")
		}
	})

	t.Run("relationship types narrow the pattern", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			RunQuery(gomock.Any(), gomock.Cond(func(q any) bool {
				s, ok := q.(string)
				return ok && strings.Contains(s, "-[:KNOWS|WORKS_WITH*1..5]->")
			}), gomock.Nil(), "").
			Return([]map[string]any{{"path": samplePath()}}, nil)

		args := pathArguments()
		args["relationship_types"] = []any{"KNOWS", "WORKS_WITH"}

		handler := paths.ShortestPathHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(args))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Error("Expected success result")
		}
	})

	t.Run("no rows yields a not-found text result", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			RunQuery(gomock.Any(), gomock.Any(), gomock.Nil(), "").
			Return([]map[string]any{}, nil)

		handler := paths.ShortestPathHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(pathArguments()))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected a plain text result")
		}
		if got := resultText(t, result); got != "No path found" {
			t.Errorf("Unexpected message: %q", got)
		}
	})
}

func TestAllPathsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.New("debug", "text", os.Stderr)

	t.Run("collects every returned path", func(t *testing.T) {
		wantQuery := "MATCH (start:Person), (end:Person)\n" +
			"WHERE start.name = 'Alice'\n" +
			"AND end.name = 'Bob'\n" +
			"MATCH path = allShortestPaths((start)-[*1..3]->(end))\n" +
			"RETURN path\n" +
			"LIMIT 5"

		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			RunQuery(gomock.Any(), wantQuery, gomock.Nil(), "").
			Return([]map[string]any{
				{"path": samplePath()},
				{"path": samplePath()},
			}, nil)

		handler := paths.AllPathsHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(pathArguments()))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}
		if got := strings.Count(resultText(t, result), `"length"`); got != 2 {
			t.Errorf("Expected two paths in the result, found %d", got)
		}
	})

	t.Run("missing labels are a validation error", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		handler := paths.AllPathsHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected an error result")
		}
	})
}
