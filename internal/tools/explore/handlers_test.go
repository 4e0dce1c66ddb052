package explore_test

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
	"github.com/graphstack/neo4j-mcp-server/internal/tools/explore"
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

func TestFindNodesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.New("debug", "text", os.Stderr)

	t.Run("builds a filtered lookup with the default limit", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			RunQuery(gomock.Any(), "MATCH (n:Person) WHERE n.name = 'Alice' RETURN n LIMIT 10", gomock.Nil(), "").
			Return([]map[string]any{{"n": map[string]any{"name": "Alice"}}}, nil)

		handler := explore.FindNodesHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{
			"label":      "Person",
			"properties": map[string]any{"name": "Alice"},
		}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}
		if !strings.Contains(resultText(t, result), `"Alice"`) {
			t.Error("Expected the matched node in the result")
		}
	})

	t.Run("integer properties stay unquoted", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			RunQuery(gomock.Any(), "MATCH (n:Person) WHERE n.age = 30 RETURN n LIMIT 5", gomock.Nil(), "").
			Return([]map[string]any{}, nil)

		handler := explore.FindNodesHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{
			"label":      "Person",
			"properties": map[string]any{"age": 30},
			"limit":      5,
		}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Error("Expected success result")
		}
	})

	t.Run("missing label is a validation error", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		handler := explore.FindNodesHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Fatal("Expected an error result")
		}
		if got := resultText(t, result); got != "Node label is required" {
			t.Errorf("Unexpected validation message: %q", got)
		}
	})
}

func TestFindRelationshipsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.New("debug", "text", os.Stderr)

	t.Run("includes endpoint labels when supplied", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			RunQuery(gomock.Any(), "MATCH (source:Person)-[r:KNOWS]->(target:Person) RETURN source, r, target LIMIT 10", gomock.Nil(), "").
			Return([]map[string]any{}, nil)

		handler := explore.FindRelationshipsHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{
			"type":         "KNOWS",
			"source_label": "Person",
			"target_label": "Person",
		}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Error("Expected success result")
		}
	})

	t.Run("missing type is a validation error", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		handler := explore.FindRelationshipsHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Fatal("Expected an error result")
		}
		if got := resultText(t, result); got != "Relationship type is required" {
			t.Errorf("Unexpected validation message: %q", got)
		}
	})
}

func TestSampleDataHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.New("debug", "text", os.Stderr)

	t.Run("samples the requested labels", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			GetSampleData(gomock.Any(), []string{"Person"}, 3).
			Return(map[string][]map[string]any{
				"Person": {{"name": "Alice"}},
			}, nil)

		handler := explore.SampleDataHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{
			"labels": []any{"Person"},
			"limit":  3,
		}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}
		if !strings.Contains(resultText(t, result), `"Alice"`) {
			t.Error("Expected sample rows in the result")
		}
	})

	t.Run("defaults to every label with limit 10", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			GetSampleData(gomock.Any(), gomock.Nil(), 10).
			Return(map[string][]map[string]any{}, nil)

		handler := explore.SampleDataHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Error("Expected success result")
		}
	})

	t.Run("sampling error becomes an error result", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			GetSampleData(gomock.Any(), gomock.Nil(), 10).
			Return(nil, errors.New("boom"))

		handler := explore.SampleDataHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected an error result")
		}
	})
}
