package admin_test

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
	"github.com/graphstack/neo4j-mcp-server/internal/tools/admin"
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

func TestGetIndexesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.New("debug", "text", os.Stderr)

	t.Run("lists indexes", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().GetIndexes(gomock.Any()).Return([]map[string]any{
			{"name": "person_idx", "labelsOrTypes": []any{"Person"}, "properties": []any{"name"}, "type": "RANGE"},
		}, nil)

		handler := admin.GetIndexesHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}
		if !strings.Contains(resultText(t, result), `"person_idx"`) {
			t.Error("Expected the index listing in the result")
		}
	})
}

func TestCreateIndexHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.New("debug", "text", os.Stderr)

	t.Run("creates an index and reports success", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			RunWriteQuery(gomock.Any(), "CREATE RANGE INDEX person_idx FOR (n:Person) ON (n.name)", gomock.Nil(), "").
			Return(nil, nil)

		handler := admin.CreateIndexHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{
			"label":      "Person",
			"properties": []any{"name"},
			"name":       "person_idx",
			"type":       "RANGE",
		}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}
		if got := resultText(t, result); got != "Index created successfully on :Person(name)" {
			t.Errorf("Unexpected success message: %q", got)
		}
	})

	t.Run("missing label or properties is a validation error", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		handler := admin.CreateIndexHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{"label": "Person"}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Fatal("Expected an error result")
		}
		if got := resultText(t, result); got != "Label and properties are required" {
			t.Errorf("Unexpected validation message: %q", got)
		}
	})

	t.Run("unknown index type is a validation error", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		handler := admin.CreateIndexHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{
			"label":      "Person",
			"properties": []any{"name"},
			"type":       "BTREE",
		}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected an error result")
		}
	})

	t.Run("execution failure becomes an error result", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			RunWriteQuery(gomock.Any(), gomock.Any(), gomock.Nil(), "").
			Return(nil, errors.New("an equivalent index already exists"))

		handler := admin.CreateIndexHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{
			"label":      "Person",
			"properties": []any{"name"},
		}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected an error result")
		}
	})
}

func TestDropIndexHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.New("debug", "text", os.Stderr)

	t.Run("drops a named index", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			RunWriteQuery(gomock.Any(), "DROP INDEX person_idx", gomock.Nil(), "").
			Return(nil, nil)

		handler := admin.DropIndexHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{"name": "person_idx"}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if got := resultText(t, result); got != "Index person_idx dropped successfully" {
			t.Errorf("Unexpected success message: %q", got)
		}
	})

	t.Run("missing name is a validation error", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		handler := admin.DropIndexHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Fatal("Expected an error result")
		}
		if got := resultText(t, result); got != "Index name is required" {
			t.Errorf("Unexpected validation message: %q", got)
		}
	})
}

func TestCreateConstraintHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.New("debug", "text", os.Stderr)

	t.Run("creates a uniqueness constraint", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			RunWriteQuery(gomock.Any(), "CREATE CONSTRAINT FOR (n:Person) REQUIRE n.email IS UNIQUE", gomock.Nil(), "").
			Return(nil, nil)

		handler := admin.CreateConstraintHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{
			"label":    "Person",
			"property": "email",
			"type":     "UNIQUE",
		}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if got := resultText(t, result); got != "Constraint created successfully on :Person.email" {
			t.Errorf("Unexpected success message: %q", got)
		}
	})

	t.Run("missing arguments are a validation error", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		handler := admin.CreateConstraintHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{"label": "Person"}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Fatal("Expected an error result")
		}
		if got := resultText(t, result); got != "Label, property, and type are required" {
			t.Errorf("Unexpected validation message: %q", got)
		}
	})

	t.Run("unknown constraint type is a validation error", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		handler := admin.CreateConstraintHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{
			"label":    "Person",
			"property": "email",
			"type":     "FOREIGN_KEY",
		}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected an error result")
		}
	})
}

func TestDropConstraintHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.New("debug", "text", os.Stderr)

	t.Run("drops a named constraint", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().
			RunWriteQuery(gomock.Any(), "DROP CONSTRAINT person_email", gomock.Nil(), "").
			Return(nil, nil)

		handler := admin.DropConstraintHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{"name": "person_email"}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if got := resultText(t, result); got != "Constraint person_email dropped successfully" {
			t.Errorf("Unexpected success message: %q", got)
		}
	})

	t.Run("missing name is a validation error", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		handler := admin.DropConstraintHandler(&tools.ToolDependencies{DBService: mockDB, Log: log})
		result, err := handler(context.Background(), callRequest(map[string]any{}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected an error result")
		}
	})
}
