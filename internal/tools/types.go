package tools

import (
	"github.com/graphstack/neo4j-mcp-server/internal/config"
	"github.com/graphstack/neo4j-mcp-server/internal/database"
	"github.com/graphstack/neo4j-mcp-server/internal/logger"
)

// ToolDependencies contains all dependencies needed by tool handlers.
type ToolDependencies struct {
	Config    *config.Config
	DBService database.Service
	Log       *logger.Service
}
