package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/graphstack/neo4j-mcp-server/internal/tools"
	"github.com/graphstack/neo4j-mcp-server/internal/tools/admin"
	"github.com/graphstack/neo4j-mcp-server/internal/tools/cypher"
	"github.com/graphstack/neo4j-mcp-server/internal/tools/explore"
	"github.com/graphstack/neo4j-mcp-server/internal/tools/paths"
	"github.com/graphstack/neo4j-mcp-server/internal/tools/schema"
	"github.com/graphstack/neo4j-mcp-server/internal/tools/stats"
)

// RegisterTools builds the tool registry and adds every tool to the MCP server.
// When read-only mode is enabled only tools annotated as read-only are
// registered; tools without the annotation are treated as mutating.
func (s *Neo4jMCPServer) RegisterTools() error {
	registry, err := BuildRegistry(&tools.ToolDependencies{
		Config:    s.config,
		DBService: s.dbService,
		Log:       s.log,
	})
	if err != nil {
		return err
	}

	all := registry.ServerTools()
	wrapped := make([]server.ServerTool, 0, len(all))
	for _, t := range all {
		if s.config.ReadOnly && (t.Tool.Annotations.ReadOnlyHint == nil || !*t.Tool.Annotations.ReadOnlyHint) {
			s.log.Debug("Skipping mutating tool in read-only mode", "tool", t.Tool.Name)
			continue
		}
		wrapped = append(wrapped, server.ServerTool{
			Tool:    t.Tool,
			Handler: withRequestLogging(s.log, t.Tool.Name, t.Handler),
		})
	}

	s.MCPServer.AddTools(wrapped...)
	return nil
}

// BuildRegistry wires every tool spec to its handler in catalog order.
func BuildRegistry(deps *tools.ToolDependencies) (*tools.Registry, error) {
	catalog := []struct {
		spec    mcp.Tool
		handler tools.HandlerFunc
	}{
		// Schema category
		{schema.GetSchemaSpec(), schema.GetSchemaHandler(deps)},
		{schema.DatabaseInfoSpec(), schema.DatabaseInfoHandler(deps)},
		// Cypher category
		{cypher.ReadCypherSpec(), cypher.ReadCypherHandler(deps)},
		{cypher.WriteCypherSpec(), cypher.WriteCypherHandler(deps)},
		{cypher.ExplainCypherSpec(), cypher.ExplainCypherHandler(deps)},
		// Statistics category
		{stats.DatabaseStatisticsSpec(), stats.DatabaseStatisticsHandler(deps)},
		{stats.NodeCountsByLabelSpec(), stats.NodeCountsByLabelHandler(deps)},
		{stats.RelationshipCountsByTypeSpec(), stats.RelationshipCountsByTypeHandler(deps)},
		// Index and constraint administration
		{admin.GetIndexesSpec(), admin.GetIndexesHandler(deps)},
		{admin.CreateIndexSpec(), admin.CreateIndexHandler(deps)},
		{admin.DropIndexSpec(), admin.DropIndexHandler(deps)},
		{admin.GetConstraintsSpec(), admin.GetConstraintsHandler(deps)},
		{admin.CreateConstraintSpec(), admin.CreateConstraintHandler(deps)},
		{admin.DropConstraintSpec(), admin.DropConstraintHandler(deps)},
		// Exploration category
		{explore.FindNodesSpec(), explore.FindNodesHandler(deps)},
		{explore.FindRelationshipsSpec(), explore.FindRelationshipsHandler(deps)},
		{explore.SampleDataSpec(), explore.SampleDataHandler(deps)},
		// Path finding category
		{paths.FindPathsSpec(), paths.FindPathsHandler(deps)},
		{paths.ShortestPathSpec(), paths.ShortestPathHandler(deps)},
		{paths.AllPathsSpec(), paths.AllPathsHandler(deps)},
	}

	registry := tools.NewRegistry()
	for _, item := range catalog {
		if err := registry.Register(item.spec, item.handler); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
