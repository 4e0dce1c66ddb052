package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/graphstack/neo4j-mcp-server/internal/config"
	"github.com/graphstack/neo4j-mcp-server/internal/database"
	"github.com/graphstack/neo4j-mcp-server/internal/logger"
)

const httpReadHeaderTimeout = 10 * time.Second

// Neo4jMCPServer represents the MCP server instance.
type Neo4jMCPServer struct {
	MCPServer  *server.MCPServer
	httpServer *http.Server
	config     *config.Config
	dbService  database.Service
	log        *logger.Service
}

// NewNeo4jMCPServer creates a new MCP server instance.
// The config parameter is expected to be already validated.
func NewNeo4jMCPServer(cfg *config.Config, dbService database.Service, log *logger.Service) *Neo4jMCPServer {
	s := &Neo4jMCPServer{
		config:    cfg,
		dbService: dbService,
		log:       log,
	}

	hooks := &server.Hooks{}
	hooks.AddAfterSetLevel(s.onAfterSetLevelHook)

	s.MCPServer = server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithToolCapabilities(true),
		server.WithLogging(),
		server.WithHooks(hooks),
		server.WithInstructions("This server provides tool calling to interact with a Neo4j database: "+
			"infer the schema with get_neo4j_schema, run arbitrary Cypher with read_neo4j_cypher and "+
			"write_neo4j_cypher, and explore nodes, relationships and paths with the dedicated tools."),
	)

	return s
}

// Start registers all tools and serves on the configured transport. It blocks
// until the transport shuts down.
func (s *Neo4jMCPServer) Start() error {
	if err := s.RegisterTools(); err != nil {
		return fmt.Errorf("failed to register tools: %w", err)
	}

	s.log.Info("Starting Neo4j MCP server", "transport", s.config.TransportMode)

	switch s.config.TransportMode {
	case config.TransportModeHTTP:
		return s.startHTTP()
	case config.TransportModeStdio:
		s.log.Info("Listening on stdio")
		return server.ServeStdio(s.MCPServer)
	default:
		return fmt.Errorf("unsupported transport mode: %s", s.config.TransportMode)
	}
}

// startHTTP serves the MCP protocol over the streamable HTTP transport.
func (s *Neo4jMCPServer) startHTTP() error {
	addr := fmt.Sprintf("%s:%s", s.config.HTTPHost, s.config.HTTPPort)

	streamable := server.NewStreamableHTTPServer(
		s.MCPServer,
		server.WithEndpointPath("/mcp"),
		server.WithStateLess(true),
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp", streamable)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           chainHTTPMiddleware(s.log, mux),
		ReadHeaderTimeout: httpReadHeaderTimeout,
	}

	s.log.Info("Listening on HTTP", "address", addr, "path", "/mcp")
	return s.httpServer.ListenAndServe()
}

// Stop shuts down the HTTP listener when one is running. Stdio mode needs no
// cleanup; the database service is closed by the caller.
func (s *Neo4jMCPServer) Stop() error {
	s.log.Info("Stopping Neo4j MCP server")
	if s.httpServer != nil {
		return s.httpServer.Close()
	}
	return nil
}
