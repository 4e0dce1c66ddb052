package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/graphstack/neo4j-mcp-server/internal/config"
	"github.com/graphstack/neo4j-mcp-server/internal/database"
	"github.com/graphstack/neo4j-mcp-server/internal/logger"
	"github.com/graphstack/neo4j-mcp-server/internal/server"
)

// version is set at build time via -ldflags.
var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	overrides := &config.CLIOverrides{}

	cmd := &cobra.Command{
		Use:     "neo4j-mcp-server",
		Short:   "MCP server exposing a Neo4j database as callable tools",
		Version: version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), overrides)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&overrides.ConfigFile, "config", "", "path to a JSON config file")
	flags.StringVar(&overrides.URI, "uri", "", "Neo4j connection URI")
	flags.StringVar(&overrides.Username, "username", "", "Neo4j username")
	flags.StringVar(&overrides.Password, "password", "", "Neo4j password")
	flags.StringVar(&overrides.Database, "database", "", "Neo4j database name")
	flags.StringVar(&overrides.ServerName, "server-name", "", "server name advertised to MCP clients")
	flags.StringVar(&overrides.LogLevel, "log-level", "", "log level (debug, info, notice, warn, error, critical, alert, emergency)")
	flags.StringVar(&overrides.LogFile, "log-file", "", "file to append logs to, in addition to stderr")
	flags.StringVar(&overrides.Transport, "transport", "", "transport mode (stdio or http)")

	return cmd
}

func run(ctx context.Context, overrides *config.CLIOverrides) error {
	// A missing .env file is not an error; environment variables and the
	// config file cover the same settings.
	_ = godotenv.Load()

	cfg, err := config.Load(overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.ServerVersion = version

	log, closeLog, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	dbService, err := database.NewNeo4jService(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create database service: %w", err)
	}
	if err := dbService.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to Neo4j at %s: %w", cfg.URI, err)
	}
	defer func() {
		if err := dbService.Close(ctx); err != nil {
			log.Error("Error closing database connection", "error", err)
		}
	}()

	mcpServer := server.NewNeo4jMCPServer(cfg, dbService, log)
	defer func() {
		if err := mcpServer.Stop(); err != nil {
			log.Error("Error stopping server", "error", err)
		}
	}()

	// Blocks until the transport shuts down.
	return mcpServer.Start()
}

// buildLogger creates the logger service. Logs always go to stderr so stdout
// stays reserved for the stdio transport; a log file adds a second sink.
func buildLogger(cfg *config.Config) (*logger.Service, func(), error) {
	writer := io.Writer(os.Stderr)
	closeLog := func() {}

	if cfg.LogFile != "" {
		file, err := logger.OpenLogFile(cfg.LogFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writer = io.MultiWriter(os.Stderr, file)
		closeLog = func() { _ = file.Close() }
	}

	return logger.New(cfg.LogLevel, cfg.LogFormat, writer), closeLog, nil
}
