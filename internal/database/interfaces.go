package database

//go:generate mockgen -destination=mocks/mock_database.go -package=mocks github.com/graphstack/neo4j-mcp-server/internal/database Service

import (
	"context"
)

// Executor defines the query execution surface of the database service.
type Executor interface {
	// RunQuery executes a Cypher query with params bound by name and returns
	// every record as a plain key-value mapping. An empty database name uses
	// the configured default.
	RunQuery(ctx context.Context, cypher string, params map[string]any, database string) ([]map[string]any, error)

	// RunWriteQuery executes a mutating Cypher query, discards row data, and
	// returns the mutation counters from the execution summary.
	RunWriteQuery(ctx context.Context, cypher string, params map[string]any, database string) (*WriteCounters, error)

	// ExplainQuery wraps the query in EXPLAIN and returns the plan tree.
	ExplainQuery(ctx context.Context, cypher string, database string) (*PlanNode, error)
}

// Reflector defines the schema introspection surface of the database service.
type Reflector interface {
	// GetSchema attempts the apoc.meta.schema() meta-procedure and falls back
	// to GetBasicSchema on any failure.
	GetSchema(ctx context.Context) (any, error)

	// GetBasicSchema assembles the schema from the engine's introspection
	// procedures without relying on APOC.
	GetBasicSchema(ctx context.Context) (*Schema, error)

	// GetDatabaseInfo reports version, edition, database name, and address.
	GetDatabaseInfo(ctx context.Context) (*DatabaseInfo, error)

	GetNodeCount(ctx context.Context) (int64, error)
	GetRelationshipCount(ctx context.Context) (int64, error)
	GetNodeLabels(ctx context.Context) ([]string, error)
	GetRelationshipTypes(ctx context.Context) ([]string, error)
	GetIndexes(ctx context.Context) ([]map[string]any, error)
	GetConstraints(ctx context.Context) ([]map[string]any, error)
	GetSampleData(ctx context.Context, labels []string, limit int) (map[string][]map[string]any, error)
}

// Service combines query execution, schema reflection, and connection
// lifecycle management.
type Service interface {
	Executor
	Reflector

	// VerifyConnectivity checks the driver can reach the Neo4j instance.
	VerifyConnectivity(ctx context.Context) error

	// Close releases the underlying driver. Closing twice is a no-op.
	Close(ctx context.Context) error
}
