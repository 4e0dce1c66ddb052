package database

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/graphstack/neo4j-mcp-server/internal/config"
	"github.com/graphstack/neo4j-mcp-server/internal/logger"
	"github.com/graphstack/neo4j-mcp-server/internal/query"
)

// Neo4jService is the concrete implementation of Service backed by a single
// neo4j driver handle. Sessions are acquired per call and never shared.
type Neo4jService struct {
	uri      string
	username string
	password string
	database string

	driver neo4j.DriverWithContext
	log    *logger.Service
}

// NewNeo4jService creates a service from resolved configuration. The driver
// is not created until Connect is called.
func NewNeo4jService(cfg *config.Config, log *logger.Service) (*Neo4jService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &Neo4jService{
		uri:      cfg.URI,
		username: cfg.Username,
		password: cfg.Password,
		database: cfg.Database,
		log:      log,
	}, nil
}

// Connect establishes the driver handle and eagerly verifies connectivity so
// unreachable hosts and bad credentials fail at startup, not at first query.
// There is no retry; the error propagates to the caller.
func (s *Neo4jService) Connect(ctx context.Context) error {
	auth := neo4j.NoAuth()
	if s.password != "" {
		auth = neo4j.BasicAuth(s.username, s.password, "")
	}

	driver, err := neo4j.NewDriverWithContext(s.uri, auth)
	if err != nil {
		return fmt.Errorf("failed to create Neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return fmt.Errorf("failed to verify Neo4j connectivity: %w", err)
	}

	s.driver = driver
	s.log.Info("connected to Neo4j", "uri", s.uri)
	return nil
}

// VerifyConnectivity checks the driver can reach the Neo4j instance.
func (s *Neo4jService) VerifyConnectivity(ctx context.Context) error {
	if s.driver == nil {
		return fmt.Errorf("neo4j driver is not initialized")
	}
	return s.driver.VerifyConnectivity(ctx)
}

// Close releases the driver. Closing an already-closed service is a no-op.
func (s *Neo4jService) Close(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}
	err := s.driver.Close(ctx)
	s.driver = nil
	s.log.Info("closed Neo4j connection")
	return err
}

// session returns a new scoped session bound to the resolved database name
// (explicit override > configured default > server default), reconnecting
// lazily if the driver has been closed.
func (s *Neo4jService) session(ctx context.Context, database string) (neo4j.SessionWithContext, error) {
	if s.driver == nil {
		if err := s.Connect(ctx); err != nil {
			return nil, err
		}
	}
	if database == "" {
		database = s.database
	}
	return s.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: database}), nil
}

// RunQuery executes a Cypher query and returns every record as a plain
// key-value mapping. Engine-level failures propagate without retry.
func (s *Neo4jService) RunQuery(ctx context.Context, cypher string, params map[string]any, database string) ([]map[string]any, error) {
	session, err := s.session(ctx, database)
	if err != nil {
		return nil, err
	}
	defer func() { _ = session.Close(ctx) }()

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	records, err := result.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect query results: %w", err)
	}

	return RecordsToMaps(records), nil
}

// RunWriteQuery executes a mutating query, discards row data, and returns
// the zero-filled mutation counters from the execution summary.
func (s *Neo4jService) RunWriteQuery(ctx context.Context, cypher string, params map[string]any, database string) (*WriteCounters, error) {
	session, err := s.session(ctx, database)
	if err != nil {
		return nil, err
	}
	defer func() { _ = session.Close(ctx) }()

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, fmt.Errorf("failed to execute write query: %w", err)
	}

	summary, err := result.Consume(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to consume write query result: %w", err)
	}

	return CountersFromSummary(summary), nil
}

// ExplainQuery wraps the query in EXPLAIN and returns the plan tree reported
// by the server. The statement itself is not executed.
func (s *Neo4jService) ExplainQuery(ctx context.Context, cypher string, database string) (*PlanNode, error) {
	session, err := s.session(ctx, database)
	if err != nil {
		return nil, err
	}
	defer func() { _ = session.Close(ctx) }()

	result, err := session.Run(ctx, query.Explain(cypher), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to explain query: %w", err)
	}

	summary, err := result.Consume(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to consume explain result: %w", err)
	}

	plan := summary.Plan()
	if plan == nil {
		return nil, fmt.Errorf("no execution plan returned for query")
	}
	return planToNode(plan), nil
}

// PlanNode is a JSON-friendly rendering of one operator in an execution plan.
type PlanNode struct {
	OperatorType string         `json:"operatorType"`
	Identifiers  []string       `json:"identifiers"`
	Arguments    map[string]any `json:"arguments"`
	Children     []*PlanNode    `json:"children"`
}

func planToNode(plan neo4j.Plan) *PlanNode {
	node := &PlanNode{
		OperatorType: plan.Operator(),
		Identifiers:  plan.Identifiers(),
		Arguments:    plan.Arguments(),
		Children:     make([]*PlanNode, 0, len(plan.Children())),
	}
	for _, child := range plan.Children() {
		node.Children = append(node.Children, planToNode(child))
	}
	return node
}
