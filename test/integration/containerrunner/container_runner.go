//go:build integration

// Package containerrunner starts one shared Neo4j container for the
// integration suite.
package containerrunner

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/graphstack/neo4j-mcp-server/internal/config"
)

var (
	container testcontainers.Container
	cfg       *config.Config
	once      sync.Once
)

// Start initializes the shared container. Safe to call from multiple
// TestMain functions; the container is created once.
func Start(ctx context.Context) {
	once.Do(func() {
		startOnce(ctx)
	})
}

// Config returns the connection settings for the shared container.
func Config() *config.Config {
	if cfg == nil {
		log.Fatal("container is not initialized, call Start first")
	}
	return cfg
}

// Close terminates the shared container.
func Close(ctx context.Context) {
	if container == nil {
		return
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("Warning: failed to terminate container: %v", err)
	}
}

func startOnce(ctx context.Context) {
	username := config.GetEnvWithDefault("NEO4J_USERNAME", "neo4j")
	password := config.GetEnvWithDefault("NEO4J_PASSWORD", "password")

	req := testcontainers.ContainerRequest{
		Image:        config.GetEnvWithDefault("NEO4J_IMAGE", "neo4j:5.24.2-community"),
		ExposedPorts: []string{"7687/tcp"},
		Env: map[string]string{
			"NEO4J_AUTH":        fmt.Sprintf("%s/%s", username, password),
			"NEO4JLABS_PLUGINS": config.GetEnvWithDefault("NEO4JLABS_PLUGINS", `["apoc"]`),
		},
		WaitingFor: wait.ForListeningPort("7687/tcp").WithStartupTimeout(119 * time.Second),
	}

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatalf("failed to start shared neo4j container: %v", err)
	}
	container = ctr

	host, err := ctr.Host(ctx)
	if err != nil {
		terminateAndExit(ctx, ctr, err)
	}
	port, err := ctr.MappedPort(ctx, "7687/tcp")
	if err != nil {
		terminateAndExit(ctx, ctr, err)
	}

	cfg = &config.Config{
		URI:       fmt.Sprintf("bolt://%s:%s", host, port.Port()),
		Username:  username,
		Password:  password,
		Database:  config.GetEnvWithDefault("NEO4J_DATABASE", "neo4j"),
		LogLevel:  "debug",
		LogFormat: "text",
	}

	if err := waitForConnectivity(ctx); err != nil {
		terminateAndExit(ctx, ctr, err)
	}
}

func terminateAndExit(ctx context.Context, ctr testcontainers.Container, err error) {
	_ = ctr.Terminate(ctx)
	log.Fatalf("failed to initialize neo4j container: %v", err)
}

// waitForConnectivity polls the bolt endpoint with exponential backoff. On
// timeout the container logs are attached to the error for debugging.
func waitForConnectivity(ctx context.Context) error {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return err
	}
	defer driver.Close(ctx)

	waitCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	backoff := 100 * time.Millisecond
	maxBackoff := 2 * time.Second

	var lastErr error
	for {
		err := driver.VerifyConnectivity(waitCtx)
		if err == nil {
			return nil
		}
		lastErr = err

		if waitCtx.Err() != nil {
			break
		}

		time.Sleep(backoff)
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	var logs string
	if container != nil {
		rc, err := container.Logs(context.Background())
		if err == nil && rc != nil {
			b, rerr := io.ReadAll(rc)
			_ = rc.Close()
			if rerr == nil {
				logs = string(b)
			}
		}
	}
	if logs != "" {
		return fmt.Errorf("neo4j connectivity not ready: %v\ncontainer logs:\n%s", lastErr, logs)
	}
	return fmt.Errorf("neo4j connectivity not ready: %v", lastErr)
}
