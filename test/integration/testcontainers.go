package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestContext holds all the resources needed for integration tests.
//
// By default scenarios run against throwaway sqlite stores. Set
// VIDEOALERT_TEST_POSTGRES=1 to run them against a PostgreSQL
// testcontainer instead.
type TestContext struct {
	Container   testcontainers.Container
	DatabaseURL string
	workDir     string
	usePostgres bool
	dbCounter   int
}

// NewTestContext creates a new test context, starting a PostgreSQL
// container when requested.
func NewTestContext(ctx context.Context) (*TestContext, error) {
	workDir, err := os.MkdirTemp("", "videoalert-integration-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create work dir: %w", err)
	}

	tc := &TestContext{
		workDir:     workDir,
		usePostgres: os.Getenv("VIDEOALERT_TEST_POSTGRES") == "1",
	}

	if !tc.usePostgres {
		log.Println("Using sqlite stores under", workDir)
		return tc, nil
	}

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("videoalert_test"),
		tcpostgres.WithUsername("videoalert"),
		tcpostgres.WithPassword("videoalert"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	tc.Container = pgContainer
	tc.DatabaseURL = fmt.Sprintf(
		"postgres://videoalert:videoalert@%s:%s/videoalert_test?sslmode=disable",
		host, port.Port(),
	)
	log.Println("Using postgres testcontainer at", tc.DatabaseURL)

	return tc, nil
}

// FreshDatabaseURL returns a connection URL for a store no previous
// scenario has touched. With sqlite every scenario gets its own file; with
// postgres scenarios share the container database, so callers should keep
// their fixtures distinguishable.
func (tc *TestContext) FreshDatabaseURL() string {
	if tc.usePostgres {
		return tc.DatabaseURL
	}
	tc.dbCounter++
	return "sqlite:///" + filepath.Join(tc.workDir, fmt.Sprintf("scenario-%d.db", tc.dbCounter))
}

// Close releases the container and scratch space.
func (tc *TestContext) Close(ctx context.Context) {
	if tc.Container != nil {
		_ = tc.Container.Terminate(ctx)
	}
	_ = os.RemoveAll(tc.workDir)
}
