package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/crewlog/crewlog-backend/internal/pkg/database"
)

// TestDatabaseSetup wraps the connection the repository tests run against.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL; callers skip when it is
// not set.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn, 4, 1)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	return &TestDatabaseSetup{DB: db}
}

// TruncateAllTables wipes every table touched by the repositories.
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"timelogs",
		"vacations",
		"holidays",
		"projects",
		"stacks",
		"facilities",
		"feedbacks",
		"users",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// Close closes the database connection.
func (s *TestDatabaseSetup) Close() {
	s.DB.Close()
}
