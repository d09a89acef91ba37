// Package dbtest connects tests to a disposable PostgreSQL database named by
// LMS_TEST_DATABASE_URL. Tests are skipped when it is unset.
package dbtest

import (
	"context"
	"fmt"
	"os"
	"testing"

	"lmsconnector/migrations"
	"lmsconnector/src/config"
	"lmsconnector/src/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const EnvTestDatabaseURL = "LMS_TEST_DATABASE_URL"

var tables = []string{
	"sync_logs",
	"raw_student_data",
	"raw_grades",
	"raw_connections",
}

// SetupTestDB returns a migrated pool with every connector table truncated.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(EnvTestDatabaseURL)
	if dsn == "" {
		t.Skipf("%s not set; skipping database test", EnvTestDatabaseURL)
	}

	ctx := context.Background()
	pool, err := database.SetupDB(ctx, &config.SQLConfig{ConnectionString: dsn, MaxConns: 5})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	if err := migrations.Up(db); err != nil {
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	TruncateTables(t, pool)
	return pool
}

func TruncateTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	for _, table := range tables {
		if _, err := pool.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)); err != nil {
			t.Fatalf("Failed to truncate table %s: %v", table, err)
		}
	}
}
