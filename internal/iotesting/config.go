// Package iotesting provides shared helpers for integration tests.
package iotesting

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/gnames/cbstats/pkg/config"
	"github.com/gnames/cbstats/pkg/db"
)

// TestDatabaseName is the database used by all integration tests, so
// they never touch a production database.
const TestDatabaseName = "cbstats_test"

// GetTestConfig returns default configuration with database settings
// taken from CBSTATS_DATABASE_* environment variables. The database name
// is always TestDatabaseName.
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if v := os.Getenv("CBSTATS_DATABASE_HOST"); v != "" {
		opts = append(opts, config.OptDatabaseHost(v))
	}
	if v := os.Getenv("CBSTATS_DATABASE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if v := os.Getenv("CBSTATS_DATABASE_USER"); v != "" {
		opts = append(opts, config.OptDatabaseUser(v))
	}
	if v := os.Getenv("CBSTATS_DATABASE_PASSWORD"); v != "" {
		opts = append(opts, config.OptDatabasePassword(v))
	}
	opts = append(opts, config.OptDatabaseDatabase(TestDatabaseName))
	cfg.Update(opts)

	return cfg
}

// Connect connects op to the test database. The test is skipped in short
// mode or when PostgreSQL is not reachable.
func Connect(t *testing.T, op db.Operator) *config.Config {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := GetTestConfig()
	if err := op.Connect(context.Background(), &cfg.Database); err != nil {
		t.Skipf("PostgreSQL is not available: %v", err)
	}
	t.Cleanup(func() { _ = op.Close() })
	return cfg
}
