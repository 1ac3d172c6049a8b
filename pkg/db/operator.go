// Package db defines the contract for PostgreSQL connection management.
package db

import (
	"context"

	"github.com/gnames/cbstats/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator manages the connection pool and exposes it to the schema
// manager and the populator. Those components run their own SQL through
// Pool().
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool, or nil before Connect.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the public schema.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public schema.
	HasTables(ctx context.Context) (bool, error)

	// DropTables drops the given tables if they exist.
	DropTables(ctx context.Context, tableNames ...string) error
}
