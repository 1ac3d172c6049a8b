package lifecycle

import (
	"context"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and
// migrations. Schema management is idempotent - safe to run multiple times.
type SchemaManager interface {
	// Create creates the database schema. Existing season tables are
	// dropped first when overwrite is true.
	Create(ctx context.Context, overwrite bool) error

	// Migrate updates the database schema to the latest version.
	Migrate(ctx context.Context) error
}
