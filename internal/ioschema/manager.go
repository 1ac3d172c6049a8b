// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/cbstats/pkg/db"
	"github.com/gnames/cbstats/pkg/lifecycle"
	"github.com/gnames/cbstats/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates season_records and runs tables. With overwrite the
// existing tables and their data are dropped first.
func (m *manager) Create(ctx context.Context, overwrite bool) error {
	if m.operator.Pool() == nil {
		return NotConnectedError()
	}

	if overwrite {
		if err := m.operator.DropTables(ctx, schema.TableNames()...); err != nil {
			return err
		}
		slog.Info("Dropped existing tables", "tables", schema.TableNames())
	}

	gormDB, err := m.openGORM(ctx)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}

	slog.Info("Database schema created")
	return nil
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(ctx context.Context) error {
	if m.operator.Pool() == nil {
		return NotConnectedError()
	}

	gormDB, err := m.openGORM(ctx)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}

	slog.Info("Database schema migrated")
	return nil
}

func (m *manager) openGORM(ctx context.Context) (*gorm.DB, error) {
	sqlDB := stdlib.OpenDBFromPool(m.operator.Pool())

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB.WithContext(ctx), nil
}
