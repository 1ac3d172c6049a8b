package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&SeasonRecord{},
		&Run{},
	}
}

// TableNames returns names of all tables created by Migrate.
func TableNames() []string {
	return []string{
		SeasonRecord{}.TableName(),
		Run{}.TableName(),
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
