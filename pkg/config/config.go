// Package config provides configuration management for cbstats.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Source: url, timeout
//   - Store: kind, path, prefix, container, connection_string
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Stats: first_season
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Source.Offline, Stats.CurrentYear (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use CBSTATS_ prefix with underscores for nesting:
//
//	CBSTATS_SOURCE_URL=https://example.org/api/rounds
//	CBSTATS_STORE_KIND=sqlite
//	CBSTATS_DATABASE_HOST=localhost
//	CBSTATS_LOG_LEVEL=info
//	CBSTATS_JOBS_NUMBER=8
package config

import (
	"runtime"
	"time"
)

// Config represents the complete cbstats configuration.
type Config struct {
	// Source describes where the raw season dataset comes from.
	Source SourceConfig `mapstructure:"source" yaml:"source"`

	// Store describes where the generated artifacts are written.
	Store StoreConfig `mapstructure:"store" yaml:"store"`

	// Database contains PostgreSQL connection settings used by the
	// create and populate commands.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Stats contains parameters of the derived statistics.
	Stats StatsConfig `mapstructure:"stats" yaml:"stats"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent uploads during export.
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `yaml:"-"`
}

// SourceConfig points to the raw per-round standings dataset.
type SourceConfig struct {
	// URL is either an http(s) endpoint returning a JSON array of
	// season records, or a path to a local JSON file with the same content.
	URL string `mapstructure:"url" yaml:"url"`

	// Timeout is the HTTP request timeout in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`

	// Offline makes the fetcher skip the source and read the dataset
	// cached by the previous successful fetch.
	// Runtime-only field.
	Offline bool `mapstructure:"-" yaml:"-"`
}

// StoreConfig selects and configures the blob store backend.
type StoreConfig struct {
	// Kind is the backend: "fs", "sqlite" or "azure".
	Kind string `mapstructure:"kind" yaml:"kind"`

	// Path is the root directory for "fs" or the database file for
	// "sqlite". Ignored by "azure".
	Path string `mapstructure:"path" yaml:"path"`

	// Prefix is prepended to every artifact name.
	Prefix string `mapstructure:"prefix" yaml:"prefix"`

	// Container is the Azure Blob Storage container name.
	Container string `mapstructure:"container" yaml:"container"`

	// ConnectionString is the Azure Storage account connection string.
	ConnectionString string `mapstructure:"connection_string" yaml:"connection_string"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of records sent per COPY during populate.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// StatsConfig holds parameters of the derived statistics.
type StatsConfig struct {
	// FirstSeason is the first season expected in the dataset. The round
	// validation report has one row per season from FirstSeason to
	// CurrentYear.
	FirstSeason int `mapstructure:"first_season" yaml:"first_season"`

	// CurrentYear is the in-progress season. Its rows never get a champion
	// and it is excluded from the points report.
	// Runtime-only field, defaults to the current calendar year.
	CurrentYear int `mapstructure:"-" yaml:"-"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Source: SourceConfig{
			URL:     "https://fnt-campeonato-bra.azurewebsites.net/api/getwf",
			Timeout: 60,
		},
		Store: StoreConfig{
			Kind:   "fs",
			Path:   "cbstats-store",
			Prefix: "analytics/cb",
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "cbstats",
			SSLMode:   "disable",
			BatchSize: 10_000,
		},
		Stats: StatsConfig{
			FirstSeason: 2003,
			CurrentYear: time.Now().Year(),
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
