package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptSourceURL sets the URL or local path of the raw dataset.
func OptSourceURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Source URL", s) {
			c.Source.URL = s
		}
	}
}

// OptSourceTimeout sets the HTTP timeout in seconds.
func OptSourceTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("Source Timeout", i) {
			c.Source.Timeout = i
		}
	}
}

// OptSourceOffline makes fetch read the cached dataset only.
// Runtime-only field - not in ToOptions().
func OptSourceOffline(b bool) Option {
	return func(c *Config) {
		c.Source.Offline = b
	}
}

// OptStoreKind sets the blob store backend.
// Valid values: "fs", "sqlite", "azure".
func OptStoreKind(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Store.Kind", s) {
			c.Store.Kind = s
		}
	}
}

// OptStorePath sets the root directory or database file of the store.
func OptStorePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Store Path", s) {
			c.Store.Path = s
		}
	}
}

// OptStorePrefix sets the prefix of every artifact name.
// Leading and trailing slashes are removed.
func OptStorePrefix(s string) Option {
	s = strings.Trim(strings.TrimSpace(s), "/")
	return func(c *Config) {
		if isValidString("Store Prefix", s) {
			c.Store.Prefix = s
		}
	}
}

// OptStoreContainer sets the Azure Blob Storage container.
func OptStoreContainer(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Store Container", s) {
			c.Store.Container = s
		}
	}
}

// OptStoreConnectionString sets the Azure Storage connection string.
func OptStoreConnectionString(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Store Connection String", s) {
			c.Store.ConnectionString = s
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of records per bulk copy.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptStatsFirstSeason sets the first season expected in the dataset.
func OptStatsFirstSeason(i int) Option {
	return func(c *Config) {
		if isValidYear("First Season", i) {
			c.Stats.FirstSeason = i
		}
	}
}

// OptStatsCurrentYear overrides the in-progress season.
// Runtime-only field - not in ToOptions().
func OptStatsCurrentYear(i int) Option {
	return func(c *Config) {
		if isValidYear("Current Year", i) {
			c.Stats.CurrentYear = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent uploads.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
