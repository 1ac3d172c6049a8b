package config_test

import (
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gnames/cbstats/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "cbstats"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "cbstats"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "cbstats", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "cbstats", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	assert.Equal(t, 60, cfg.Source.Timeout)
	assert.False(t, cfg.Source.Offline)

	assert.Equal(t, "fs", cfg.Store.Kind)
	assert.Equal(t, "analytics/cb", cfg.Store.Prefix)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "cbstats", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10_000, cfg.Database.BatchSize)

	assert.Equal(t, 2003, cfg.Stats.FirstSeason)
	assert.Equal(t, time.Now().Year(), cfg.Stats.CurrentYear)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)

	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
}

func TestOptionStrings(t *testing.T) {
	tests := []struct {
		name  string
		opt   config.Option
		get   func(*config.Config) string
		value string
	}{
		{
			name:  "source url trims whitespace",
			opt:   config.OptSourceURL("  http://localhost/rounds  "),
			get:   func(c *config.Config) string { return c.Source.URL },
			value: "http://localhost/rounds",
		},
		{
			name:  "empty store path is ignored",
			opt:   config.OptStorePath("   "),
			get:   func(c *config.Config) string { return c.Store.Path },
			value: "cbstats-store",
		},
		{
			name:  "store prefix drops slashes",
			opt:   config.OptStorePrefix("/tables/analytics/cb/"),
			get:   func(c *config.Config) string { return c.Store.Prefix },
			value: "tables/analytics/cb",
		},
		{
			name:  "store kind is lowercased",
			opt:   config.OptStoreKind("SQLite"),
			get:   func(c *config.Config) string { return c.Store.Kind },
			value: "sqlite",
		},
		{
			name:  "unknown store kind is ignored",
			opt:   config.OptStoreKind("s3"),
			get:   func(c *config.Config) string { return c.Store.Kind },
			value: "fs",
		},
		{
			name:  "database host",
			opt:   config.OptDatabaseHost("db.example.com"),
			get:   func(c *config.Config) string { return c.Database.Host },
			value: "db.example.com",
		},
		{
			name:  "unknown ssl mode is ignored",
			opt:   config.OptDatabaseSSLMode("sometimes"),
			get:   func(c *config.Config) string { return c.Database.SSLMode },
			value: "disable",
		},
		{
			name:  "log format text",
			opt:   config.OptLogFormat("TEXT"),
			get:   func(c *config.Config) string { return c.Log.Format },
			value: "text",
		},
		{
			name:  "log destination stdout",
			opt:   config.OptLogDestination("stdout"),
			get:   func(c *config.Config) string { return c.Log.Destination },
			value: "stdout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt})
			assert.Equal(t, tt.value, tt.get(cfg))
		})
	}
}

func TestOptionInts(t *testing.T) {
	tests := []struct {
		name  string
		opt   config.Option
		get   func(*config.Config) int
		value int
	}{
		{
			name:  "source timeout",
			opt:   config.OptSourceTimeout(5),
			get:   func(c *config.Config) int { return c.Source.Timeout },
			value: 5,
		},
		{
			name:  "negative timeout is ignored",
			opt:   config.OptSourceTimeout(-5),
			get:   func(c *config.Config) int { return c.Source.Timeout },
			value: 60,
		},
		{
			name:  "batch size",
			opt:   config.OptDatabaseBatchSize(500),
			get:   func(c *config.Config) int { return c.Database.BatchSize },
			value: 500,
		},
		{
			name:  "first season",
			opt:   config.OptStatsFirstSeason(1971),
			get:   func(c *config.Config) int { return c.Stats.FirstSeason },
			value: 1971,
		},
		{
			name:  "invalid first season is ignored",
			opt:   config.OptStatsFirstSeason(71),
			get:   func(c *config.Config) int { return c.Stats.FirstSeason },
			value: 2003,
		},
		{
			name:  "current year",
			opt:   config.OptStatsCurrentYear(2023),
			get:   func(c *config.Config) int { return c.Stats.CurrentYear },
			value: 2023,
		},
		{
			name:  "jobs number zero is ignored",
			opt:   config.OptJobsNumber(0),
			get:   func(c *config.Config) int { return c.JobsNumber },
			value: runtime.NumCPU(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt})
			assert.Equal(t, tt.value, tt.get(cfg))
		})
	}
}

func TestToOptions(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptSourceURL("testdata/rounds.json"),
		config.OptStoreKind("sqlite"),
		config.OptStorePath("/tmp/cb.db"),
		config.OptStoreContainer("lake"),
		config.OptDatabasePort(5433),
		config.OptStatsFirstSeason(2006),
		config.OptLogLevel("debug"),
		config.OptJobsNumber(3),
		config.OptSourceOffline(true),
		config.OptStatsCurrentYear(2020),
		config.OptHomeDir("/home/cb"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, "testdata/rounds.json", dst.Source.URL)
	assert.Equal(t, "sqlite", dst.Store.Kind)
	assert.Equal(t, "/tmp/cb.db", dst.Store.Path)
	assert.Equal(t, "lake", dst.Store.Container)
	assert.Equal(t, 5433, dst.Database.Port)
	assert.Equal(t, 2006, dst.Stats.FirstSeason)
	assert.Equal(t, "debug", dst.Log.Level)
	assert.Equal(t, 3, dst.JobsNumber)

	// runtime-only fields are not carried over
	assert.False(t, dst.Source.Offline)
	assert.Equal(t, time.Now().Year(), dst.Stats.CurrentYear)
	assert.Empty(t, dst.HomeDir)
}
