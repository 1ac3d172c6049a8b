package config

import (
	"path/filepath"
)

var (
	// AppName names the per-user directories of cbstats.
	AppName = "cbstats"
)

// ConfigDir holds config.yaml (~/.config/cbstats).
func ConfigDir(homeDir string) string {
	return appDir(homeDir, ".config")
}

// CacheDir keeps the fetched records dataset between runs
// (~/.cache/cbstats).
func CacheDir(homeDir string) string {
	return appDir(homeDir, ".cache")
}

// LogDir is where the "file" log destination writes
// (~/.local/share/cbstats/logs).
func LogDir(homeDir string) string {
	return filepath.Join(appDir(homeDir, ".local", "share"), "logs")
}

// ConfigFilePath is the location of config.yaml.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// appDir joins the base directory under home with AppName.
func appDir(homeDir string, base ...string) string {
	parts := append([]string{homeDir}, base...)
	return filepath.Join(append(parts, AppName)...)
}
