// Package cbstats holds application-wide metadata of the cbstats tool.
package cbstats

var (
	// Version of the application, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
