package lifecycle

import (
	"context"

	"github.com/gnames/cbstats/pkg/report"
)

// Exporter writes generated artifacts to a blob store and reads them back.
type Exporter interface {
	// Upload encodes data according to the extension of name and writes it
	// under the store prefix. Only .csv (report.Table) and .json are
	// supported.
	Upload(ctx context.Context, name string, data any) error

	// Read returns the decoded artifact. Failures are logged and reported
	// as a missing result (ok == false).
	Read(ctx context.Context, name string) (data any, ok bool)

	// ExportAll uploads all tables and the run manifest.
	ExportAll(ctx context.Context, tables []report.Table, m report.Manifest) error
}
