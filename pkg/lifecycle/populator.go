package lifecycle

import (
	"context"

	"github.com/gnames/cbstats/pkg/season"
)

// Populator loads enriched records into PostgreSQL.
//
// Loading is a full refresh of the seasons present in the records: their
// old rows are replaced in a single transaction.
type Populator interface {
	// Populate stores records and registers the run under runID.
	Populate(ctx context.Context, recs []season.Record, runID string) error
}
