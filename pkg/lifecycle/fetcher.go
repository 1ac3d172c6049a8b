package lifecycle

import (
	"context"

	"github.com/gnames/cbstats/pkg/season"
)

// Fetcher reads the raw per-round standings of all seasons.
//
// A fetch makes at most one attempt. Records come back exactly as the source
// provides them, without derived columns.
type Fetcher interface {
	// Fetch returns raw season records.
	Fetch(ctx context.Context) ([]season.Record, error)
}
