package report

import (
	"time"

	"github.com/gnames/cbstats/pkg/season"
)

// Manifest describes one export run. It is written next to the tables.
type Manifest struct {
	RunID       string         `json:"run_id"`
	CreatedAt   time.Time      `json:"created_at"`
	FirstSeason int            `json:"first_season"`
	CurrentYear int            `json:"current_year"`
	Records     int            `json:"records"`
	Seasons     int            `json:"seasons"`
	Files       map[string]int `json:"files"`
}

// NewManifest summarizes enriched records and the tables built from them.
// Files maps every table name to its number of data rows.
func NewManifest(
	runID string,
	recs []season.Record,
	tables []Table,
	firstSeason, currentYear int,
) Manifest {
	files := make(map[string]int, len(tables))
	for _, v := range tables {
		files[v.Name] = len(v.Rows)
	}
	return Manifest{
		RunID:       runID,
		CreatedAt:   time.Now().UTC(),
		FirstSeason: firstSeason,
		CurrentYear: currentYear,
		Records:     len(recs),
		Seasons:     len(season.FinalRounds(recs)),
		Files:       files,
	}
}
