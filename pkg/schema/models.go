// Package schema provides database models for enriched season records.
// Tables are created and updated by GORM AutoMigrate.
package schema

import (
	"fmt"
	"time"

	"github.com/gnames/cbstats/pkg/season"
	"github.com/gnames/gnuuid"
)

// SeasonRecord is one enriched row: a team standing after a round.
type SeasonRecord struct {
	// ID is a UUIDv5 of "team|season|round", stable between runs.
	ID string `gorm:"type:uuid;primaryKey"`

	Season     int    `gorm:"not null;index:idx_season_round,priority:1"`
	Round      int    `gorm:"not null;index:idx_season_round,priority:2"`
	Team       string `gorm:"type:varchar(100);not null;index"`
	Standing   int    `gorm:"not null"`
	Points     int    `gorm:"not null"`
	Goals      int    `gorm:"not null"`
	FinalRound int    `gorm:"not null"`

	// IsChampion is true on every row of the season winner in a
	// finished season.
	IsChampion bool `gorm:"not null;default:false"`

	// Relegated1Ago .. Relegated3Ago tell if the team finished in the
	// bottom four one, two or three seasons before this one.
	Relegated1Ago bool `gorm:"column:relegated_1_ago;not null;default:false"`
	Relegated2Ago bool `gorm:"column:relegated_2_ago;not null;default:false"`
	Relegated3Ago bool `gorm:"column:relegated_3_ago;not null;default:false"`

	// RunID points to the run that loaded the row.
	RunID string `gorm:"type:uuid;index"`
}

// TableName overrides the GORM default.
func (SeasonRecord) TableName() string {
	return "season_records"
}

// Run registers one load of season records.
type Run struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	FirstSeason int    `gorm:"not null"`
	LastSeason  int    `gorm:"not null"`
	CurrentYear int    `gorm:"not null"`
	Records     int    `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName overrides the GORM default.
func (Run) TableName() string {
	return "runs"
}

// RecordID returns the deterministic identifier of a record.
func RecordID(r season.Record) string {
	key := fmt.Sprintf("%s|%d|%d", r.Team, r.Season, r.Round)
	return gnuuid.New(key).String()
}

// NewSeasonRecord converts an enriched record to its database model.
func NewSeasonRecord(r season.Record, runID string) SeasonRecord {
	return SeasonRecord{
		ID:            RecordID(r),
		Season:        r.Season,
		Round:         r.Round,
		Team:          r.Team,
		Standing:      r.Standing,
		Points:        r.Points,
		Goals:         r.Goals,
		FinalRound:    r.FinalRound,
		IsChampion:    r.IsChampion,
		Relegated1Ago: r.RelegatedNAgo(1),
		Relegated2Ago: r.RelegatedNAgo(2),
		Relegated3Ago: r.RelegatedNAgo(3),
		RunID:         runID,
	}
}

// Columns returns column names of season_records in the order of Values.
func (SeasonRecord) Columns() []string {
	return []string{
		"id", "season", "round", "team", "standing", "points", "goals",
		"final_round", "is_champion",
		"relegated_1_ago", "relegated_2_ago", "relegated_3_ago",
		"run_id",
	}
}

// Values returns field values in the order of Columns.
func (s SeasonRecord) Values() []any {
	return []any{
		s.ID, s.Season, s.Round, s.Team, s.Standing, s.Points, s.Goals,
		s.FinalRound, s.IsChampion,
		s.Relegated1Ago, s.Relegated2Ago, s.Relegated3Ago,
		s.RunID,
	}
}
