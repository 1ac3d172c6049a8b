// Package iopopulate implements Populator interface for loading enriched
// season records into PostgreSQL.
// This is an impure I/O package that performs bulk inserts.
package iopopulate

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/cbstats/pkg/config"
	"github.com/gnames/cbstats/pkg/db"
	"github.com/gnames/cbstats/pkg/lifecycle"
	"github.com/gnames/cbstats/pkg/schema"
	"github.com/gnames/cbstats/pkg/season"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// populator implements the Populator interface.
type populator struct {
	cfg      *config.Config
	operator db.Operator
	// quiet disables the progress bar.
	quiet bool
}

// Option configures the populator.
type Option func(*populator)

// OptQuiet disables the progress bar of Populate.
func OptQuiet(b bool) Option {
	return func(p *populator) {
		p.quiet = b
	}
}

// New creates a new Populator.
func New(
	cfg *config.Config,
	op db.Operator,
	opts ...Option,
) lifecycle.Populator {
	res := &populator{cfg: cfg, operator: op}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Populate replaces rows of all seasons present in recs and registers the
// run. Everything happens in one transaction.
func (p *populator) Populate(
	ctx context.Context,
	recs []season.Record,
	runID string,
) error {
	pool := p.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	table := schema.SeasonRecord{}.TableName()
	exists, err := p.operator.TableExists(ctx, table)
	if err != nil {
		return err
	}
	if !exists {
		return NoTablesError(table)
	}

	runUUID, err := uuid.Parse(runID)
	if err != nil {
		return RunError(runID, err)
	}

	startTime := time.Now()
	rows := recordRows(recs, runUUID)
	seasons := seasonList(recs)

	tx, err := pool.Begin(ctx)
	if err != nil {
		return TransactionError(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		"DELETE FROM season_records WHERE season = ANY($1)", seasons)
	if err != nil {
		return DeleteError(seasons, err)
	}

	if err = p.copyRows(ctx, tx, rows); err != nil {
		return err
	}

	run := schema.Run{
		ID:          runID,
		CurrentYear: p.cfg.Stats.CurrentYear,
		Records:     len(rows),
		CreatedAt:   time.Now().UTC(),
	}
	if len(seasons) > 0 {
		run.FirstSeason = seasons[0]
		run.LastSeason = seasons[len(seasons)-1]
	}
	_, err = tx.Exec(ctx, `
INSERT INTO runs (id, first_season, last_season, current_year, records, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`,
		runUUID, run.FirstSeason, run.LastSeason, run.CurrentYear,
		run.Records, run.CreatedAt,
	)
	if err != nil {
		return RunError(runID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return TransactionError(err)
	}

	slog.Info("Loaded season records",
		"records", humanize.Comma(int64(len(rows))),
		"seasons", len(seasons),
		"run_id", runID,
		"duration", gnfmt.TimeString(time.Since(startTime).Seconds()),
	)
	return nil
}

func (p *populator) copyRows(
	ctx context.Context,
	tx pgx.Tx,
	rows [][]any,
) error {
	columns := schema.SeasonRecord{}.Columns()

	bar := p.newProgressBar(len(rows))
	if bar != nil {
		defer bar.Finish()
	}

	for _, batch := range batches(rows, p.cfg.Database.BatchSize) {
		_, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"season_records"},
			columns,
			pgx.CopyFromRows(batch),
		)
		if err != nil {
			return CopyError(err)
		}
		if bar != nil {
			bar.Add(len(batch))
		}
	}
	return nil
}

// newProgressBar returns nil in quiet mode.
func (p *populator) newProgressBar(total int) *pb.ProgressBar {
	if p.quiet {
		return nil
	}
	bar := pb.Full.Start(total)
	bar.Set("prefix", "Loading records: ")
	bar.Set(pb.CleanOnFinish, true)
	return bar
}

// recordRows converts records to CopyFrom rows with binary UUIDs. Records
// with the same team, season and round share an id, only the first one is
// kept.
func recordRows(recs []season.Record, runID uuid.UUID) [][]any {
	seen := make(map[string]struct{}, len(recs))
	res := make([][]any, 0, len(recs))
	for _, r := range recs {
		sr := schema.NewSeasonRecord(r, runID.String())
		if _, ok := seen[sr.ID]; ok {
			continue
		}
		seen[sr.ID] = struct{}{}

		row := sr.Values()
		row[0] = uuid.MustParse(sr.ID)
		row[len(row)-1] = runID
		res = append(res, row)
	}
	if dups := len(recs) - len(res); dups > 0 {
		slog.Warn("Skipped duplicate records", "count", dups)
	}
	return res
}

// seasonList returns sorted distinct seasons.
func seasonList(recs []season.Record) []int {
	var res []int
	for s := range season.FinalRounds(recs) {
		res = append(res, s)
	}
	slices.Sort(res)
	return res
}

// batches splits rows into chunks of at most size rows.
func batches(rows [][]any, size int) [][][]any {
	if size < 1 {
		size = len(rows)
	}
	var res [][][]any
	for i := 0; i < len(rows); i += size {
		end := min(i+size, len(rows))
		res = append(res, rows[i:end])
	}
	return res
}
