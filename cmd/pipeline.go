/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/cbstats/internal/iofetch"
	"github.com/gnames/cbstats/pkg/config"
	"github.com/gnames/cbstats/pkg/report"
	"github.com/gnames/cbstats/pkg/season"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
)

// result holds everything a run produces before it is written anywhere.
type result struct {
	runID    string
	records  []season.Record
	tables   []report.Table
	manifest report.Manifest
}

// enrich fetches raw records and applies all enrichment steps. Any
// failure aborts the run, nothing is published.
func enrich(ctx context.Context, c *config.Config) (*result, error) {
	startTime := time.Now()

	recs, err := iofetch.New(c).Fetch(ctx)
	if err != nil {
		return nil, err
	}

	recs, err = season.Enrich(recs, c.Stats.CurrentYear)
	if err != nil {
		return nil, err
	}

	res := &result{
		runID:   uuid.NewString(),
		records: recs,
		tables:  report.Build(recs, c.Stats.FirstSeason, c.Stats.CurrentYear),
	}
	res.manifest = report.NewManifest(
		res.runID, recs, res.tables,
		c.Stats.FirstSeason, c.Stats.CurrentYear,
	)

	gn.Info("Enriched <em>%s</em> records of %d seasons in %s",
		humanize.Comma(int64(len(recs))),
		res.manifest.Seasons,
		gnfmt.TimeString(time.Since(startTime).Seconds()),
	)
	return res, nil
}

// tableByName finds a table by its file name or short name.
func tableByName(tables []report.Table, name string) (report.Table, bool) {
	if v, ok := shortNames[name]; ok {
		name = v
	}
	for _, v := range tables {
		if v.Name == name {
			return v, true
		}
	}
	return report.Table{}, false
}

var shortNames = map[string]string{
	"full":      report.FullFile,
	"final":     report.FinalRoundFile,
	"rounds":    report.RoundCheckFile,
	"teams":     report.TeamCheckFile,
	"counts":    report.CountsFile,
	"champions": report.ChampionsFile,
	"grouped":   report.GroupedFile,
	"titles":    report.TitlesFile,
}

// renderTable writes tbl to w as a terminal table, CSV or Markdown.
func renderTable(w io.Writer, tbl report.Table, format string) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	header := make(table.Row, len(tbl.Header))
	for i, v := range tbl.Header {
		header[i] = v
	}
	tw.AppendHeader(header)

	for _, row := range tbl.Rows {
		r := make(table.Row, len(row))
		for i, v := range row {
			r[i] = v
		}
		tw.AppendRow(r)
	}

	switch format {
	case "csv":
		tw.RenderCSV()
	case "md":
		tw.RenderMarkdown()
	default:
		tw.SetTitle("%s", tbl.Name)
		tw.SetStyle(table.StyleLight)
		tw.Render()
	}
}
