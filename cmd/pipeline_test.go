package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/cbstats/internal/iofs"
	"github.com/gnames/cbstats/pkg/config"
	"github.com/gnames/cbstats/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSource writes two finished seasons and one in progress.
func writeSource(t *testing.T, dir string) string {
	t.Helper()
	var items []string
	teams := []string{"Palmeiras", "Flamengo", "Santos", "Gremio", "Vasco", "Bahia"}
	for _, year := range []int{2021, 2022, 2023} {
		for round := 1; round <= 2; round++ {
			for i, team := range teams {
				items = append(items, fmt.Sprintf(
					`{"temporada":%d,"rodada":%d,"time":%q,"posicao":%d,"pontos":%d,"gols":%d}`,
					year, round, team, i+1, (len(teams)-i)*round, round,
				))
			}
		}
	}
	path := filepath.Join(dir, "standings.json")
	data := "[" + strings.Join(items, ",\n") + "]"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(dir))

	c := config.New()
	c.Update([]config.Option{
		config.OptHomeDir(dir),
		config.OptSourceURL(writeSource(t, dir)),
		config.OptStorePath(filepath.Join(dir, "store")),
		config.OptStatsFirstSeason(2021),
		config.OptStatsCurrentYear(2023),
	})
	return c
}

func TestEnrich(t *testing.T) {
	res, err := enrich(t.Context(), testConfig(t))
	require.NoError(t, err)

	assert.Len(t, res.records, 36)
	assert.Len(t, res.tables, 8)
	assert.Equal(t, 3, res.manifest.Seasons)
	assert.Equal(t, res.runID, res.manifest.RunID)

	titles, ok := tableByName(res.tables, "titles")
	require.True(t, ok)
	assert.Equal(t, [][]string{{"Palmeiras", "2"}}, titles.Rows)
}

func TestRunAndGet(t *testing.T) {
	cfg = testConfig(t)
	require.NoError(t, runRun(false, true))

	var buf bytes.Buffer
	require.NoError(t, runGet(&buf, report.TitlesFile, "csv"))
	assert.Contains(t, buf.String(), "Palmeiras,2")

	buf.Reset()
	require.NoError(t, runGet(&buf, report.ManifestFile, "table"))
	assert.Contains(t, buf.String(), `"current_year": 2023`)

	assert.Error(t, runGet(&buf, "missing.csv", "table"))
	assert.Error(t, runGet(&buf, report.TitlesFile, "xml"))
}

func TestRunReport(t *testing.T) {
	cfg = testConfig(t)

	var buf bytes.Buffer
	require.NoError(t, runReport(&buf, "md", []string{"rounds"}))
	out := buf.String()
	assert.Contains(t, out, "temporada")
	assert.Contains(t, out, "| 2022 | 2 |")

	assert.Error(t, runReport(&buf, "md", []string{"unknown"}))
	assert.Error(t, runReport(&buf, "html", nil))
}

func TestTableByName(t *testing.T) {
	tables := []report.Table{
		{Name: report.TitlesFile},
		{Name: report.CountsFile},
	}
	tbl, ok := tableByName(tables, "titles")
	assert.True(t, ok)
	assert.Equal(t, report.TitlesFile, tbl.Name)

	tbl, ok = tableByName(tables, report.CountsFile)
	assert.True(t, ok)
	assert.Equal(t, report.CountsFile, tbl.Name)

	_, ok = tableByName(tables, "grouped")
	assert.False(t, ok)
}

func TestRenderTable(t *testing.T) {
	tbl := report.Table{
		Name:   report.TitlesFile,
		Header: []string{"time", "titulos"},
		Rows:   [][]string{{"Palmeiras", "2"}},
	}

	var buf bytes.Buffer
	renderTable(&buf, tbl, "csv")
	assert.Contains(t, buf.String(), "Palmeiras,2")

	buf.Reset()
	renderTable(&buf, tbl, "table")
	assert.Contains(t, buf.String(), "Palmeiras")
	assert.Contains(t, buf.String(), "┌")
}
