package report

import (
	"fmt"
	"strconv"

	"github.com/gnames/cbstats/pkg/season"
)

// RecordHeader returns CSV column names of an enriched record. The input
// columns keep the names of the source dataset, derived columns follow.
func RecordHeader() []string {
	res := []string{
		"temporada", "rodada", "time", "posicao", "pontos", "gols",
		"ultima_rodada", "campeao",
	}
	for n := 1; n <= season.Lookback; n++ {
		res = append(res, fmt.Sprintf("z4_%d_anos", n))
	}
	return res
}

// RecordRow converts an enriched record to CSV cells.
func RecordRow(r season.Record) []string {
	res := []string{
		strconv.Itoa(r.Season),
		strconv.Itoa(r.Round),
		r.Team,
		strconv.Itoa(r.Standing),
		strconv.Itoa(r.Points),
		strconv.Itoa(r.Goals),
		strconv.Itoa(r.FinalRound),
		flag(r.IsChampion),
	}
	for n := 1; n <= season.Lookback; n++ {
		res = append(res, flag(r.RelegatedNAgo(n)))
	}
	return res
}

// RecordTable converts enriched records to a table with the given name.
func RecordTable(name string, recs []season.Record) Table {
	res := Table{Name: name, Header: RecordHeader()}
	res.Rows = make([][]string, len(recs))
	for i, r := range recs {
		res.Rows[i] = RecordRow(r)
	}
	return res
}

// RoundCheckTable converts the round validation report to a table.
func RoundCheckTable(counts []SeasonCount) Table {
	return seasonCountTable(RoundCheckFile, "rodada", counts)
}

// TeamCheckTable converts the team validation report to a table.
func TeamCheckTable(counts []SeasonCount) Table {
	return seasonCountTable(TeamCheckFile, "time", counts)
}

// CountsTable converts team appearances to a table.
func CountsTable(counts []season.TeamCount) Table {
	return teamCountTable(CountsFile, "qtd", counts)
}

// TitlesTable converts championship totals to a table.
func TitlesTable(counts []season.TeamCount) Table {
	return teamCountTable(TitlesFile, "titulos", counts)
}

// ChampionsTable converts champion statistics to a table.
func ChampionsTable(stats []ChampionStat) Table {
	res := Table{
		Name:   ChampionsFile,
		Header: []string{"temporada", "pontos_max", "gols_sum"},
		Rows:   make([][]string, len(stats)),
	}
	for i, v := range stats {
		res.Rows[i] = []string{
			strconv.Itoa(v.Season),
			strconv.Itoa(v.MaxPoints),
			strconv.Itoa(v.TotalGoals),
		}
	}
	return res
}

// GroupedTable converts points per team and season to a table.
func GroupedTable(points []TeamSeasonPoints) Table {
	res := Table{
		Name:   GroupedFile,
		Header: []string{"time", "temporada", "pontos"},
		Rows:   make([][]string, len(points)),
	}
	for i, v := range points {
		res.Rows[i] = []string{
			v.Team,
			strconv.Itoa(v.Season),
			strconv.Itoa(v.Points),
		}
	}
	return res
}

func seasonCountTable(name, column string, counts []SeasonCount) Table {
	res := Table{
		Name:   name,
		Header: []string{"temporada", column},
		Rows:   make([][]string, len(counts)),
	}
	for i, v := range counts {
		res.Rows[i] = []string{strconv.Itoa(v.Season), strconv.Itoa(v.Count)}
	}
	return res
}

func teamCountTable(name, column string, counts []season.TeamCount) Table {
	res := Table{
		Name:   name,
		Header: []string{"time", column},
		Rows:   make([][]string, len(counts)),
	}
	for i, v := range counts {
		res.Rows[i] = []string{v.Team, strconv.Itoa(v.Count)}
	}
	return res
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
