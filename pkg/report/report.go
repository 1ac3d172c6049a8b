// Package report builds the derived tables exported after enrichment:
// full and final-round tables, data validation checks and champion
// statistics. All builders are pure and expect season.Enrich output.
package report

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/gnames/cbstats/pkg/season"
)

// Artifact names of the exported tables.
const (
	FullFile       = "tb_sys_campeonato_completo.csv"
	FinalRoundFile = "tb_sys_ultima_rodada.csv"
	RoundCheckFile = "tb_sys_validacao_rodada.csv"
	TeamCheckFile  = "tb_sys_validacao_time.csv"
	CountsFile     = "tb_sys_counts.csv"
	ChampionsFile  = "tb_sys_estatisticas_campeoes.csv"
	GroupedFile    = "tb_sys_grouped.csv"
	TitlesFile     = "tb_sys_titulos.csv"
	ManifestFile   = "manifest.json"
)

// Table is a named table of string cells, ready to be written as CSV.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// SeasonCount is a per-season counter.
type SeasonCount struct {
	Season int
	Count  int
}

// ChampionStat summarizes the champion of a season.
type ChampionStat struct {
	Season     int
	MaxPoints  int
	TotalGoals int
}

// TeamSeasonPoints is the points sum of a team in a season.
type TeamSeasonPoints struct {
	Team   string
	Season int
	Points int
}

// Build creates all report tables in export order.
func Build(recs []season.Record, firstSeason, currentYear int) []Table {
	final := season.FinalRoundRows(recs)
	return []Table{
		RecordTable(FullFile, recs),
		RecordTable(FinalRoundFile, final),
		RoundCheckTable(RoundCheck(recs, firstSeason, currentYear)),
		TeamCheckTable(TeamCheck(recs)),
		CountsTable(TeamAppearances(final)),
		ChampionsTable(ChampionStats(final)),
		GroupedTable(SeasonPoints(final, currentYear)),
		TitlesTable(season.ChampionshipTotals(recs)),
	}
}

// RoundCheck returns the number of distinct rounds of every season from
// firstSeason to currentYear inclusive. Seasons missing from the data get
// zero, seasons outside the range are left out.
func RoundCheck(
	recs []season.Record,
	firstSeason, currentYear int,
) []SeasonCount {
	rounds := distinctCount(recs, func(r season.Record) string {
		return strconv.Itoa(r.Round)
	})

	res := make([]SeasonCount, 0, max(currentYear-firstSeason+1, 0))
	for s := firstSeason; s <= currentYear; s++ {
		res = append(res, SeasonCount{Season: s, Count: rounds[s]})
	}
	return res
}

// TeamCheck returns the number of distinct teams of every season present
// in the data, ordered by season.
func TeamCheck(recs []season.Record) []SeasonCount {
	teams := distinctCount(recs, func(r season.Record) string {
		return r.Team
	})

	res := make([]SeasonCount, 0, len(teams))
	for s, c := range teams {
		res = append(res, SeasonCount{Season: s, Count: c})
	}
	slices.SortFunc(res, func(a, b SeasonCount) int {
		return cmp.Compare(a.Season, b.Season)
	})
	return res
}

// TeamAppearances counts final-round rows per team, which is the number
// of seasons the team played. Least frequent teams come first.
func TeamAppearances(final []season.Record) []season.TeamCount {
	counts := make(map[string]int)
	for _, r := range final {
		counts[r.Team]++
	}

	res := make([]season.TeamCount, 0, len(counts))
	for team, c := range counts {
		res = append(res, season.TeamCount{Team: team, Count: c})
	}
	slices.SortFunc(res, func(a, b season.TeamCount) int {
		return cmp.Or(
			cmp.Compare(a.Count, b.Count),
			cmp.Compare(a.Team, b.Team),
		)
	})
	return res
}

// ChampionStats returns, for every season with a champion, the maximum
// points and the total goals of the champion's final-round rows.
func ChampionStats(final []season.Record) []ChampionStat {
	stats := make(map[int]*ChampionStat)
	for _, r := range final {
		if !r.IsChampion {
			continue
		}
		st, ok := stats[r.Season]
		if !ok {
			st = &ChampionStat{Season: r.Season, MaxPoints: r.Points}
			stats[r.Season] = st
		}
		st.MaxPoints = max(st.MaxPoints, r.Points)
		st.TotalGoals += r.Goals
	}

	res := make([]ChampionStat, 0, len(stats))
	for _, st := range stats {
		res = append(res, *st)
	}
	slices.SortFunc(res, func(a, b ChampionStat) int {
		return cmp.Compare(a.Season, b.Season)
	})
	return res
}

// SeasonPoints sums final-round points per team and season, leaving out
// the in-progress currentYear season. The result is ordered by team and
// season.
func SeasonPoints(final []season.Record, currentYear int) []TeamSeasonPoints {
	points := make(map[season.TeamSeason]int)
	for _, r := range final {
		if r.Season == currentYear {
			continue
		}
		points[r.Key()] += r.Points
	}

	res := make([]TeamSeasonPoints, 0, len(points))
	for k, p := range points {
		res = append(res, TeamSeasonPoints{
			Team:   k.Team,
			Season: k.Season,
			Points: p,
		})
	}
	slices.SortFunc(res, func(a, b TeamSeasonPoints) int {
		return cmp.Or(
			cmp.Compare(a.Team, b.Team),
			cmp.Compare(a.Season, b.Season),
		)
	})
	return res
}

func distinctCount(
	recs []season.Record,
	key func(season.Record) string,
) map[int]int {
	seen := make(map[int]map[string]struct{})
	for _, r := range recs {
		if seen[r.Season] == nil {
			seen[r.Season] = make(map[string]struct{})
		}
		seen[r.Season][key(r)] = struct{}{}
	}

	res := make(map[int]int, len(seen))
	for s, v := range seen {
		res[s] = len(v)
	}
	return res
}
