// Package season enriches per-round league standings with derived
// columns: the final round of each season, the champion flag and the
// relegation history of each team.
//
// Every stage is a pure function from a table (a slice of Record) to a new
// table. Input slices are never modified, rows are never dropped or
// duplicated.
package season

import (
	"cmp"
	"slices"
)

const (
	// Lookback is the number of past seasons covered by relegation history.
	Lookback = 3

	// RelegationSlots is the number of teams relegated after every season.
	RelegationSlots = 4
)

// Record is the standing of one team after one round of a season.
type Record struct {
	Season   int    `json:"temporada"`
	Round    int    `json:"rodada"`
	Team     string `json:"time"`
	Standing int    `json:"posicao"`
	Points   int    `json:"pontos"`
	Goals    int    `json:"gols"`

	// FinalRound is the last round played in the record's season.
	FinalRound int `json:"ultima_rodada"`

	// IsChampion is true for every row of the team that finished first in
	// the final round of a completed season.
	IsChampion bool `json:"campeao"`

	// RelegatedAgo[n-1] is true when the team was relegated n seasons
	// before the previous one, i.e. it finished in the bottom slots of
	// season Season-n-1.
	RelegatedAgo [Lookback]bool `json:"-"`
}

// TeamSeason is the (team, season) pair all per-team flags are joined on.
type TeamSeason struct {
	Team   string
	Season int
}

// TeamCount is a per-team counter.
type TeamCount struct {
	Team  string
	Count int
}

// Key returns the (team, season) pair of the record.
func (r Record) Key() TeamSeason {
	return TeamSeason{Team: r.Team, Season: r.Season}
}

// IsFinal is true if the record belongs to the final round of its season.
func (r Record) IsFinal() bool {
	return r.FinalRound > 0 && r.Round == r.FinalRound
}

// RelegatedNAgo returns the relegation flag for lookback distance n
// (1..Lookback). Other distances are always false.
func (r Record) RelegatedNAgo(n int) bool {
	if n < 1 || n > Lookback {
		return false
	}
	return r.RelegatedAgo[n-1]
}

// Enrich runs all stages in order: AttachFinalRound, AttachChampion,
// AttachRelegationHistory. Seasons at or after currentYear are considered
// incomplete and never get a champion.
func Enrich(recs []Record, currentYear int) ([]Record, error) {
	res := AttachFinalRound(recs)

	res, err := AttachChampion(res, currentYear)
	if err != nil {
		return nil, err
	}

	return AttachRelegationHistory(res), nil
}

// FinalRounds returns the maximum round of every season.
func FinalRounds(recs []Record) map[int]int {
	res := make(map[int]int)
	for _, r := range recs {
		if cur, ok := res[r.Season]; !ok || r.Round > cur {
			res[r.Season] = r.Round
		}
	}
	return res
}

// AttachFinalRound sets FinalRound of every row to the maximum round
// observed in its season.
func AttachFinalRound(recs []Record) []Record {
	final := FinalRounds(recs)
	res := make([]Record, len(recs))
	for i, r := range recs {
		r.FinalRound = final[r.Season]
		res[i] = r
	}
	return res
}

// FinalRoundRows returns rows of the final round of every season, in
// their original order. It expects the output of AttachFinalRound.
func FinalRoundRows(recs []Record) []Record {
	var res []Record
	for _, r := range recs {
		if r.IsFinal() {
			res = append(res, r)
		}
	}
	return res
}

// Champions returns the (team, season) pairs that finished first in the
// final round of a season earlier than currentYear, sorted by season.
// It expects the output of AttachFinalRound. Two different teams in first
// place of the same final round are reported as ChampionTieError.
func Champions(recs []Record, currentYear int) ([]TeamSeason, error) {
	bySeason := make(map[int]string)
	for _, r := range recs {
		if !r.IsFinal() || r.Standing != 1 || r.Season >= currentYear {
			continue
		}
		team, ok := bySeason[r.Season]
		if ok && team != r.Team {
			teams := []string{team, r.Team}
			slices.Sort(teams)
			return nil, ChampionTieError(r.Season, teams)
		}
		bySeason[r.Season] = r.Team
	}

	res := make([]TeamSeason, 0, len(bySeason))
	for s, team := range bySeason {
		res = append(res, TeamSeason{Team: team, Season: s})
	}
	slices.SortFunc(res, func(a, b TeamSeason) int {
		return cmp.Compare(a.Season, b.Season)
	})
	return res, nil
}

// AttachChampion sets IsChampion on every row of the (team, season) pairs
// returned by Champions. All other rows get false.
func AttachChampion(recs []Record, currentYear int) ([]Record, error) {
	champs, err := Champions(recs, currentYear)
	if err != nil {
		return nil, err
	}

	set := make(map[TeamSeason]struct{}, len(champs))
	for _, v := range champs {
		set[v] = struct{}{}
	}

	res := make([]Record, len(recs))
	for i, r := range recs {
		_, r.IsChampion = set[r.Key()]
		res[i] = r
	}
	return res, nil
}

// Relegated returns the (team, season) pairs that finished in the last
// RelegationSlots positions of a season's final round. Final-round rows
// are ordered by standing (team name breaks ties) before the bottom slots
// are taken, so the result does not depend on the input order. Seasons
// with fewer final-round rows contribute all of them.
func Relegated(recs []Record) []TeamSeason {
	bySeason := make(map[int][]Record)
	for _, r := range FinalRoundRows(recs) {
		bySeason[r.Season] = append(bySeason[r.Season], r)
	}

	seasons := make([]int, 0, len(bySeason))
	for s := range bySeason {
		seasons = append(seasons, s)
	}
	slices.Sort(seasons)

	var res []TeamSeason
	for _, s := range seasons {
		rows := bySeason[s]
		slices.SortStableFunc(rows, func(a, b Record) int {
			return cmp.Or(
				cmp.Compare(a.Standing, b.Standing),
				cmp.Compare(a.Team, b.Team),
			)
		})
		start := max(len(rows)-RelegationSlots, 0)
		for _, r := range rows[start:] {
			res = append(res, r.Key())
		}
	}
	return res
}

// AttachRelegationHistory sets RelegatedAgo flags. A team relegated after
// season S gets RelegatedNAgo(n) on every row of season S+1+n, for n in
// 1..Lookback. Flags for different distances are independent and may be
// set together.
func AttachRelegationHistory(recs []Record) []Record {
	relegated := Relegated(recs)
	res := slices.Clone(recs)
	if res == nil {
		res = []Record{}
	}

	for n := 1; n <= Lookback; n++ {
		shifted := make(map[TeamSeason]struct{}, len(relegated))
		for _, v := range relegated {
			v.Season += 1 + n
			shifted[v] = struct{}{}
		}
		for i := range res {
			_, res[i].RelegatedAgo[n-1] = shifted[res[i].Key()]
		}
	}
	return res
}

// ChampionshipTotals counts titles per team, most titled teams first.
// It expects the output of AttachChampion.
func ChampionshipTotals(recs []Record) []TeamCount {
	titles := make(map[TeamSeason]struct{})
	for _, r := range recs {
		if r.IsChampion {
			titles[r.Key()] = struct{}{}
		}
	}

	counts := make(map[string]int)
	for k := range titles {
		counts[k.Team]++
	}

	res := make([]TeamCount, 0, len(counts))
	for team, c := range counts {
		res = append(res, TeamCount{Team: team, Count: c})
	}
	slices.SortFunc(res, func(a, b TeamCount) int {
		return cmp.Or(
			cmp.Compare(b.Count, a.Count),
			cmp.Compare(a.Team, b.Team),
		)
	})
	return res
}
