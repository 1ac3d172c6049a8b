package schema_test

import (
	"sync"
	"testing"

	"github.com/gnames/cbstats/pkg/schema"
	"github.com/gnames/cbstats/pkg/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormschema "gorm.io/gorm/schema"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, []string{"season_records", "runs"}, schema.TableNames())
	assert.Len(t, schema.AllModels(), 2)
}

func TestRecordID(t *testing.T) {
	r := season.Record{Season: 2020, Round: 38, Team: "Flamengo"}
	id := schema.RecordID(r)
	assert.Len(t, id, 36)
	assert.Equal(t, id, schema.RecordID(r))

	r.Round = 37
	assert.NotEqual(t, id, schema.RecordID(r))
}

func TestNewSeasonRecord(t *testing.T) {
	r := season.Record{
		Season: 2020, Round: 38, Team: "Flamengo", Standing: 1,
		Points: 71, Goals: 68, FinalRound: 38, IsChampion: true,
	}
	r.RelegatedAgo[1] = true

	res := schema.NewSeasonRecord(r, "run")
	assert.Equal(t, schema.RecordID(r), res.ID)
	assert.True(t, res.IsChampion)
	assert.False(t, res.Relegated1Ago)
	assert.True(t, res.Relegated2Ago)
	assert.False(t, res.Relegated3Ago)
	assert.Equal(t, "run", res.RunID)
	assert.Len(t, res.Values(), len(res.Columns()))
}

// Columns used for bulk copy must match what GORM creates.
func TestColumnsMatchGORM(t *testing.T) {
	s, err := gormschema.Parse(
		&schema.SeasonRecord{},
		&sync.Map{},
		gormschema.NamingStrategy{},
	)
	require.NoError(t, err)
	assert.Equal(t, "season_records", s.Table)

	var cols []string
	for _, f := range s.Fields {
		if f.DBName != "" {
			cols = append(cols, f.DBName)
		}
	}
	assert.Equal(t, schema.SeasonRecord{}.Columns(), cols)
}

func TestChampionOnEveryRound(t *testing.T) {
	var recs []season.Record
	for round := 1; round <= 3; round++ {
		for i, team := range []string{"A", "B", "C", "D", "E"} {
			recs = append(recs, season.Record{
				Season: 2020, Round: round, Team: team, Standing: i + 1,
			})
		}
	}
	recs, err := season.Enrich(recs, 2021)
	require.NoError(t, err)

	for _, r := range recs {
		res := schema.NewSeasonRecord(r, "run")
		assert.Equal(t, r.Team == "A", res.IsChampion, "%s %d", r.Team, r.Round)
	}
}
