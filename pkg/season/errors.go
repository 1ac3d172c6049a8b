package season

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/cbstats/pkg/errcode"
	"github.com/gnames/gn"
)

// ChampionTieError is returned when more than one team occupies the first
// position in the final round of a season.
func ChampionTieError(season int, teams []string) error {
	msg := `Season <em>%d</em> has more than one team in first place: %s

<em>How to fix:</em>
  Check the standings of the final round in the source dataset.`
	vars := []any{season, strings.Join(teams, ", ")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ChampionTieError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: season %d has tied champions %v",
			fn.Name(), season, teams),
	}
}
