package stats

import (
	"fmt"
	"math"
)

// GroupBy selects the dimension an aggregation rolls up on.
type GroupBy string

const (
	GroupByNone   GroupBy = ""
	GroupByTeam   GroupBy = "team"
	GroupByPlayer GroupBy = "player"
	GroupBySeason GroupBy = "season"
	GroupByMatch  GroupBy = "match"
)

func ParseGroupBy(v string) (GroupBy, error) {
	switch GroupBy(v) {
	case GroupByNone, GroupByTeam, GroupByPlayer, GroupBySeason, GroupByMatch:
		return GroupBy(v), nil
	default:
		return GroupByNone, fmt.Errorf("invalid group_by %q: valid values are team, player, season, match or empty", v)
	}
}

// Aggregate is one efficiency rollup. Group is empty for the global rollup.
// For match groupings Team and Opponent carry the first occurrence seen for
// that match id; they are empty otherwise.
type Aggregate struct {
	Group      string
	Team       string
	Opponent   string
	TotalShots int
	Goals      int
	Efficiency float64
}

// GoalZone is one spatial bucket of the bins x bins pitch grid.
type GoalZone struct {
	XBin        int
	YBin        int
	TotalShots  int
	Goals       int
	Probability float64
}

// ZoneReport carries the binned zones plus the count of shots that were
// excluded because one of their coordinates did not parse.
type ZoneReport struct {
	Zones   []GoalZone
	Skipped int
}

// EfficiencyPct computes goals/total*100 rounded to two decimals, with the
// zero-shot guard every caller needs.
func EfficiencyPct(goals, totalShots int) float64 {
	if totalShots <= 0 {
		return 0
	}

	return Round2(float64(goals) / float64(totalShots) * 100)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
