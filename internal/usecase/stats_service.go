package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"shotdash/internal/domain/shot"
	"shotdash/internal/domain/stats"
	"shotdash/internal/platform/cache"
	"shotdash/internal/platform/logging"
)

// AggregateQuery selects a rollup dimension over an optionally filtered
// shot collection. MinShots drops groups below the floor after aggregation
// (the dashboard uses it for the player comparison view).
type AggregateQuery struct {
	GroupBy  stats.GroupBy
	Filter   shot.Filter
	MinShots int
}

// ZoneQuery requests equal-width binning of shot positions into a
// Bins x Bins pitch grid. Zones with fewer than MinShots shots are dropped.
type ZoneQuery struct {
	Filter   shot.Filter
	Bins     int
	MinShots int
}

type StatsService struct {
	shotRepo shot.Repository
	cache    *cache.Store
	logger   *logging.Logger
}

func NewStatsService(shotRepo shot.Repository, cacheStore *cache.Store, logger *logging.Logger) *StatsService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &StatsService{
		shotRepo: shotRepo,
		cache:    cacheStore,
		logger:   logger,
	}
}

// Aggregate computes efficiency rollups. Rows with an empty value in the
// grouping dimension are excluded from grouped results. The output is
// sorted by efficiency descending; ties keep first-seen order.
func (s *StatsService) Aggregate(ctx context.Context, q AggregateQuery) ([]stats.Aggregate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Aggregate")
	defer span.End()

	if q.MinShots < 0 {
		return nil, fmt.Errorf("%w: min_shots must be >= 0", ErrInvalidInput)
	}

	cacheKey := strings.Join([]string{"agg", string(q.GroupBy), q.Filter.CacheKey(), strconv.Itoa(q.MinShots)}, "|")
	if cached, ok := s.cache.Get(ctx, cacheKey); ok {
		if out, ok := cached.([]stats.Aggregate); ok {
			return cloneAggregates(out), nil
		}
	}

	events, err := s.loadFiltered(ctx, q.Filter)
	if err != nil {
		return nil, err
	}

	out := aggregateEvents(events, q.GroupBy)
	if q.MinShots > 0 && q.GroupBy != stats.GroupByNone {
		kept := out[:0]
		for _, agg := range out {
			if agg.TotalShots >= q.MinShots {
				kept = append(kept, agg)
			}
		}
		out = kept
	}

	// Cache a copy so callers mutating the returned slice cannot corrupt
	// later hits.
	s.cache.Set(ctx, cacheKey, cloneAggregates(out))

	return out, nil
}

// ByMatch is the per-match rollup, carrying each match's team and opponent.
func (s *StatsService) ByMatch(ctx context.Context, filter shot.Filter) ([]stats.Aggregate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ByMatch")
	defer span.End()

	return s.Aggregate(ctx, AggregateQuery{GroupBy: stats.GroupByMatch, Filter: filter})
}

// Zones bins shot positions into an equal-width grid over the observed
// coordinate ranges. Shots missing either coordinate are excluded and
// reported in the Skipped count.
func (s *StatsService) Zones(ctx context.Context, q ZoneQuery) (stats.ZoneReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Zones")
	defer span.End()

	if q.Bins < 1 {
		return stats.ZoneReport{}, fmt.Errorf("%w: bins must be >= 1", ErrInvalidInput)
	}
	if q.MinShots < 0 {
		return stats.ZoneReport{}, fmt.Errorf("%w: min_shots must be >= 0", ErrInvalidInput)
	}

	cacheKey := strings.Join([]string{"zones", q.Filter.CacheKey(), strconv.Itoa(q.Bins), strconv.Itoa(q.MinShots)}, "|")
	if cached, ok := s.cache.Get(ctx, cacheKey); ok {
		if out, ok := cached.(stats.ZoneReport); ok {
			return cloneZoneReport(out), nil
		}
	}

	events, err := s.loadFiltered(ctx, q.Filter)
	if err != nil {
		return stats.ZoneReport{}, err
	}

	report := binEvents(events, q.Bins, q.MinShots)
	if report.Skipped > 0 {
		s.logger.DebugContext(ctx, "shots excluded from zoning", "skipped", report.Skipped, "bins", q.Bins)
	}

	s.cache.Set(ctx, cacheKey, cloneZoneReport(report))

	return report, nil
}

func cloneAggregates(in []stats.Aggregate) []stats.Aggregate {
	out := make([]stats.Aggregate, len(in))
	copy(out, in)

	return out
}

func cloneZoneReport(r stats.ZoneReport) stats.ZoneReport {
	zones := make([]stats.GoalZone, len(r.Zones))
	copy(zones, r.Zones)
	r.Zones = zones

	return r
}

func (s *StatsService) loadFiltered(ctx context.Context, filter shot.Filter) ([]shot.Event, error) {
	events, err := s.shotRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shots: %w", err)
	}

	return filter.Apply(events), nil
}

func aggregateEvents(events []shot.Event, groupBy stats.GroupBy) []stats.Aggregate {
	if groupBy == stats.GroupByNone {
		total := len(events)
		goals := 0
		for _, e := range events {
			if e.IsGoal {
				goals++
			}
		}
		return []stats.Aggregate{{
			TotalShots: total,
			Goals:      goals,
			Efficiency: stats.EfficiencyPct(goals, total),
		}}
	}

	index := make(map[string]int)
	out := make([]stats.Aggregate, 0)
	for _, e := range events {
		key := groupValue(e, groupBy)
		if key == "" {
			continue
		}

		idx, ok := index[key]
		if !ok {
			idx = len(out)
			index[key] = idx
			agg := stats.Aggregate{Group: key}
			if groupBy == stats.GroupByMatch {
				agg.Team = e.Team
				agg.Opponent = e.Opponent
			}
			out = append(out, agg)
		}

		out[idx].TotalShots++
		if e.IsGoal {
			out[idx].Goals++
		}
	}

	for i := range out {
		out[i].Efficiency = stats.EfficiencyPct(out[i].Goals, out[i].TotalShots)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Efficiency > out[j].Efficiency
	})

	return out
}

func groupValue(e shot.Event, groupBy stats.GroupBy) string {
	switch groupBy {
	case stats.GroupByTeam:
		return e.Team
	case stats.GroupByPlayer:
		return e.Player
	case stats.GroupBySeason:
		return e.Season
	case stats.GroupByMatch:
		return e.MatchID
	default:
		return ""
	}
}

func binEvents(events []shot.Event, bins, minShots int) stats.ZoneReport {
	valid := make([]shot.Event, 0, len(events))
	for _, e := range events {
		if e.HasPosition() {
			valid = append(valid, e)
		}
	}
	skipped := len(events) - len(valid)

	if len(valid) == 0 {
		return stats.ZoneReport{Zones: []stats.GoalZone{}, Skipped: skipped}
	}

	minX, maxX := valid[0].X, valid[0].X
	minY, maxY := valid[0].Y, valid[0].Y
	for _, e := range valid[1:] {
		if *e.X < *minX {
			minX = e.X
		}
		if *e.X > *maxX {
			maxX = e.X
		}
		if *e.Y < *minY {
			minY = e.Y
		}
		if *e.Y > *maxY {
			maxY = e.Y
		}
	}

	type cell struct{ x, y int }
	counts := make(map[cell]*stats.GoalZone)
	order := make([]cell, 0)
	for _, e := range valid {
		c := cell{
			x: binIndex(*e.X, *minX, *maxX, bins),
			y: binIndex(*e.Y, *minY, *maxY, bins),
		}
		zone, ok := counts[c]
		if !ok {
			zone = &stats.GoalZone{XBin: c.x, YBin: c.y}
			counts[c] = zone
			order = append(order, c)
		}
		zone.TotalShots++
		if e.IsGoal {
			zone.Goals++
		}
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].x != order[j].x {
			return order[i].x < order[j].x
		}
		return order[i].y < order[j].y
	})

	zones := make([]stats.GoalZone, 0, len(order))
	for _, c := range order {
		zone := counts[c]
		if zone.TotalShots < minShots {
			continue
		}
		zone.Probability = stats.EfficiencyPct(zone.Goals, zone.TotalShots)
		zones = append(zones, *zone)
	}

	sort.SliceStable(zones, func(i, j int) bool {
		return zones[i].Probability > zones[j].Probability
	})

	return stats.ZoneReport{Zones: zones, Skipped: skipped}
}

// binIndex maps a value into one of bins equal-width intervals spanning
// [min, max]. The maximum value folds into the last interval; a degenerate
// range puts everything in bin 0.
func binIndex(v, min, max float64, bins int) int {
	if max <= min {
		return 0
	}

	idx := int((v - min) / (max - min) * float64(bins))
	if idx >= bins {
		idx = bins - 1
	}
	if idx < 0 {
		idx = 0
	}

	return idx
}
