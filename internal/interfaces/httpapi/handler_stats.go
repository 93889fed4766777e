package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"shotdash/internal/domain/shot"
	"shotdash/internal/domain/stats"
	"shotdash/internal/usecase"
)

type aggregateDTO struct {
	Group      string `json:"group,omitempty"`
	Team       string `json:"team,omitempty"`
	Opponent   string `json:"opponent,omitempty"`
	TotalShots int    `json:"total_shots"`
	Goals      int    `json:"goals"`
	Efficiency float64 `json:"efficiency_%"`
}

type zoneDTO struct {
	XBin        int     `json:"x_bin"`
	YBin        int     `json:"y_bin"`
	TotalShots  int     `json:"total_shots"`
	Goals       int     `json:"goals"`
	Probability float64 `json:"goal_probability_%"`
}

type zonesDTO struct {
	Zones        []zoneDTO `json:"zones"`
	SkippedShots int       `json:"skipped_shots"`
}

func aggregateToDTO(agg stats.Aggregate) aggregateDTO {
	return aggregateDTO{
		Group:      agg.Group,
		Team:       agg.Team,
		Opponent:   agg.Opponent,
		TotalShots: agg.TotalShots,
		Goals:      agg.Goals,
		Efficiency: agg.Efficiency,
	}
}

func filterFromQuery(r *http.Request) shot.Filter {
	return shot.Filter{
		Season: strings.TrimSpace(r.URL.Query().Get("season")),
		Team:   strings.TrimSpace(r.URL.Query().Get("team")),
		Player: strings.TrimSpace(r.URL.Query().Get("player")),
	}
}

func intFromQuery(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}

	return out, nil
}

// GetStats serves aggregated efficiency rollups with overrides applied.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStats")
	defer span.End()

	rawGroupBy := strings.TrimSpace(r.URL.Query().Get("group_by"))
	if rawGroupBy == "none" {
		rawGroupBy = ""
	}
	groupBy, err := stats.ParseGroupBy(rawGroupBy)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	minShots, err := intFromQuery(r, "min_shots", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	aggregates, err := h.statsService.Aggregate(ctx, usecase.AggregateQuery{
		GroupBy:  groupBy,
		Filter:   filterFromQuery(r),
		MinShots: minShots,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "aggregate failed", "group_by", groupBy, "error", err)
		writeError(ctx, w, err)
		return
	}

	aggregates, err = h.overrideService.Apply(ctx, aggregates, groupBy)
	if err != nil {
		h.logger.ErrorContext(ctx, "apply overrides failed", "group_by", groupBy, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]aggregateDTO, 0, len(aggregates))
	for _, agg := range aggregates {
		items = append(items, aggregateToDTO(agg))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// GetMatchStats serves the per-match rollup, each row carrying the match's
// team and opponent.
func (h *Handler) GetMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchStats")
	defer span.End()

	aggregates, err := h.statsService.ByMatch(ctx, filterFromQuery(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "by-match stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	aggregates, err = h.overrideService.Apply(ctx, aggregates, stats.GroupByMatch)
	if err != nil {
		h.logger.ErrorContext(ctx, "apply overrides failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]aggregateDTO, 0, len(aggregates))
	for _, agg := range aggregates {
		items = append(items, aggregateToDTO(agg))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// GetZones serves the goal-probability grid.
func (h *Handler) GetZones(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetZones")
	defer span.End()

	bins, err := intFromQuery(r, "bins", 10)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	minShots, err := intFromQuery(r, "min_shots", 1)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.statsService.Zones(ctx, usecase.ZoneQuery{
		Filter:   filterFromQuery(r),
		Bins:     bins,
		MinShots: minShots,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "zones failed", "bins", bins, "error", err)
		writeError(ctx, w, err)
		return
	}

	zones := make([]zoneDTO, 0, len(report.Zones))
	for _, zone := range report.Zones {
		zones = append(zones, zoneDTO{
			XBin:        zone.XBin,
			YBin:        zone.YBin,
			TotalShots:  zone.TotalShots,
			Goals:       zone.Goals,
			Probability: zone.Probability,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, zonesDTO{Zones: zones, SkippedShots: report.Skipped})
}
