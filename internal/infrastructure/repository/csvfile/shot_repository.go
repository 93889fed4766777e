// Package csvfile loads shot events from the CSV source format described in
// the dashboard's data contract: match_id, date, season, team, opponent,
// player, minute, x, y, result, situation, shot_type.
package csvfile

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"shotdash/internal/domain/shot"
	"shotdash/internal/platform/logging"
)

type ShotRepository struct {
	path   string
	logger *logging.Logger
}

func NewShotRepository(path string, logger *logging.Logger) *ShotRepository {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &ShotRepository{path: path, logger: logger}
}

// List parses the CSV source into a fresh event slice. Row-level problems
// are tolerated: unparseable coordinates become nil, a missing result column
// means no goals. Only a missing file or a broken CSV structure fail.
func (r *ShotRepository) List(ctx context.Context) ([]shot.Event, error) {
	file, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, crerr.Wrapf(shot.ErrSourceMissing, "open %s", r.path)
		}
		return nil, crerr.Wrapf(err, "open %s", r.path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return []shot.Event{}, nil
		}
		return nil, crerr.Wrapf(err, "read header of %s", r.path)
	}

	cols := make(map[string]int, len(header))
	for idx, name := range header {
		cols[strings.TrimSpace(name)] = idx
	}

	events := make([]shot.Event, 0, 256)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, crerr.Wrapf(err, "read row of %s", r.path)
		}

		field := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		event := shot.Event{
			MatchID:   field("match_id"),
			Date:      field("date"),
			Season:    field("season"),
			Team:      field("team"),
			Opponent:  field("opponent"),
			Player:    field("player"),
			Minute:    parseIntOrZero(field("minute")),
			X:         parseFloatOrNil(field("x")),
			Y:         parseFloatOrNil(field("y")),
			Result:    field("result"),
			Situation: field("situation"),
			ShotType:  field("shot_type"),
		}
		if _, ok := cols["result"]; ok {
			event.IsGoal = shot.DeriveIsGoal(event.Result)
		}

		events = append(events, event)
	}

	r.logger.DebugContext(ctx, "shot csv loaded", "path", r.path, "rows", len(events))

	return events, nil
}

func parseIntOrZero(v string) int {
	out, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return out
}

func parseFloatOrNil(v string) *float64 {
	if v == "" {
		return nil
	}
	out, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &out
}
