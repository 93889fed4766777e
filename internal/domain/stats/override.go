package stats

import "context"

// OverrideKeyGlobal addresses the ungrouped rollup.
const OverrideKeyGlobal = "global"

// Override is an admin-supplied correction to one aggregate. Nil fields fall
// back to the computed value.
type Override struct {
	TotalShots *int     `json:"total_shots,omitempty"`
	Goals      *int     `json:"goals,omitempty"`
	Efficiency *float64 `json:"efficiency_%,omitempty"`
}

func (o Override) IsZero() bool {
	return o.TotalShots == nil && o.Goals == nil && o.Efficiency == nil
}

// OverrideKey builds the lookup key for a grouped aggregate, e.g.
// "team:Real Madrid". The global rollup uses OverrideKeyGlobal.
func OverrideKey(groupBy GroupBy, group string) string {
	if groupBy == GroupByNone {
		return OverrideKeyGlobal
	}

	return string(groupBy) + ":" + group
}

// OverrideRepository persists the full override mapping. Save replaces prior
// contents wholesale; merging happens in memory before saving.
type OverrideRepository interface {
	Load(ctx context.Context) (map[string]Override, error)
	Save(ctx context.Context, overrides map[string]Override) error
}

// ApplyOverride layers one override on top of a computed aggregate. When
// efficiency is not overridden it is recomputed from the possibly overridden
// counts.
func ApplyOverride(base Aggregate, ov Override) Aggregate {
	out := base
	if ov.TotalShots != nil {
		out.TotalShots = *ov.TotalShots
	}
	if ov.Goals != nil {
		out.Goals = *ov.Goals
	}
	if ov.Efficiency != nil {
		out.Efficiency = Round2(*ov.Efficiency)
	} else {
		out.Efficiency = EfficiencyPct(out.Goals, out.TotalShots)
	}

	return out
}
