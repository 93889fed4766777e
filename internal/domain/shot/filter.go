package shot

import "strings"

// Filter is an equality selection over the loaded collection. Empty fields
// match everything, mirroring the dashboard's "Todos" sidebar options.
type Filter struct {
	Season string
	Team   string
	Player string
}

func (f Filter) IsZero() bool {
	return f.Season == "" && f.Team == "" && f.Player == ""
}

func (f Filter) matches(e Event) bool {
	if f.Season != "" && e.Season != f.Season {
		return false
	}
	if f.Team != "" && e.Team != f.Team {
		return false
	}
	if f.Player != "" && e.Player != f.Player {
		return false
	}

	return true
}

// Apply returns the events matching the filter, preserving order.
func (f Filter) Apply(events []Event) []Event {
	if f.IsZero() {
		return events
	}

	out := make([]Event, 0, len(events))
	for _, e := range events {
		if f.matches(e) {
			out = append(out, e)
		}
	}

	return out
}

// CacheKey folds the filter into a stable string usable as a cache key part.
func (f Filter) CacheKey() string {
	return strings.Join([]string{f.Season, f.Team, f.Player}, "|")
}
