package shot

import "strings"

// Shot result values as they appear in the CSV source.
const (
	ResultGoal    = "goal"
	ResultMissed  = "missed"
	ResultSaved   = "saved"
	ResultBlocked = "blocked"
)

// Event is one recorded shot attempt. X and Y are pitch coordinates on a
// 0-100 scale and are nil when the source value did not parse as a number.
type Event struct {
	MatchID   string
	Date      string
	Season    string
	Team      string
	Opponent  string
	Player    string
	Minute    int
	X         *float64
	Y         *float64
	Result    string
	Situation string
	ShotType  string
	IsGoal    bool
}

// DeriveIsGoal reports whether a raw result value counts as a goal.
func DeriveIsGoal(result string) bool {
	return strings.EqualFold(strings.TrimSpace(result), ResultGoal)
}

// HasPosition reports whether both coordinates survived numeric coercion.
func (e Event) HasPosition() bool {
	return e.X != nil && e.Y != nil
}
