package memory

import "shotdash/internal/domain/shot"

func f(v float64) *float64 { return &v }

// SeedShots returns a small deterministic shot collection covering two
// matches, two teams and both seasons. Used by tests and demo boot when no
// CSV source is configured.
func SeedShots() []shot.Event {
	return []shot.Event{
		{MatchID: "m1", Date: "2024-09-17", Season: "2024-25", Team: "Real Madrid", Opponent: "Liverpool", Player: "Vinicius Jr", Minute: 12, X: f(88), Y: f(48), Result: shot.ResultGoal, Situation: "open_play", ShotType: "right_foot", IsGoal: true},
		{MatchID: "m1", Date: "2024-09-17", Season: "2024-25", Team: "Real Madrid", Opponent: "Liverpool", Player: "Jude Bellingham", Minute: 34, X: f(79), Y: f(55), Result: shot.ResultSaved, Situation: "open_play", ShotType: "left_foot"},
		{MatchID: "m1", Date: "2024-09-17", Season: "2024-25", Team: "Liverpool", Opponent: "Real Madrid", Player: "Mohamed Salah", Minute: 41, X: f(84), Y: f(39), Result: shot.ResultMissed, Situation: "counter_attack", ShotType: "left_foot"},
		{MatchID: "m1", Date: "2024-09-17", Season: "2024-25", Team: "Liverpool", Opponent: "Real Madrid", Player: "Mohamed Salah", Minute: 77, X: f(91), Y: f(52), Result: shot.ResultGoal, Situation: "open_play", ShotType: "left_foot", IsGoal: true},
		{MatchID: "m2", Date: "2025-10-01", Season: "2025-26", Team: "Real Madrid", Opponent: "Arsenal", Player: "Kylian Mbappe", Minute: 9, X: f(86), Y: f(61), Result: shot.ResultBlocked, Situation: "free_kick", ShotType: "right_foot"},
		{MatchID: "m2", Date: "2025-10-01", Season: "2025-26", Team: "Real Madrid", Opponent: "Arsenal", Player: "Kylian Mbappe", Minute: 58, X: f(93), Y: f(47), Result: shot.ResultGoal, Situation: "penalty", ShotType: "right_foot", IsGoal: true},
		{MatchID: "m2", Date: "2025-10-01", Season: "2025-26", Team: "Arsenal", Opponent: "Real Madrid", Player: "Bukayo Saka", Minute: 63, X: nil, Y: f(44), Result: shot.ResultMissed, Situation: "corner", ShotType: "header"},
		{MatchID: "m2", Date: "2025-10-01", Season: "2025-26", Team: "Arsenal", Opponent: "Real Madrid", Player: "Bukayo Saka", Minute: 81, X: f(82), Y: f(50), Result: shot.ResultSaved, Situation: "open_play", ShotType: "right_foot"},
	}
}
