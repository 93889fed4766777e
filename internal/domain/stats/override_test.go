package stats

import "testing"

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestOverrideKey(t *testing.T) {
	if got := OverrideKey(GroupByNone, ""); got != OverrideKeyGlobal {
		t.Fatalf("unexpected global key: %q", got)
	}
	if got := OverrideKey(GroupByTeam, "Real Madrid"); got != "team:Real Madrid" {
		t.Fatalf("unexpected team key: %q", got)
	}
}

func TestApplyOverride_RecomputesEfficiencyFromOverriddenGoals(t *testing.T) {
	base := Aggregate{Group: "X", TotalShots: 10, Goals: 2, Efficiency: 20}

	out := ApplyOverride(base, Override{Goals: intPtr(5)})
	if out.TotalShots != 10 || out.Goals != 5 {
		t.Fatalf("unexpected counts: %+v", out)
	}
	if out.Efficiency != 50 {
		t.Fatalf("expected efficiency 50, got %v", out.Efficiency)
	}
}

func TestApplyOverride_ExplicitEfficiencyWins(t *testing.T) {
	base := Aggregate{TotalShots: 10, Goals: 2, Efficiency: 20}

	out := ApplyOverride(base, Override{Efficiency: floatPtr(99.555)})
	if out.Efficiency != 99.56 {
		t.Fatalf("expected rounded override efficiency, got %v", out.Efficiency)
	}
	if out.TotalShots != 10 || out.Goals != 2 {
		t.Fatalf("counts must be untouched: %+v", out)
	}
}

func TestApplyOverride_ZeroShotsGuard(t *testing.T) {
	out := ApplyOverride(Aggregate{TotalShots: 5, Goals: 1}, Override{TotalShots: intPtr(0)})
	if out.Efficiency != 0 {
		t.Fatalf("expected efficiency 0 for zero shots, got %v", out.Efficiency)
	}
}

func TestEfficiencyPct_Rounding(t *testing.T) {
	if got := EfficiencyPct(1, 3); got != 33.33 {
		t.Fatalf("expected 33.33, got %v", got)
	}
	if got := EfficiencyPct(0, 0); got != 0 {
		t.Fatalf("expected 0 for empty group, got %v", got)
	}
}

func TestParseGroupBy(t *testing.T) {
	if _, err := ParseGroupBy("team"); err != nil {
		t.Fatalf("team should parse: %v", err)
	}
	if _, err := ParseGroupBy("minute"); err == nil {
		t.Fatalf("expected error for unknown dimension")
	}
}
