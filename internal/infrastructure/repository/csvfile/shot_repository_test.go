package csvfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"shotdash/internal/domain/shot"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shots.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestShotRepository_List(t *testing.T) {
	path := writeCSV(t, ` match_id ,date,season,team,opponent,player,minute, x ,y,result,situation,shot_type
m1,2024-09-17,2024-25,Real Madrid,Liverpool,Vinicius Jr,12,88.5,48.0,GOAL,open_play,right_foot
m1,2024-09-17,2024-25,Liverpool,Real Madrid,Mohamed Salah,41,bad,39.0,missed,counter_attack,left_foot
m1,2024-09-17,2024-25,Liverpool,Real Madrid,Mohamed Salah,77,91.0,,saved,open_play,left_foot
`)

	events, err := NewShotRepository(path, nil).List(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	// Header names are trimmed, so the padded " match_id " column resolves.
	if events[0].MatchID != "m1" {
		t.Fatalf("unexpected match id: %q", events[0].MatchID)
	}

	// Goal detection is case-insensitive.
	if !events[0].IsGoal {
		t.Fatalf("expected GOAL row to count as goal")
	}
	if events[1].IsGoal || events[2].IsGoal {
		t.Fatalf("non-goal rows must not count as goals")
	}

	// Bad and empty coordinates become nil, not errors.
	if events[1].X != nil {
		t.Fatalf("expected nil X for unparseable value, got %v", *events[1].X)
	}
	if events[2].Y != nil {
		t.Fatalf("expected nil Y for empty value, got %v", *events[2].Y)
	}
	if events[0].X == nil || *events[0].X != 88.5 {
		t.Fatalf("expected X=88.5, got %v", events[0].X)
	}
	if events[0].Minute != 12 {
		t.Fatalf("expected minute 12, got %d", events[0].Minute)
	}
}

func TestShotRepository_MissingResultColumn(t *testing.T) {
	path := writeCSV(t, `match_id,team,x,y
m1,Real Madrid,88.5,48.0
`)

	events, err := NewShotRepository(path, nil).List(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if events[0].IsGoal {
		t.Fatalf("is_goal must default to false without a result column")
	}
}

func TestShotRepository_MissingFile(t *testing.T) {
	repo := NewShotRepository(filepath.Join(t.TempDir(), "absent.csv"), nil)

	_, err := repo.List(t.Context())
	if !errors.Is(err, shot.ErrSourceMissing) {
		t.Fatalf("expected ErrSourceMissing, got %v", err)
	}
}

func TestShotRepository_ReloadReturnsFreshSlice(t *testing.T) {
	path := writeCSV(t, `match_id,team,x,y,result
m1,Real Madrid,88.5,48.0,goal
`)
	repo := NewShotRepository(path, nil)

	first, err := repo.List(t.Context())
	if err != nil {
		t.Fatalf("first list failed: %v", err)
	}
	first[0].Team = "mutated"

	second, err := repo.List(t.Context())
	if err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	if second[0].Team != "Real Madrid" {
		t.Fatalf("reload must not see caller mutations: %q", second[0].Team)
	}
}

func TestShotRepository_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	events, err := NewShotRepository(path, nil).List(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}
