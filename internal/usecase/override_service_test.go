package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"shotdash/internal/domain/stats"
	"shotdash/internal/infrastructure/repository/jsonfile"
)

type staticAdminVerifier map[string]bool

func (v staticAdminVerifier) IsAdmin(_ context.Context, username string) (bool, error) {
	return v[username], nil
}

func newOverrideService(t *testing.T) (*OverrideService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stats_overrides.json")
	repo := jsonfile.NewOverrideRepository(path, nil)
	svc := NewOverrideService(repo, staticAdminVerifier{"admin": true, "viewer": false}, nil)
	return svc, path
}

func TestOverrideService_SetThenLoadRoundTrip(t *testing.T) {
	svc, _ := newOverrideService(t)

	goals := 5
	if err := svc.Set(t.Context(), "admin", "team:X", stats.Override{Goals: &goals}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	overrides, err := svc.Load(t.Context())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(overrides) != 1 {
		t.Fatalf("expected 1 override, got %d", len(overrides))
	}
	ov, ok := overrides["team:X"]
	if !ok || ov.Goals == nil || *ov.Goals != 5 {
		t.Fatalf("unexpected override: %+v", overrides)
	}
}

func TestOverrideService_ApplyPrecedence(t *testing.T) {
	svc, _ := newOverrideService(t)

	goals := 5
	if err := svc.Set(t.Context(), "admin", "team:X", stats.Override{Goals: &goals}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	computed := []stats.Aggregate{{Group: "X", TotalShots: 10, Goals: 2, Efficiency: 20}}
	out, err := svc.Apply(t.Context(), computed, stats.GroupByTeam)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if out[0].TotalShots != 10 || out[0].Goals != 5 || out[0].Efficiency != 50 {
		t.Fatalf("unexpected merged aggregate: %+v", out[0])
	}
	if computed[0].Goals != 2 {
		t.Fatalf("apply must not mutate its input: %+v", computed[0])
	}
}

func TestOverrideService_ApplyIsIdempotent(t *testing.T) {
	svc, _ := newOverrideService(t)

	shots := 40
	if err := svc.Set(t.Context(), "admin", "global", stats.Override{TotalShots: &shots}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	computed := []stats.Aggregate{{TotalShots: 10, Goals: 2, Efficiency: 20}}
	first, err := svc.Apply(t.Context(), computed, stats.GroupByNone)
	if err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	second, err := svc.Apply(t.Context(), computed, stats.GroupByNone)
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if first[0] != second[0] {
		t.Fatalf("apply not idempotent: %+v vs %+v", first[0], second[0])
	}
}

func TestOverrideService_ApplyResortsByEfficiency(t *testing.T) {
	svc, _ := newOverrideService(t)

	eff := 99.0
	if err := svc.Set(t.Context(), "admin", "team:B", stats.Override{Efficiency: &eff}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	computed := []stats.Aggregate{
		{Group: "A", TotalShots: 10, Goals: 5, Efficiency: 50},
		{Group: "B", TotalShots: 10, Goals: 1, Efficiency: 10},
	}
	out, err := svc.Apply(t.Context(), computed, stats.GroupByTeam)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if out[0].Group != "B" {
		t.Fatalf("expected overridden group first, got %+v", out)
	}
}

func TestOverrideService_CorruptFileTreatedAsEmpty(t *testing.T) {
	svc, path := newOverrideService(t)

	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	overrides, err := svc.Load(t.Context())
	if err != nil {
		t.Fatalf("corrupt override store must degrade to empty, got %v", err)
	}
	if len(overrides) != 0 {
		t.Fatalf("expected empty mapping, got %+v", overrides)
	}
}

func TestOverrideService_SaveReplacesContents(t *testing.T) {
	svc, _ := newOverrideService(t)

	goals := 3
	if err := svc.Set(t.Context(), "admin", "team:X", stats.Override{Goals: &goals}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := svc.Clear(t.Context(), "admin", "team:X"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	// Clearing an absent key is a no-op, not an error.
	if err := svc.Clear(t.Context(), "admin", "team:X"); err != nil {
		t.Fatalf("second clear failed: %v", err)
	}

	overrides, err := svc.Load(t.Context())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(overrides) != 0 {
		t.Fatalf("expected empty mapping after clear, got %+v", overrides)
	}
}

func TestOverrideService_RejectsNonAdmins(t *testing.T) {
	svc, _ := newOverrideService(t)

	goals := 3
	if err := svc.Set(t.Context(), "viewer", "team:X", stats.Override{Goals: &goals}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-admin, got %v", err)
	}
	if err := svc.Set(t.Context(), "", "team:X", stats.Override{Goals: &goals}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty actor, got %v", err)
	}
}

func TestOverrideService_RejectsBadKeysAndEmptyOverrides(t *testing.T) {
	svc, _ := newOverrideService(t)

	goals := 3
	if err := svc.Set(t.Context(), "admin", "minute:45", stats.Override{Goals: &goals}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown dimension, got %v", err)
	}
	if err := svc.Set(t.Context(), "admin", "noseparator", stats.Override{Goals: &goals}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for malformed key, got %v", err)
	}
	if err := svc.Set(t.Context(), "admin", "team:X", stats.Override{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty override, got %v", err)
	}
}
