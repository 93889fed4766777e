package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"shotdash/internal/domain/stats"
	"shotdash/internal/platform/logging"
)

// adminVerifier is the slice of the account service the override flow needs.
type adminVerifier interface {
	IsAdmin(ctx context.Context, username string) (bool, error)
}

type OverrideService struct {
	overrideRepo stats.OverrideRepository
	accounts     adminVerifier
	logger       *logging.Logger
}

func NewOverrideService(overrideRepo stats.OverrideRepository, accounts adminVerifier, logger *logging.Logger) *OverrideService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &OverrideService{
		overrideRepo: overrideRepo,
		accounts:     accounts,
		logger:       logger,
	}
}

func (s *OverrideService) Load(ctx context.Context) (map[string]stats.Override, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverrideService.Load")
	defer span.End()

	overrides, err := s.overrideRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load overrides: %w", err)
	}

	return overrides, nil
}

// Apply layers persisted overrides over computed aggregates and re-sorts by
// efficiency descending. The input slice is not mutated and no state is
// written, so repeated calls yield identical results.
func (s *OverrideService) Apply(ctx context.Context, aggregates []stats.Aggregate, groupBy stats.GroupBy) ([]stats.Aggregate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverrideService.Apply")
	defer span.End()

	overrides, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]stats.Aggregate, len(aggregates))
	copy(out, aggregates)
	if len(overrides) == 0 {
		return out, nil
	}

	for i := range out {
		key := stats.OverrideKey(groupBy, out[i].Group)
		ov, ok := overrides[key]
		if !ok {
			continue
		}
		out[i] = stats.ApplyOverride(out[i], ov)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Efficiency > out[j].Efficiency
	})

	return out, nil
}

// Set stores or updates one override. The acting user must be an admin.
func (s *OverrideService) Set(ctx context.Context, actor, key string, ov stats.Override) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverrideService.Set")
	defer span.End()

	if err := s.requireAdmin(ctx, actor); err != nil {
		return err
	}
	if err := validateOverrideKey(key); err != nil {
		return err
	}
	if ov.IsZero() {
		return fmt.Errorf("%w: override must set at least one field", ErrInvalidInput)
	}

	overrides, err := s.Load(ctx)
	if err != nil {
		return err
	}

	overrides[key] = ov
	if err := s.overrideRepo.Save(ctx, overrides); err != nil {
		return fmt.Errorf("save overrides: %w", err)
	}

	s.logger.InfoContext(ctx, "override saved", "key", key, "actor", actor)

	return nil
}

// Clear removes one override. Clearing an absent key is not an error.
func (s *OverrideService) Clear(ctx context.Context, actor, key string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverrideService.Clear")
	defer span.End()

	if err := s.requireAdmin(ctx, actor); err != nil {
		return err
	}
	if err := validateOverrideKey(key); err != nil {
		return err
	}

	overrides, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := overrides[key]; !ok {
		return nil
	}

	delete(overrides, key)
	if err := s.overrideRepo.Save(ctx, overrides); err != nil {
		return fmt.Errorf("save overrides: %w", err)
	}

	s.logger.InfoContext(ctx, "override cleared", "key", key, "actor", actor)

	return nil
}

func (s *OverrideService) requireAdmin(ctx context.Context, actor string) error {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return fmt.Errorf("%w: acting user is required", ErrUnauthorized)
	}

	isAdmin, err := s.accounts.IsAdmin(ctx, actor)
	if err != nil {
		return fmt.Errorf("check admin flag: %w", err)
	}
	if !isAdmin {
		return fmt.Errorf("%w: user %q is not an admin", ErrUnauthorized, actor)
	}

	return nil
}

func validateOverrideKey(key string) error {
	if key == stats.OverrideKeyGlobal {
		return nil
	}

	dim, value, ok := strings.Cut(key, ":")
	if !ok || strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: override key must be %q or \"<dimension>:<value>\"", ErrInvalidInput, stats.OverrideKeyGlobal)
	}
	if _, err := stats.ParseGroupBy(dim); err != nil || dim == "" {
		return fmt.Errorf("%w: unknown override dimension %q", ErrInvalidInput, dim)
	}

	return nil
}
