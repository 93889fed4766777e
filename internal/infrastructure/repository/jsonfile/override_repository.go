package jsonfile

import (
	"context"
	"sync"

	"shotdash/internal/domain/stats"
	"shotdash/internal/platform/logging"
)

type OverrideRepository struct {
	mu     sync.Mutex
	path   string
	logger *logging.Logger
}

func NewOverrideRepository(path string, logger *logging.Logger) *OverrideRepository {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &OverrideRepository{path: path, logger: logger}
}

// Load returns the persisted override mapping. A missing or unparseable
// file degrades to an empty mapping: losing manual corrections is
// recoverable, blocking every stats query is not.
func (r *OverrideRepository) Load(ctx context.Context) (map[string]stats.Override, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	overrides := make(map[string]stats.Override)
	if _, err := readJSONFile(r.path, &overrides); err != nil {
		r.logger.WarnContext(ctx, "override store unreadable, treating as empty", "path", r.path, "error", err)
		return make(map[string]stats.Override), nil
	}
	if overrides == nil {
		overrides = make(map[string]stats.Override)
	}

	return overrides, nil
}

// Save replaces the store contents wholesale. Callers merge in memory first.
func (r *OverrideRepository) Save(_ context.Context, overrides map[string]stats.Override) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if overrides == nil {
		overrides = make(map[string]stats.Override)
	}

	return writeJSONFile(r.path, overrides)
}
