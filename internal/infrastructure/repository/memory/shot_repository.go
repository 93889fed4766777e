package memory

import (
	"context"
	"sync"

	"shotdash/internal/domain/shot"
)

type ShotRepository struct {
	mu     sync.RWMutex
	events []shot.Event
}

func NewShotRepository(events []shot.Event) *ShotRepository {
	return &ShotRepository{events: events}
}

func (r *ShotRepository) List(_ context.Context) ([]shot.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]shot.Event, 0, len(r.events))
	out = append(out, r.events...)

	return out, nil
}
