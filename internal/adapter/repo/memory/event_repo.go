package memory

import (
	"context"

	"driftisle/internal/app/ports"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, events []ports.EventRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events = append(r.store.events, events...)
	return nil
}

// ListRecent returns the newest events first, matching the SQL backends.
func (r EventRepo) ListRecent(_ context.Context, limit int) ([]ports.EventRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if limit <= 0 || limit > len(r.store.events) {
		limit = len(r.store.events)
	}
	out := make([]ports.EventRecord, limit)
	for i := 0; i < limit; i++ {
		out[i] = r.store.events[len(r.store.events)-1-i]
	}
	return out, nil
}

func (r EventRepo) Clear(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events = nil
	return nil
}
