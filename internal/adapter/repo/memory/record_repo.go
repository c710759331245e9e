package memory

import (
	"context"

	"driftisle/internal/app/ports"
)

type RecordRepo struct {
	store *Store
}

func NewRecordRepo(store *Store) RecordRepo {
	return RecordRepo{store: store}
}

func (r RecordRepo) Load(_ context.Context, key string) ([]byte, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	payload, ok := r.store.records[key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return append([]byte(nil), payload...), nil
}

func (r RecordRepo) Save(_ context.Context, key string, payload []byte) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.records[key] = append([]byte(nil), payload...)
	return nil
}

func (r RecordRepo) Delete(_ context.Context, key string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.records, key)
	return nil
}
