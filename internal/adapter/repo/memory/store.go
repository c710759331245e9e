package memory

import (
	"sync"

	"driftisle/internal/app/ports"
)

type Store struct {
	mu      sync.RWMutex
	records map[string][]byte
	events  []ports.EventRecord
}

func NewStore() *Store {
	return &Store{records: make(map[string][]byte)}
}

func (s *Store) SeedRecord(key string, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = append([]byte(nil), payload...)
}
