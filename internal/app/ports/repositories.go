package ports

import (
	"context"
	"time"
)

// The three independently keyed persistence records. Each holds one opaque
// serialized payload; the session layer owns the encoding.
const (
	RecordWorld  = "world"
	RecordPlayer = "player"
	RecordState  = "state"
)

type RecordRepository interface {
	// Load returns ErrNotFound when the record has never been saved.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}

type EventRecord struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	AtMinutes  int64     `json:"at_minutes"`
	Payload    []byte    `json:"payload,omitempty"`
}

type EventRepository interface {
	Append(ctx context.Context, events []EventRecord) error
	ListRecent(ctx context.Context, limit int) ([]EventRecord, error)
	Clear(ctx context.Context) error
}
