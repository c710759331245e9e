package model

import "time"

// SimRecord holds one of the three independently keyed save records as an
// opaque payload; the session layer owns the encoding.
type SimRecord struct {
	Key       string `gorm:"primaryKey;size:32"`
	Payload   []byte
	UpdatedAt time.Time
}

func (SimRecord) TableName() string { return "sim_records" }

type SimEvent struct {
	ID         string    `gorm:"primaryKey;size:36"`
	Type       string    `gorm:"size:64;index"`
	OccurredAt time.Time `gorm:"index"`
	AtMinutes  int64
	Payload    []byte
}

func (SimEvent) TableName() string { return "sim_events" }
