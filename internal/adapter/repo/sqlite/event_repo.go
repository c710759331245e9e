package sqliterepo

import (
	"context"
	"database/sql"

	"driftisle/internal/app/ports"
)

type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, events []ports.EventRecord) error {
	if len(events) == 0 {
		return nil
	}
	exec := execFromCtx(ctx, r.db)
	for _, ev := range events {
		_, err := exec.ExecContext(ctx, `
INSERT INTO sim_events(id, type, occurred_at, at_minutes, payload) VALUES (?, ?, ?, ?, ?)`,
			ev.ID, ev.Type, ev.OccurredAt, ev.AtMinutes, ev.Payload)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r EventRepo) ListRecent(ctx context.Context, limit int) ([]ports.EventRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := execFromCtx(ctx, r.db).QueryContext(ctx, `
SELECT id, type, occurred_at, at_minutes, payload FROM sim_events
ORDER BY occurred_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ports.EventRecord
	for rows.Next() {
		var ev ports.EventRecord
		if err := rows.Scan(&ev.ID, &ev.Type, &ev.OccurredAt, &ev.AtMinutes, &ev.Payload); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

func (r EventRepo) Clear(ctx context.Context) error {
	_, err := execFromCtx(ctx, r.db).ExecContext(ctx, `DELETE FROM sim_events`)
	return err
}
