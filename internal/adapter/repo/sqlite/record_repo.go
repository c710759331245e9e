package sqliterepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"driftisle/internal/app/ports"
)

type RecordRepo struct {
	db *sql.DB
}

func NewRecordRepo(db *sql.DB) RecordRepo {
	return RecordRepo{db: db}
}

func (r RecordRepo) Load(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := execFromCtx(ctx, r.db).
		QueryRowContext(ctx, `SELECT payload FROM sim_records WHERE key = ?`, key).
		Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (r RecordRepo) Save(ctx context.Context, key string, payload []byte) error {
	_, err := execFromCtx(ctx, r.db).ExecContext(ctx, `
INSERT INTO sim_records(key, payload, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, payload, time.Now())
	return err
}

func (r RecordRepo) Delete(ctx context.Context, key string) error {
	_, err := execFromCtx(ctx, r.db).ExecContext(ctx, `DELETE FROM sim_records WHERE key = ?`, key)
	return err
}
