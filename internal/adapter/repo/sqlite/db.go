// Package sqliterepo is the default local save backend: a single sqlite
// file holding the three save records and the event journal.
package sqliterepo

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sim_records (
  key        TEXT PRIMARY KEY,
  payload    BLOB NOT NULL,
  updated_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS sim_events (
  id          TEXT PRIMARY KEY,
  type        TEXT NOT NULL,
  occurred_at TIMESTAMP NOT NULL,
  at_minutes  INTEGER NOT NULL,
  payload     BLOB
);
CREATE INDEX IF NOT EXISTS idx_sim_events_occurred ON sim_events(occurred_at);
`

func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create save dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// The save file has exactly one writer, the session runner.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
