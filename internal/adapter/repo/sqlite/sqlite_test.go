package sqliterepo

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"driftisle/internal/app/ports"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "save", "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordRepo_SaveLoadDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewRecordRepo(db)
	ctx := context.Background()

	if _, err := repo.Load(ctx, ports.RecordPlayer); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}

	if err := repo.Save(ctx, ports.RecordPlayer, []byte("v1")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, ports.RecordPlayer, []byte("v2")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := repo.Load(ctx, ports.RecordPlayer)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "v2" {
		t.Fatalf("payload=%q want v2", got)
	}

	if err := repo.Delete(ctx, ports.RecordPlayer); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Load(ctx, ports.RecordPlayer); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound after delete", err)
	}
}

func TestEventRepo_AppendListClear(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	batch := []ports.EventRecord{
		{ID: "a", Type: "harvested", OccurredAt: base, AtMinutes: 10, Payload: []byte(`{"item":"tree"}`)},
		{ID: "b", Type: "tide_spawned", OccurredAt: base.Add(time.Second), AtMinutes: 20},
		{ID: "c", Type: "day_rollover", OccurredAt: base.Add(2 * time.Second), AtMinutes: 30},
	}
	if err := repo.Append(ctx, batch); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d want 2", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "b" {
		t.Fatalf("order=[%s %s] want newest first", got[0].ID, got[1].ID)
	}
	if got[1].AtMinutes != 20 {
		t.Fatalf("atMinutes=%d want 20", got[1].AtMinutes)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got, _ := repo.ListRecent(ctx, 10); len(got) != 0 {
		t.Fatalf("len=%d want 0 after clear", len(got))
	}
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	records := NewRecordRepo(db)
	tx := NewTxManager(db)
	ctx := context.Background()

	wantErr := errors.New("boom")
	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := records.Save(ctx, ports.RecordWorld, []byte("tx")); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err=%v want the callback error", err)
	}
	if _, err := records.Load(ctx, ports.RecordWorld); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound, write must roll back", err)
	}
}

func TestTxManager_CommitsAtomically(t *testing.T) {
	db := openTestDB(t)
	records := NewRecordRepo(db)
	events := NewEventRepo(db)
	tx := NewTxManager(db)
	ctx := context.Background()

	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, key := range []string{ports.RecordWorld, ports.RecordPlayer, ports.RecordState} {
			if err := records.Save(ctx, key, []byte(key)); err != nil {
				return err
			}
		}
		return events.Append(ctx, []ports.EventRecord{{ID: "e", Type: "placed", OccurredAt: time.Now()}})
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}

	for _, key := range []string{ports.RecordWorld, ports.RecordPlayer, ports.RecordState} {
		if _, err := records.Load(ctx, key); err != nil {
			t.Fatalf("record %q: %v", key, err)
		}
	}
	if got, _ := events.ListRecent(ctx, 10); len(got) != 1 {
		t.Fatalf("events=%d want 1", len(got))
	}
}
