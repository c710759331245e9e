package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"driftisle/internal/adapter/repo/memory"
	"driftisle/internal/app/ports"
	"driftisle/internal/app/sim"
	"driftisle/internal/domain/survival"
	"driftisle/internal/domain/world"
)

type nopMetrics struct{}

func (nopMetrics) RecordTick()        {}
func (nopMetrics) RecordEvent(string) {}
func (nopMetrics) RecordSave()        {}
func (nopMetrics) RecordSaveFailure() {}

type captureHub struct {
	mu     sync.Mutex
	frames [][]byte
}

func (h *captureHub) Broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.frames = append(h.frames, payload)
}

func (h *captureHub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.frames)
}

func newTestRunner(store *memory.Store, hub Broadcaster) *Runner {
	simCfg := testSimConfig()
	return NewRunner(DefaultConfig(), simCfg, sim.New(simCfg),
		memory.NewRecordRepo(store), memory.NewEventRepo(store), memory.NewTxManager(store),
		nopMetrics{}, hub, zap.NewNop())
}

func TestRunner_StepConsumesEdgesKeepsHolds(t *testing.T) {
	store := memory.NewStore()
	r := newTestRunner(store, nil)

	r.SubmitIntents(survival.Intents{MoveRight: true, Interact: true})
	r.step(context.Background(), 10*time.Millisecond, time.Now())

	r.mu.Lock()
	pending := r.pending
	r.mu.Unlock()
	if pending.Interact {
		t.Fatal("edge intent survived the tick")
	}
	if !pending.MoveRight {
		t.Fatal("held intent dropped by the tick")
	}
}

func TestRunner_PersistWritesAllThreeRecords(t *testing.T) {
	store := memory.NewStore()
	r := newTestRunner(store, nil)

	if err := r.persist(context.Background()); err != nil {
		t.Fatalf("persist: %v", err)
	}

	records := memory.NewRecordRepo(store)
	for _, key := range []string{ports.RecordWorld, ports.RecordPlayer, ports.RecordState} {
		if _, err := records.Load(context.Background(), key); err != nil {
			t.Fatalf("record %q missing after persist: %v", key, err)
		}
	}

	// The saved payloads restore to the same game time.
	loaded := LoadSimulation(context.Background(), records, testSimConfig(), zap.NewNop())
	if loaded.Time() != r.sim.Time() {
		t.Fatalf("loaded time=%+v want %+v", loaded.Time(), r.sim.Time())
	}
}

func TestRunner_ResetClearsEverything(t *testing.T) {
	store := memory.NewStore()
	r := newTestRunner(store, nil)

	if err := r.persist(context.Background()); err != nil {
		t.Fatalf("persist: %v", err)
	}
	events := memory.NewEventRepo(store)
	if err := events.Append(context.Background(), []ports.EventRecord{{ID: "e1", Type: "harvested"}}); err != nil {
		t.Fatalf("append: %v", err)
	}
	r.sim.State().Inventory.Add(survival.ItemWood, 5)

	if err := r.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}

	records := memory.NewRecordRepo(store)
	for _, key := range []string{ports.RecordWorld, ports.RecordPlayer, ports.RecordState} {
		if _, err := records.Load(context.Background(), key); !errors.Is(err, ports.ErrNotFound) {
			t.Fatalf("record %q still present after reset: %v", key, err)
		}
	}
	if listed, _ := events.ListRecent(context.Background(), 10); len(listed) != 0 {
		t.Fatalf("events=%d want 0 after reset", len(listed))
	}
	if r.sim.State().Inventory.Len() != 0 {
		t.Fatal("inventory survived the reset")
	}
	if r.Status().Day != 1 {
		t.Fatalf("day=%d want a fresh day 1", r.Status().Day)
	}
}

func TestRunner_StepJournalsEvents(t *testing.T) {
	store := memory.NewStore()
	r := newTestRunner(store, nil)

	// An unknown recipe forces a rejection event on this tick.
	r.SubmitIntents(survival.Intents{CraftRecipe: 99})
	r.step(context.Background(), 10*time.Millisecond, time.Now())

	listed, err := memory.NewEventRepo(store).ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].Type != survival.EventActionRejected {
		t.Fatalf("events=%+v want one rejection", listed)
	}
	if listed[0].ID == "" {
		t.Fatal("journaled event has no id")
	}
	var payload map[string]any
	if err := json.Unmarshal(listed[0].Payload, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload["action"] != "craft" {
		t.Fatalf("payload=%v want the craft action", payload)
	}
}

func TestRunner_BroadcastGatedByDigest(t *testing.T) {
	store := memory.NewStore()
	hub := &captureHub{}
	r := newTestRunner(store, hub)

	// Zero elapsed time changes nothing, so only the first frame goes out.
	r.step(context.Background(), 0, time.Now())
	r.step(context.Background(), 0, time.Now())
	if got := hub.count(); got != 1 {
		t.Fatalf("frames=%d want 1, unchanged snapshots must not rebroadcast", got)
	}

	// A moving player changes the snapshot every tick.
	r.SubmitIntents(survival.Intents{MoveRight: true})
	r.step(context.Background(), 50*time.Millisecond, time.Now())
	if got := hub.count(); got != 2 {
		t.Fatalf("frames=%d want 2 after movement", got)
	}

	var snap sim.Snapshot
	if err := json.Unmarshal(hub.frames[1], &snap); err != nil {
		t.Fatalf("frame decode: %v", err)
	}
	if snap.Player.Facing != string(survival.FacingRight) {
		t.Fatalf("facing=%q want right", snap.Player.Facing)
	}
}

func TestRunner_SnapshotViewport(t *testing.T) {
	store := memory.NewStore()
	r := newTestRunner(store, nil)

	snap := r.Snapshot(world.Rect{W: 5, H: 5})
	if len(snap.Tiles) == 0 {
		t.Fatal("empty snapshot window")
	}
	if snap.Day != 1 {
		t.Fatalf("day=%d want 1", snap.Day)
	}
}
