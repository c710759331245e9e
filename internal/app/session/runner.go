package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"driftisle/internal/app/ports"
	"driftisle/internal/app/sim"
	"driftisle/internal/domain/survival"
	"driftisle/internal/domain/world"
)

type Config struct {
	TickRateHz     int
	AutosaveEvery  time.Duration
	StreamViewport world.Rect
}

func DefaultConfig() Config {
	return Config{
		TickRateHz:     30,
		AutosaveEvery:  30 * time.Second,
		StreamViewport: world.Rect{W: 21, H: 15},
	}
}

// Broadcaster receives the encoded snapshot of each tick whose view changed.
type Broadcaster interface {
	Broadcast(snapshot []byte)
}

// Runner owns the frame loop around the simulation: the pending-intent
// mailbox, persistence cadence, event journaling, metrics and snapshot
// broadcast. The tick goroutine is the only writer of simulation state; the
// mutex only guards the mailbox and snapshot reads against HTTP callers.
type Runner struct {
	cfg    Config
	simCfg sim.Config

	mu      sync.Mutex
	sim     *sim.Simulation
	pending survival.Intents

	records ports.RecordRepository
	events  ports.EventRepository
	tx      ports.TxManager
	metrics ports.SimMetrics
	log     *zap.Logger
	hub     Broadcaster

	lastTick   time.Time
	lastSave   time.Time
	lastDigest uint64
}

func NewRunner(cfg Config, simCfg sim.Config, s *sim.Simulation, records ports.RecordRepository, events ports.EventRepository, tx ports.TxManager, metrics ports.SimMetrics, hub Broadcaster, log *zap.Logger) *Runner {
	def := DefaultConfig()
	if cfg.TickRateHz <= 0 {
		cfg.TickRateHz = def.TickRateHz
	}
	if cfg.AutosaveEvery <= 0 {
		cfg.AutosaveEvery = def.AutosaveEvery
	}
	if cfg.StreamViewport.W <= 0 || cfg.StreamViewport.H <= 0 {
		cfg.StreamViewport = def.StreamViewport
	}
	return &Runner{
		cfg:     cfg,
		simCfg:  simCfg,
		sim:     s,
		records: records,
		events:  events,
		tx:      tx,
		metrics: metrics,
		log:     log,
		hub:     hub,
	}
}

// Run drives the frame loop until the context ends. A final save runs on
// the way out so a clean shutdown never loses more than the current tick.
func (r *Runner) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(r.cfg.TickRateHz)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.lastTick = time.Now()
	r.lastSave = time.Now()

	for {
		select {
		case <-ctx.Done():
			if err := r.persist(context.Background()); err != nil {
				r.log.Error("final save failed", zap.Error(err))
			}
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(r.lastTick)
			r.lastTick = now
			r.step(ctx, dt, now)
		}
	}
}

// SubmitIntents folds a new intent set into the mailbox for the next tick.
func (r *Runner) SubmitIntents(in survival.Intents) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending.Merge(in)
}

// Snapshot returns the current view for a caller viewport.
func (r *Runner) Snapshot(viewport world.Rect) sim.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sim.Snapshot(viewport)
}

type Status struct {
	Day          int     `json:"day"`
	TimeOfDay    int64   `json:"time_of_day"`
	TotalMinutes int64   `json:"total_minutes"`
	Energy       float64 `json:"energy"`
	Hunger       float64 `json:"hunger"`
	State        string  `json:"state"`
	ActiveItem   string  `json:"active_item,omitempty"`
}

func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.sim.Player()
	t := r.sim.Time()
	return Status{
		Day:          t.Day,
		TimeOfDay:    t.TimeOfDay,
		TotalMinutes: t.TotalMinutes,
		Energy:       p.Energy,
		Hunger:       p.Hunger,
		State:        string(p.State),
		ActiveItem:   p.ActiveItem,
	}
}

func (r *Runner) RecentEvents(ctx context.Context, limit int) ([]ports.EventRecord, error) {
	return r.events.ListRecent(ctx, limit)
}

// Reset clears the three persisted records and the event journal as one
// logical unit, then regenerates a fresh world. A partial clear must never
// leave the stores mixed, hence the single transaction.
func (r *Runner) Reset(ctx context.Context) error {
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, key := range []string{ports.RecordWorld, ports.RecordPlayer, ports.RecordState} {
			if err := r.records.Delete(ctx, key); err != nil {
				return err
			}
		}
		return r.events.Clear(ctx)
	})
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.sim = sim.New(r.simCfg)
	r.pending = survival.Intents{}
	r.lastDigest = 0
	r.mu.Unlock()
	r.log.Info("simulation reset")
	return nil
}

func (r *Runner) step(ctx context.Context, dt time.Duration, now time.Time) {
	r.mu.Lock()
	in := r.pending
	// Edge triggers are consumed by this tick; held intents carry over.
	r.pending = survival.Intents{
		MoveUp:    in.MoveUp,
		MoveDown:  in.MoveDown,
		MoveLeft:  in.MoveLeft,
		MoveRight: in.MoveRight,
		RestHeld:  in.RestHeld,
	}
	events := r.sim.Tick(dt, in)
	snap := r.sim.Snapshot(r.cfg.StreamViewport)
	r.mu.Unlock()

	r.metrics.RecordTick()

	dayRolled := false
	for _, ev := range events {
		r.metrics.RecordEvent(ev.Type)
		if ev.Type == survival.EventDayRollover {
			dayRolled = true
			r.log.Info("day rollover", zap.Any("payload", ev.Payload))
		}
	}
	if len(events) > 0 {
		r.appendEvents(ctx, events, now)
	}

	if dayRolled || now.Sub(r.lastSave) >= r.cfg.AutosaveEvery {
		if err := r.persist(ctx); err != nil {
			r.metrics.RecordSaveFailure()
			r.log.Error("autosave failed", zap.Error(err))
		} else {
			r.metrics.RecordSave()
			r.lastSave = now
		}
	}

	r.broadcast(snap)
}

func (r *Runner) appendEvents(ctx context.Context, events []survival.DomainEvent, now time.Time) {
	records := make([]ports.EventRecord, 0, len(events))
	for _, ev := range events {
		payload, err := json.Marshal(ev.Payload)
		if err != nil {
			payload = nil
		}
		records = append(records, ports.EventRecord{
			ID:         uuid.NewString(),
			Type:       ev.Type,
			OccurredAt: now,
			AtMinutes:  ev.AtMinutes,
			Payload:    payload,
		})
	}
	if err := r.events.Append(ctx, records); err != nil {
		r.log.Warn("event append failed", zap.Error(err))
	}
}

// persist serializes a full, self-consistent snapshot of all three records
// inside one transaction. Only called between ticks, never mid-mutation.
func (r *Runner) persist(ctx context.Context) error {
	r.mu.Lock()
	worldPayload, err := EncodeWorld(r.sim.Grid())
	if err != nil {
		r.mu.Unlock()
		return err
	}
	playerPayload, err := EncodePlayer(r.sim.Player())
	if err != nil {
		r.mu.Unlock()
		return err
	}
	statePayload, err := EncodeState(r.sim.State())
	r.mu.Unlock()
	if err != nil {
		return err
	}

	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := r.records.Save(ctx, ports.RecordWorld, worldPayload); err != nil {
			return err
		}
		if err := r.records.Save(ctx, ports.RecordPlayer, playerPayload); err != nil {
			return err
		}
		return r.records.Save(ctx, ports.RecordState, statePayload)
	})
}

func (r *Runner) broadcast(snap sim.Snapshot) {
	if r.hub == nil {
		return
	}
	encoded, err := json.Marshal(snap)
	if err != nil {
		r.log.Warn("snapshot encode failed", zap.Error(err))
		return
	}
	digest := xxhash.Sum64(encoded)
	if digest == r.lastDigest {
		return
	}
	r.lastDigest = digest
	r.hub.Broadcast(encoded)
}
