package inmemory

import "sync"

type Snapshot struct {
	Ticks        uint64            `json:"ticks"`
	Saves        uint64            `json:"saves"`
	SaveFailures uint64            `json:"save_failures"`
	ByEventType  map[string]uint64 `json:"by_event_type"`
}

type Recorder struct {
	mu           sync.Mutex
	ticks        uint64
	saves        uint64
	saveFailures uint64
	byEvent      map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byEvent: map[string]uint64{},
	}
}

func (r *Recorder) RecordTick() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
}

func (r *Recorder) RecordEvent(eventType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byEvent[eventType]++
}

func (r *Recorder) RecordSave() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
}

func (r *Recorder) RecordSaveFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveFailures++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		Ticks:        r.ticks,
		Saves:        r.saves,
		SaveFailures: r.saveFailures,
		ByEventType:  make(map[string]uint64, len(r.byEvent)),
	}
	for k, v := range r.byEvent {
		out.ByEventType[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
