// Package clock converts elapsed wall-clock time into whole game minutes and
// derives the periodic events the rest of the simulation runs on.
package clock

import "time"

type Config struct {
	MsPerGameMinute int64 // real milliseconds per game minute
	MinutesPerDay   int64
	BoundaryMinutes int64 // interval between minute-boundary events
	RestTimeScale   int64 // time acceleration while the player rests
}

func DefaultConfig() Config {
	return Config{
		MsPerGameMinute: 1000,
		MinutesPerDay:   1440,
		BoundaryMinutes: 20,
		RestTimeScale:   20,
	}
}

// Time is the game-time triple carried in the persisted game state.
// TotalMinutes is the only baseline other subsystems may compare durations
// against; it never decreases and never wraps.
type Time struct {
	Day          int   `json:"day"`
	TimeOfDay    int64 `json:"time_of_day"`
	TotalMinutes int64 `json:"total_minutes"`
}

// NewTime normalizes a loaded triple: day at least 1, and the absolute
// counter never behind what day and time-of-day imply. The baseline is fixed
// eagerly here, not lazily on the first boundary crossing.
func NewTime(day int, timeOfDay, totalMinutes int64, minutesPerDay int64) Time {
	if day < 1 {
		day = 1
	}
	if timeOfDay < 0 {
		timeOfDay = 0
	}
	if timeOfDay >= minutesPerDay {
		timeOfDay = minutesPerDay - 1
	}
	floor := int64(day-1)*minutesPerDay + timeOfDay
	if totalMinutes < floor {
		totalMinutes = floor
	}
	return Time{Day: day, TimeOfDay: timeOfDay, TotalMinutes: totalMinutes}
}

// Events are the derived occurrences of one advance. MinuteMarks counts
// crossed boundary-interval multiples (hunger decay fires per mark);
// DayRollovers counts crossed day ends (the tide sweep fires per rollover).
type Events struct {
	MinuteMarks  int
	DayRollovers int
}

// Keeper accumulates real nanoseconds and releases whole game minutes.
// The accumulator is integral at full duration resolution so sub-millisecond
// frame remainders (a 30Hz frame is not a whole number of milliseconds) are
// carried instead of truncated away.
type Keeper struct {
	cfg   Config
	accNs int64
}

func NewKeeper(cfg Config) *Keeper {
	def := DefaultConfig()
	if cfg.MsPerGameMinute <= 0 {
		cfg.MsPerGameMinute = def.MsPerGameMinute
	}
	if cfg.MinutesPerDay <= 0 {
		cfg.MinutesPerDay = def.MinutesPerDay
	}
	if cfg.BoundaryMinutes <= 0 {
		cfg.BoundaryMinutes = def.BoundaryMinutes
	}
	if cfg.RestTimeScale <= 0 {
		cfg.RestTimeScale = def.RestTimeScale
	}
	return &Keeper{cfg: cfg}
}

func (k *Keeper) Config() Config {
	return k.cfg
}

// Advance feeds elapsed real time into the accumulator (scaled while
// resting) and applies any released whole minutes to t. Minute marks are
// counted on the day clock so they stay in phase with time-of-day even when
// a loaded save's absolute counter sits off a boundary multiple. Day
// rollover subtracts MinutesPerDay rather than taking a modulo so the
// overflow remainder carries into the new day.
func (k *Keeper) Advance(t Time, elapsed time.Duration, resting bool) (Time, Events) {
	ns := elapsed.Nanoseconds()
	if ns < 0 {
		ns = 0
	}
	if resting {
		ns *= k.cfg.RestTimeScale
	}
	k.accNs += ns

	nsPerMinute := k.cfg.MsPerGameMinute * int64(time.Millisecond)
	minutes := k.accNs / nsPerMinute
	k.accNs -= minutes * nsPerMinute
	if minutes == 0 {
		return t, Events{}
	}

	var ev Events
	t.TotalMinutes += minutes

	sum := t.TimeOfDay + minutes
	ev.MinuteMarks = int(sum/k.cfg.BoundaryMinutes - t.TimeOfDay/k.cfg.BoundaryMinutes)
	t.TimeOfDay = sum
	for t.TimeOfDay >= k.cfg.MinutesPerDay {
		t.TimeOfDay -= k.cfg.MinutesPerDay
		t.Day++
		ev.DayRollovers++
	}
	return t, ev
}
