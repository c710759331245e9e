package survival

import (
	"math"

	"driftisle/internal/domain/clock"
	"driftisle/internal/domain/world"
)

type MoveState string

const (
	StateIdle    MoveState = "idle"
	StateMoving  MoveState = "moving"
	StateResting MoveState = "resting"
)

type Facing string

const (
	FacingUp    Facing = "up"
	FacingDown  Facing = "down"
	FacingLeft  Facing = "left"
	FacingRight Facing = "right"
)

func (f Facing) Offset() (int, int) {
	switch f {
	case FacingUp:
		return 0, -1
	case FacingDown:
		return 0, 1
	case FacingLeft:
		return -1, 0
	case FacingRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Player is the single persistent entity of the world. Position is
// continuous in tile units; TargetX/Y is the discrete tile movement snaps
// toward. Vitals are clamped to [0,100] on every write.
type Player struct {
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	TargetX    int       `json:"target_x"`
	TargetY    int       `json:"target_y"`
	State      MoveState `json:"state"`
	Facing     Facing    `json:"facing"`
	Energy     float64   `json:"energy"`
	Hunger     float64   `json:"hunger"`
	ActiveItem string    `json:"active_item,omitempty"`
	// RegenAccMs accumulates real milliseconds toward the 100ms rest/idle
	// regeneration cadence.
	RegenAccMs int64 `json:"regen_acc_ms"`
}

func NewPlayer(spawn world.Point) *Player {
	return &Player{
		X:       float64(spawn.X),
		Y:       float64(spawn.Y),
		TargetX: spawn.X,
		TargetY: spawn.Y,
		State:   StateIdle,
		Facing:  FacingDown,
		Energy:  VitalMax,
		Hunger:  VitalMax,
	}
}

// Normalize repairs a loaded player record: vitals clamped, state one of the
// known values, facing defaulted.
func (p *Player) Normalize() {
	p.Energy = clampVital(p.Energy)
	p.Hunger = clampVital(p.Hunger)
	switch p.State {
	case StateIdle, StateMoving, StateResting:
	default:
		p.State = StateIdle
	}
	switch p.Facing {
	case FacingUp, FacingDown, FacingLeft, FacingRight:
	default:
		p.Facing = FacingDown
	}
}

func (p *Player) Tile() world.Point {
	return world.Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// FacingTile is the tile targeted by interact and place actions.
func (p *Player) FacingTile() world.Point {
	t := p.Tile()
	dx, dy := p.Facing.Offset()
	return world.Point{X: t.X + dx, Y: t.Y + dy}
}

func (p *Player) AddEnergy(delta float64) {
	p.Energy = clampVital(p.Energy + delta)
}

func (p *Player) AddHunger(delta float64) {
	p.Hunger = clampVital(p.Hunger + delta)
}

func clampVital(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > VitalMax {
		return VitalMax
	}
	return v
}

// GameState is the persisted game record: the game-time triple plus the
// inventory ledger.
type GameState struct {
	clock.Time
	Inventory *Inventory `json:"inventory"`
}

func NewGameState(t clock.Time) *GameState {
	return &GameState{Time: t, Inventory: NewInventory()}
}
