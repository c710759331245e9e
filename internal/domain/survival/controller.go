package survival

import (
	"math"

	"driftisle/internal/domain/world"
)

// ApplyRestIntent forces the resting state while the rest intent is held,
// regardless of movement in progress, and drops back to Idle on release.
func ApplyRestIntent(p *Player, held bool) {
	if held {
		p.State = StateResting
		return
	}
	if p.State == StateResting {
		p.State = StateIdle
		t := p.Tile()
		p.TargetX, p.TargetY = t.X, t.Y
	}
}

// TickRegen runs the 100ms real-time regeneration cadence. Resting restores
// energy up to the cap and then drains hunger instead; idling with a full
// enough stomach restores energy at the slower passive rate.
func TickRegen(p *Player, elapsedMs int64) {
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	p.RegenAccMs += elapsedMs
	for p.RegenAccMs >= RegenCadenceMs {
		p.RegenAccMs -= RegenCadenceMs
		switch p.State {
		case StateResting:
			if p.Energy >= RestEnergyNearCap {
				p.Energy = VitalMax
				p.AddHunger(-RestHungerStep)
			} else {
				p.AddEnergy(RestEnergyStep)
			}
		case StateIdle:
			if p.Hunger > IdleRegenMinHunger {
				p.AddEnergy(IdleRegenStep)
			}
		}
	}
}

// StartMove attempts the Idle -> Moving transition. Facing updates even
// when the candidate tile rejects the move.
func StartMove(p *Player, g *world.Grid, dir Facing) bool {
	p.Facing = dir
	t := p.Tile()
	dx, dy := dir.Offset()
	nx, ny := t.X+dx, t.Y+dy
	if g.Solid(nx, ny) {
		return false
	}
	p.TargetX, p.TargetY = nx, ny
	p.State = StateMoving
	return true
}

// StepMovement advances the position toward the target tile by one frame.
// Speed modifiers compose multiplicatively: half on shallow water, half
// again at zero energy. Returns true on arrival, which costs energy and
// returns the player to Idle.
func StepMovement(p *Player, g *world.Grid, dtSeconds float64) bool {
	speed := BaseSpeedTilesPerSec
	tile := p.Tile()
	if t, ok := g.At(tile.X, tile.Y); ok && t.Kind == world.ShallowWater {
		speed *= ShallowSpeedFactor
	}
	if p.Energy == 0 {
		speed *= ExhaustedSpeedFactor
	}
	step := speed * dtSeconds

	p.X = stepAxis(p.X, float64(p.TargetX), step)
	p.Y = stepAxis(p.Y, float64(p.TargetY), step)

	if p.X == float64(p.TargetX) && p.Y == float64(p.TargetY) {
		p.State = StateIdle
		p.AddEnergy(-MoveEnergyCost)
		return true
	}
	return false
}

// stepAxis snaps exactly to the target once the remaining distance is below
// one step, so arrival is exact and never oscillates.
func stepAxis(pos, target, step float64) float64 {
	diff := target - pos
	if math.Abs(diff) < step {
		return target
	}
	if diff > 0 {
		return pos + step
	}
	if diff < 0 {
		return pos - step
	}
	return pos
}
