// Package sim owns the shared mutable world for the process lifetime and
// advances it one tick at a time. There is exactly one writer: Tick.
package sim

import (
	"math/rand"
	"time"

	"driftisle/internal/domain/clock"
	"driftisle/internal/domain/survival"
	"driftisle/internal/domain/world"
)

type Config struct {
	Clock         clock.Config
	Gen           world.GenConfig
	Tide          world.TideBands
	RegrowMinutes int64
	MaxDarkness   float64
	Recipes       []survival.Recipe
	Seed          int64
}

func DefaultConfig() Config {
	return Config{
		Clock:         clock.DefaultConfig(),
		Gen:           world.DefaultGenConfig(),
		Tide:          world.DefaultTideBands(),
		RegrowMinutes: 1440,
		MaxDarkness:   0.85,
		Recipes:       survival.DefaultRecipes(),
		Seed:          1,
	}
}

// Simulation exclusively owns the grid, the player and the game state.
// Everything else sees them through read-only snapshots.
type Simulation struct {
	cfg    Config
	keeper *clock.Keeper
	rng    *rand.Rand

	grid   *world.Grid
	player *survival.Player
	state  *survival.GameState

	menuOpen bool
}

func normalizeConfig(cfg Config) Config {
	def := DefaultConfig()
	if cfg.RegrowMinutes <= 0 {
		cfg.RegrowMinutes = def.RegrowMinutes
	}
	if cfg.MaxDarkness <= 0 || cfg.MaxDarkness > 1 {
		cfg.MaxDarkness = def.MaxDarkness
	}
	if len(cfg.Recipes) == 0 {
		cfg.Recipes = def.Recipes
	}
	return cfg
}

// New generates a fresh world and runs the implicit first-day tide sweep so
// the shoreline starts stocked.
func New(cfg Config) *Simulation {
	cfg = normalizeConfig(cfg)
	keeper := clock.NewKeeper(cfg.Clock)
	rng := rand.New(rand.NewSource(cfg.Seed))
	grid := world.Generate(cfg.Gen, rng)
	player := survival.NewPlayer(grid.SpawnPoint())
	state := survival.NewGameState(clock.NewTime(1, 8*60, 0, keeper.Config().MinutesPerDay))

	s := &Simulation{
		cfg:    cfg,
		keeper: keeper,
		rng:    rng,
		grid:   grid,
		player: player,
		state:  state,
	}
	world.TideSweep(grid, player.Tile(), cfg.Tide, rng)
	return s
}

// Restore rebuilds a simulation from loaded records, repairing anything a
// stale save could have left inconsistent.
func Restore(cfg Config, grid *world.Grid, player *survival.Player, state *survival.GameState) *Simulation {
	cfg = normalizeConfig(cfg)
	keeper := clock.NewKeeper(cfg.Clock)
	player.Normalize()
	if state.Inventory == nil {
		state.Inventory = survival.NewInventory()
	}
	state.Time = clock.NewTime(state.Day, state.TimeOfDay, state.TotalMinutes, keeper.Config().MinutesPerDay)

	return &Simulation{
		cfg:    cfg,
		keeper: keeper,
		rng:    rand.New(rand.NewSource(cfg.Seed ^ state.TotalMinutes)),
		grid:   grid,
		player: player,
		state:  state,
	}
}

func (s *Simulation) Grid() *world.Grid          { return s.grid }
func (s *Simulation) Player() *survival.Player   { return s.player }
func (s *Simulation) State() *survival.GameState { return s.state }
func (s *Simulation) Recipes() []survival.Recipe { return s.cfg.Recipes }
func (s *Simulation) Time() clock.Time           { return s.state.Time }

// Tick advances the world by one frame. Stages run in a fixed, committed
// order: time advance and its derived sweeps, regeneration timers, movement
// and interaction, with view derivation left to Snapshot.
func (s *Simulation) Tick(dt time.Duration, in survival.Intents) []survival.DomainEvent {
	var events []survival.DomainEvent

	// Rest transition first: time scaling must see the held intent.
	survival.ApplyRestIntent(s.player, in.RestHeld)
	resting := s.player.State == survival.StateResting

	t, ev := s.keeper.Advance(s.state.Time, dt, resting)
	s.state.Time = t
	for i := 0; i < ev.MinuteMarks; i++ {
		s.player.AddHunger(-survival.HungerDecayPerBoundary)
	}
	if ev.MinuteMarks > 0 {
		for _, pt := range world.RegrowSweep(s.grid, t.TotalMinutes, s.cfg.RegrowMinutes) {
			events = append(events, survival.DomainEvent{
				Type:      survival.EventRegrown,
				AtMinutes: t.TotalMinutes,
				Payload:   map[string]any{"x": pt.X, "y": pt.Y},
			})
		}
	}
	for i := 0; i < ev.DayRollovers; i++ {
		events = append(events, survival.DomainEvent{
			Type:      survival.EventDayRollover,
			AtMinutes: t.TotalMinutes,
			Payload:   map[string]any{"day": t.Day},
		})
		for _, sp := range world.TideSweep(s.grid, s.player.Tile(), s.cfg.Tide, s.rng) {
			events = append(events, survival.DomainEvent{
				Type:      survival.EventTideSpawned,
				AtMinutes: t.TotalMinutes,
				Payload:   map[string]any{"item": sp.Item, "x": sp.Pos.X, "y": sp.Pos.Y},
			})
		}
	}

	survival.TickRegen(s.player, dt.Milliseconds())

	if !resting {
		if s.player.State == survival.StateIdle {
			if dir, ok := in.MoveDirection(); ok {
				survival.StartMove(s.player, s.grid, dir)
			}
		}
		if s.player.State == survival.StateMoving {
			survival.StepMovement(s.player, s.grid, dt.Seconds())
		}
	}

	events = append(events, s.applyEdgeIntents(in)...)
	return events
}

func (s *Simulation) applyEdgeIntents(in survival.Intents) []survival.DomainEvent {
	var events []survival.DomainEvent
	now := s.state.TotalMinutes

	if in.Interact {
		events = append(events, survival.Harvest(s.player, s.grid, s.state.Inventory, now)...)
	}
	if in.PlaceActive {
		events = append(events, survival.Place(s.player, s.grid, s.state.Inventory, now)...)
	}
	if in.Eat {
		events = append(events, survival.EatActive(s.player, s.state.Inventory, now)...)
	}
	if in.ToggleCraftMenu {
		s.menuOpen = !s.menuOpen
	}
	if in.Cancel {
		s.menuOpen = false
		s.player.ActiveItem = ""
	}
	if in.CraftRecipe != 0 {
		events = append(events, s.craft(in.CraftRecipe)...)
	}
	if in.SelectHotbarSlot != 0 {
		events = append(events, survival.SelectHotbar(s.player, s.state.Inventory, in.SelectHotbarSlot, now)...)
	}
	if in.SetActiveItem != "" {
		events = append(events, survival.EquipActive(s.player, s.state.Inventory, in.SetActiveItem, now)...)
	}
	return events
}

func (s *Simulation) craft(recipeID int) []survival.DomainEvent {
	now := s.state.TotalMinutes
	r, ok := survival.RecipeByID(s.cfg.Recipes, recipeID)
	if !ok {
		return []survival.DomainEvent{survival.RejectedEvent(now, "craft", "unknown recipe")}
	}
	if !survival.Craft(s.state.Inventory, r) {
		return []survival.DomainEvent{survival.RejectedEvent(now, "craft", "missing ingredients")}
	}
	return []survival.DomainEvent{{
		Type:      survival.EventCrafted,
		AtMinutes: now,
		Payload:   map[string]any{"recipe_id": r.ID, "result": r.Result, "amount": r.ResultAmount},
	}}
}
