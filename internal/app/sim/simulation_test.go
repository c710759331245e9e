package sim

import (
	"testing"
	"time"

	"driftisle/internal/domain/clock"
	"driftisle/internal/domain/survival"
	"driftisle/internal/domain/world"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Gen = world.GenConfig{Width: 32, Height: 32, TreeDensity: 0.1}
	return cfg
}

func TestNew_StartsDayOneMorningWithStockedShore(t *testing.T) {
	s := New(testConfig())

	if s.Time().Day != 1 || s.Time().TimeOfDay != 8*60 {
		t.Fatalf("start=%+v want day 1 at 08:00", s.Time())
	}

	spawns := 0
	s.Grid().Each(func(x, y int, tile world.Tile) {
		if tile.Kind == world.Sand && tile.Content.Type == world.ContentItem {
			spawns++
		}
	})
	if spawns == 0 {
		t.Fatal("no tide spawns on a fresh island")
	}
}

func TestTick_HungerDecaysAtBoundaries(t *testing.T) {
	s := New(testConfig())

	// 20 game minutes at 1s per minute crosses one boundary.
	for i := 0; i < 20; i++ {
		s.Tick(time.Second, survival.Intents{})
	}
	if got := s.Player().Hunger; got != 100-survival.HungerDecayPerBoundary {
		t.Fatalf("hunger=%v want exactly one decay step", got)
	}
}

func TestTick_DayRolloverEmitsEventsAndTide(t *testing.T) {
	cfg := testConfig()
	s := New(cfg)

	// Jump to one minute before midnight, then cross it.
	s.State().Time = clock.NewTime(1, 1439, 1439, cfg.Clock.MinutesPerDay)
	events := s.Tick(2*time.Second, survival.Intents{})

	var rollovers, tides int
	for _, ev := range events {
		switch ev.Type {
		case survival.EventDayRollover:
			rollovers++
		case survival.EventTideSpawned:
			tides++
		}
	}
	if rollovers != 1 {
		t.Fatalf("rollovers=%d want 1", rollovers)
	}
	if s.Time().Day != 2 {
		t.Fatalf("day=%d want 2", s.Time().Day)
	}
	if tides == 0 {
		t.Fatal("rollover produced no tide spawns")
	}
}

func TestTick_RestAcceleratesTime(t *testing.T) {
	s := New(testConfig())
	start := s.Time().TotalMinutes

	s.Tick(time.Second, survival.Intents{RestHeld: true})
	if got := s.Time().TotalMinutes - start; got != 20 {
		t.Fatalf("advanced %d minutes want 20 under rest scaling", got)
	}
	if s.Player().State != survival.StateResting {
		t.Fatalf("state=%s want resting", s.Player().State)
	}
}

func TestTick_CraftAndMenuFlow(t *testing.T) {
	s := New(testConfig())
	inv := s.State().Inventory
	inv.Add(survival.ItemWood, 2)

	events := s.Tick(time.Millisecond, survival.Intents{ToggleCraftMenu: true, CraftRecipe: 2})
	if !s.Snapshot(world.Rect{}).CraftMenuOpen {
		t.Fatal("menu did not open")
	}
	if len(events) != 1 || events[0].Type != survival.EventCrafted {
		t.Fatalf("events=%v want one crafted", events)
	}
	if inv.Count(survival.ItemWall) != 1 || inv.Count(survival.ItemWood) != 0 {
		t.Fatalf("wall=%d wood=%d want 1/0", inv.Count(survival.ItemWall), inv.Count(survival.ItemWood))
	}

	// Cancel closes the menu and drops the selection.
	s.Player().ActiveItem = survival.ItemWall
	s.Tick(time.Millisecond, survival.Intents{Cancel: true})
	snap := s.Snapshot(world.Rect{})
	if snap.CraftMenuOpen || snap.ActiveItem != "" {
		t.Fatalf("menuOpen=%v active=%q want closed and deselected", snap.CraftMenuOpen, snap.ActiveItem)
	}
}

func TestTick_CraftUnknownRecipeRejects(t *testing.T) {
	s := New(testConfig())
	events := s.Tick(time.Millisecond, survival.Intents{CraftRecipe: 42})
	if len(events) != 1 || events[0].Type != survival.EventActionRejected {
		t.Fatalf("events=%v want one rejection", events)
	}
}

func TestTick_MovementBlockedWhileResting(t *testing.T) {
	s := New(testConfig())
	x := s.Player().X

	s.Tick(100*time.Millisecond, survival.Intents{RestHeld: true, MoveRight: true})
	if s.Player().X != x {
		t.Fatalf("x moved from %v to %v while resting", x, s.Player().X)
	}
}

func TestRestore_RepairsState(t *testing.T) {
	cfg := testConfig()
	grid := world.NewGrid(8, 8)
	player := &survival.Player{X: 4, Y: 4, Energy: 500, State: "???"}
	state := &survival.GameState{Time: clock.Time{Day: 0, TimeOfDay: 30}}

	s := Restore(cfg, grid, player, state)
	if s.Player().Energy != 100 {
		t.Fatalf("energy=%v want clamped", s.Player().Energy)
	}
	if s.State().Inventory == nil {
		t.Fatal("nil inventory not repaired")
	}
	if s.Time().Day != 1 || s.Time().TotalMinutes != 30 {
		t.Fatalf("time=%+v want day 1, totalMinutes 30", s.Time())
	}
}

func TestSnapshot_GhostForPlaceable(t *testing.T) {
	s := New(testConfig())
	s.State().Inventory.Add(survival.ItemWall, 1)
	s.Player().ActiveItem = survival.ItemWall

	snap := s.Snapshot(world.Rect{W: 21, H: 15})
	if snap.Ghost == nil {
		t.Fatal("no ghost preview with a placeable equipped")
	}
	if snap.Ghost.Target != s.Player().FacingTile() {
		t.Fatalf("ghost target=%+v want %+v", snap.Ghost.Target, s.Player().FacingTile())
	}

	s.Player().ActiveItem = ""
	if snap := s.Snapshot(world.Rect{W: 21, H: 15}); snap.Ghost != nil {
		t.Fatal("ghost preview with nothing equipped")
	}
}

func TestSnapshot_ViewportDefaultsAndRecipes(t *testing.T) {
	s := New(testConfig())
	snap := s.Snapshot(world.Rect{})

	if len(snap.Tiles) == 0 {
		t.Fatal("empty tile window")
	}
	if len(snap.Recipes) != len(s.Recipes()) {
		t.Fatalf("recipes=%d want %d", len(snap.Recipes), len(s.Recipes()))
	}
	for _, r := range snap.Recipes {
		if r.CanCraft {
			t.Fatalf("recipe %d craftable with an empty inventory", r.ID)
		}
	}
}
