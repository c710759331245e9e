package sim

import (
	"math"

	"driftisle/internal/domain/survival"
	"driftisle/internal/domain/world"
)

// Snapshot is the read-only per-tick view consumed by rendering and UI.
type Snapshot struct {
	Day          int   `json:"day"`
	TimeOfDay    int64 `json:"time_of_day"`
	TotalMinutes int64 `json:"total_minutes"`

	Darkness float64 `json:"darkness"`
	CameraX  float64 `json:"camera_x"`
	CameraY  float64 `json:"camera_y"`

	Tiles []world.WindowTile `json:"tiles"`

	Player PlayerView `json:"player"`

	Gear       []ItemCount `json:"gear"`
	Resources  []ItemCount `json:"resources"`
	ActiveItem string      `json:"active_item,omitempty"`

	CraftMenuOpen bool         `json:"craft_menu_open"`
	Recipes       []RecipeView `json:"recipes"`

	Ghost *GhostPreview `json:"ghost,omitempty"`
}

type PlayerView struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	TargetX int     `json:"target_x"`
	TargetY int     `json:"target_y"`
	State   string  `json:"state"`
	Facing  string  `json:"facing"`
	Energy  float64 `json:"energy"`
	Hunger  float64 `json:"hunger"`
}

type ItemCount struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

type RecipeView struct {
	ID          int            `json:"id"`
	Result      string         `json:"result"`
	Amount      int            `json:"amount"`
	Ingredients map[string]int `json:"ingredients"`
	CanCraft    bool           `json:"can_craft"`
}

// GhostPreview annotates where the active placeable item would land.
type GhostPreview struct {
	Target world.Point `json:"target"`
	Valid  bool        `json:"valid"`
}

// Snapshot derives the view for a caller-supplied viewport (in tiles). The
// camera is centered on the player and clamped to map bounds.
func (s *Simulation) Snapshot(viewport world.Rect) Snapshot {
	if viewport.W <= 0 {
		viewport.W = 21
	}
	if viewport.H <= 0 {
		viewport.H = 15
	}

	camX, camY := world.CameraOffset(s.player.X, s.player.Y, viewport.W, viewport.H, s.grid.Width, s.grid.Height)
	window := s.grid.Window(world.Rect{
		X: int(math.Floor(camX)),
		Y: int(math.Floor(camY)),
		W: viewport.W + 1,
		H: viewport.H + 1,
	})

	out := Snapshot{
		Day:          s.state.Day,
		TimeOfDay:    s.state.TimeOfDay,
		TotalMinutes: s.state.TotalMinutes,
		Darkness:     world.Darkness(s.state.TimeOfDay, s.keeper.Config().MinutesPerDay, s.cfg.MaxDarkness),
		CameraX:      camX,
		CameraY:      camY,
		Tiles:        window,
		Player: PlayerView{
			X:       s.player.X,
			Y:       s.player.Y,
			TargetX: s.player.TargetX,
			TargetY: s.player.TargetY,
			State:   string(s.player.State),
			Facing:  string(s.player.Facing),
			Energy:  s.player.Energy,
			Hunger:  s.player.Hunger,
		},
		Gear:          itemCounts(s.state.Inventory, s.state.Inventory.Gear()),
		Resources:     itemCounts(s.state.Inventory, s.state.Inventory.Resources()),
		ActiveItem:    s.player.ActiveItem,
		CraftMenuOpen: s.menuOpen,
		Recipes:       s.recipeViews(),
	}

	if s.player.ActiveItem != "" && survival.IsPlaceable(s.player.ActiveItem) {
		target := s.player.FacingTile()
		out.Ghost = &GhostPreview{
			Target: target,
			Valid:  survival.PlacementValid(s.grid, target),
		}
	}
	return out
}

func itemCounts(inv *survival.Inventory, kinds []string) []ItemCount {
	out := make([]ItemCount, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, ItemCount{Kind: k, Count: inv.Count(k)})
	}
	return out
}

func (s *Simulation) recipeViews() []RecipeView {
	out := make([]RecipeView, 0, len(s.cfg.Recipes))
	for _, r := range s.cfg.Recipes {
		out = append(out, RecipeView{
			ID:          r.ID,
			Result:      r.Result,
			Amount:      r.ResultAmount,
			Ingredients: r.Ingredients,
			CanCraft:    survival.CanCraft(s.state.Inventory, r),
		})
	}
	return out
}
