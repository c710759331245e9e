package survival

// Intents is the closed per-tick command set. Movement and RestHeld are
// level-triggered (held); everything else is edge-triggered and consumed by
// the tick that sees it. Binding physical keys to intents is the caller's
// responsibility.
type Intents struct {
	MoveUp    bool `json:"move_up,omitempty"`
	MoveDown  bool `json:"move_down,omitempty"`
	MoveLeft  bool `json:"move_left,omitempty"`
	MoveRight bool `json:"move_right,omitempty"`

	RestHeld bool `json:"rest_held,omitempty"`

	Interact        bool `json:"interact,omitempty"`
	PlaceActive     bool `json:"place_active,omitempty"`
	Eat             bool `json:"eat,omitempty"`
	ToggleCraftMenu bool `json:"toggle_craft_menu,omitempty"`
	Cancel          bool `json:"cancel,omitempty"`

	CraftRecipe      int    `json:"craft_recipe,omitempty"`       // recipe id, 0 = none
	SelectHotbarSlot int    `json:"select_hotbar_slot,omitempty"` // 1-9, 0 = none
	SetActiveItem    string `json:"set_active_item,omitempty"`
}

// MoveDirection resolves simultaneous movement intents with the fixed
// priority up > down > left > right; exactly one wins.
func (in Intents) MoveDirection() (Facing, bool) {
	switch {
	case in.MoveUp:
		return FacingUp, true
	case in.MoveDown:
		return FacingDown, true
	case in.MoveLeft:
		return FacingLeft, true
	case in.MoveRight:
		return FacingRight, true
	default:
		return "", false
	}
}

// Merge folds a newly submitted intent set into a pending one: held intents
// take the latest value, edge triggers accumulate until the next tick
// consumes them.
func (in *Intents) Merge(next Intents) {
	in.MoveUp = next.MoveUp
	in.MoveDown = next.MoveDown
	in.MoveLeft = next.MoveLeft
	in.MoveRight = next.MoveRight
	in.RestHeld = next.RestHeld

	in.Interact = in.Interact || next.Interact
	in.PlaceActive = in.PlaceActive || next.PlaceActive
	in.Eat = in.Eat || next.Eat
	in.ToggleCraftMenu = in.ToggleCraftMenu || next.ToggleCraftMenu
	in.Cancel = in.Cancel || next.Cancel

	if next.CraftRecipe != 0 {
		in.CraftRecipe = next.CraftRecipe
	}
	if next.SelectHotbarSlot != 0 {
		in.SelectHotbarSlot = next.SelectHotbarSlot
	}
	if next.SetActiveItem != "" {
		in.SetActiveItem = next.SetActiveItem
	}
}
