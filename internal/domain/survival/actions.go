package survival

import "driftisle/internal/domain/world"

// Harvest resolves an Interact intent against the faced tile. Trees require
// an equipped axe and leave a timestamped stump; any other loose item is
// picked up for one unit. Stumps and structures are inert. Out-of-bounds
// targets are silent no-ops.
func Harvest(p *Player, g *world.Grid, inv *Inventory, totalMinutes int64) []DomainEvent {
	target := p.FacingTile()
	t, ok := g.At(target.X, target.Y)
	if !ok {
		return nil
	}

	if t.Content.Type != world.ContentItem {
		return nil
	}

	if t.Content.Item == ItemTree {
		if p.ActiveItem != ItemAxe {
			return []DomainEvent{RejectedEvent(totalMinutes, "harvest", "axe required")}
		}
		g.SetContent(target.X, target.Y, world.StumpContent(totalMinutes))
		inv.Add(ItemWood, TreeWoodYield)
		inv.Add(ItemCoconut, TreeCoconutYield)
		p.AddEnergy(-HarvestEnergyCost)
		return []DomainEvent{{
			Type:      EventHarvested,
			AtMinutes: totalMinutes,
			Payload:   map[string]any{"item": ItemTree, "x": target.X, "y": target.Y},
		}}
	}

	kind := t.Content.Item
	g.SetContent(target.X, target.Y, world.Empty())
	inv.Add(kind, 1)
	p.AddEnergy(-PickupEnergyCost)
	return []DomainEvent{{
		Type:      EventPickedUp,
		AtMinutes: totalMinutes,
		Payload:   map[string]any{"item": kind, "x": target.X, "y": target.Y},
	}}
}

// PlacementValid reports whether a structure may land on the tile: in
// bounds, not deep water, and empty.
func PlacementValid(g *world.Grid, at world.Point) bool {
	t, ok := g.At(at.X, at.Y)
	if !ok {
		return false
	}
	return t.Kind != world.DeepWater && t.Content.IsEmpty()
}

// Place puts the equipped placeable item down on the faced tile. The stack
// is decremented; draining it deselects the item.
func Place(p *Player, g *world.Grid, inv *Inventory, totalMinutes int64) []DomainEvent {
	if p.ActiveItem == "" || !IsPlaceable(p.ActiveItem) {
		return []DomainEvent{RejectedEvent(totalMinutes, "place", "no placeable item equipped")}
	}
	if inv.Count(p.ActiveItem) < 1 {
		return []DomainEvent{RejectedEvent(totalMinutes, "place", "item not in inventory")}
	}
	target := p.FacingTile()
	if !PlacementValid(g, target) {
		return []DomainEvent{RejectedEvent(totalMinutes, "place", "blocked tile")}
	}

	kind := p.ActiveItem
	g.SetContent(target.X, target.Y, world.StructureContent(kind))
	inv.Remove(kind, 1)
	if inv.Count(kind) == 0 {
		p.ActiveItem = ""
	}
	return []DomainEvent{{
		Type:      EventPlaced,
		AtMinutes: totalMinutes,
		Payload:   map[string]any{"item": kind, "x": target.X, "y": target.Y},
	}}
}

// EatActive consumes one unit of the equipped edible item and restores
// hunger, clamped at the cap.
func EatActive(p *Player, inv *Inventory, totalMinutes int64) []DomainEvent {
	if p.ActiveItem == "" || !IsEdible(p.ActiveItem) {
		return []DomainEvent{RejectedEvent(totalMinutes, "eat", "no edible item equipped")}
	}
	kind := p.ActiveItem
	if !inv.Remove(kind, 1) {
		return []DomainEvent{RejectedEvent(totalMinutes, "eat", "item not in inventory")}
	}
	p.AddHunger(HungerRestore(kind))
	if inv.Count(kind) == 0 {
		p.ActiveItem = ""
	}
	return []DomainEvent{{
		Type:      EventAte,
		AtMinutes: totalMinutes,
		Payload:   map[string]any{"item": kind},
	}}
}

// EquipActive selects a held item as the active tool/placement item.
func EquipActive(p *Player, inv *Inventory, kind string, totalMinutes int64) []DomainEvent {
	if !KnownItem(kind) || inv.Count(kind) < 1 {
		return []DomainEvent{RejectedEvent(totalMinutes, "set_active_item", "item not in inventory")}
	}
	p.ActiveItem = kind
	return nil
}

// SelectHotbar maps slot 1-9 onto the gear subset of the inventory in
// insertion order.
func SelectHotbar(p *Player, inv *Inventory, slot int, totalMinutes int64) []DomainEvent {
	gear := inv.Gear()
	if slot < 1 || slot > 9 || slot > len(gear) {
		return []DomainEvent{RejectedEvent(totalMinutes, "select_hotbar_slot", "empty slot")}
	}
	p.ActiveItem = gear[slot-1]
	return nil
}
