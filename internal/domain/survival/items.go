package survival

const (
	ItemTree      = "tree"
	ItemDriftwood = "driftwood"
	ItemMetal     = "metal"
	ItemCrate     = "crate"
	ItemWood      = "wood"
	ItemCoconut   = "coconut"
	ItemAxe       = "axe"
	ItemWall      = "wall"
	ItemTorch     = "torch"
)

type ItemDef struct {
	Tool      bool
	Placeable bool
	// RestoresHunger marks edible items; zero means not edible.
	RestoresHunger float64
}

var itemDefs = map[string]ItemDef{
	ItemTree:      {},
	ItemDriftwood: {},
	ItemMetal:     {},
	ItemCrate:     {},
	ItemWood:      {},
	ItemCoconut:   {RestoresHunger: CoconutHungerRestore},
	ItemAxe:       {Tool: true},
	ItemWall:      {Placeable: true},
	ItemTorch:     {Placeable: true},
}

func KnownItem(kind string) bool {
	_, ok := itemDefs[kind]
	return ok
}

func IsTool(kind string) bool {
	return itemDefs[kind].Tool
}

func IsPlaceable(kind string) bool {
	return itemDefs[kind].Placeable
}

func IsEdible(kind string) bool {
	return itemDefs[kind].RestoresHunger > 0
}

func HungerRestore(kind string) float64 {
	return itemDefs[kind].RestoresHunger
}

// IsGear reports whether an item belongs on the hotbar: tools and placeable
// structures, as opposed to raw resources.
func IsGear(kind string) bool {
	def := itemDefs[kind]
	return def.Tool || def.Placeable
}
