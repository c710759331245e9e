package world

import "math/rand"

// TideBands are cumulative upper bounds over one uniform sample in [0,1):
// r < Driftwood spawns driftwood, r < Metal spawns metal, r < Crate spawns a
// crate, the remainder spawns nothing. The bands partition [0,1) with no
// gaps and no overlaps.
type TideBands struct {
	Driftwood float64 `json:"driftwood" yaml:"driftwood"`
	Metal     float64 `json:"metal" yaml:"metal"`
	Crate     float64 `json:"crate" yaml:"crate"`
}

func DefaultTideBands() TideBands {
	return TideBands{Driftwood: 0.06, Metal: 0.08, Crate: 0.085}
}

func (b TideBands) valid() bool {
	return b.Driftwood >= 0 && b.Driftwood <= b.Metal && b.Metal <= b.Crate && b.Crate <= 1
}

// Classify maps one sample to a spawned item kind, or "" for no spawn.
func (b TideBands) Classify(r float64) string {
	switch {
	case r < b.Driftwood:
		return "driftwood"
	case r < b.Metal:
		return "metal"
	case r < b.Crate:
		return "crate"
	default:
		return ""
	}
}

type TideSpawn struct {
	Pos  Point  `json:"pos"`
	Item string `json:"item"`
}

// TideSweep runs once per day rollover. Only empty sand tiles not under the
// player are eligible; occupied tiles are never touched, so a sweep cannot
// double-spawn.
func TideSweep(g *Grid, playerTile Point, bands TideBands, rng *rand.Rand) []TideSpawn {
	if !bands.valid() {
		bands = DefaultTideBands()
	}
	var spawns []TideSpawn
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			t := g.Tiles[y*g.Width+x]
			if t.Kind != Sand || !t.Content.IsEmpty() {
				continue
			}
			if x == playerTile.X && y == playerTile.Y {
				continue
			}
			item := bands.Classify(rng.Float64())
			if item == "" {
				continue
			}
			g.Tiles[y*g.Width+x].Content = ItemContent(item)
			spawns = append(spawns, TideSpawn{Pos: Point{X: x, Y: y}, Item: item})
		}
	}
	return spawns
}
