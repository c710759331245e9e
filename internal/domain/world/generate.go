package world

import (
	"math"
	"math/rand"
)

type GenConfig struct {
	Width       int
	Height      int
	TreeDensity float64
}

func DefaultGenConfig() GenConfig {
	return GenConfig{Width: 64, Height: 64, TreeDensity: 0.10}
}

// Generate builds a radial island: deep water rim, shallow ring, sand beach,
// grass interior with scattered trees. All randomness comes from rng, so the
// same seed yields the same island.
func Generate(cfg GenConfig, rng *rand.Rand) *Grid {
	def := DefaultGenConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.TreeDensity < 0 || cfg.TreeDensity >= 1 {
		cfg.TreeDensity = def.TreeDensity
	}

	g := NewGrid(cfg.Width, cfg.Height)
	cx := float64(cfg.Width-1) / 2
	cy := float64(cfg.Height-1) / 2

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			dx := (float64(x) - cx) / cx
			dy := (float64(y) - cy) / cy
			d := math.Sqrt(dx*dx+dy*dy) + (rng.Float64()-0.5)*0.08

			idx := y*cfg.Width + x
			switch {
			case d > 0.96:
				g.Tiles[idx].Kind = DeepWater
			case d > 0.82:
				g.Tiles[idx].Kind = ShallowWater
			case d > 0.64:
				g.Tiles[idx].Kind = Sand
			default:
				g.Tiles[idx].Kind = Grass
			}
			g.Tiles[idx].Variant = uint8(rng.Intn(256))
		}
	}

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			idx := y*cfg.Width + x
			if g.Tiles[idx].Kind == Grass && rng.Float64() < cfg.TreeDensity {
				g.Tiles[idx].Content = ItemContent("tree")
			}
		}
	}

	return g
}

// SpawnPoint picks a walkable grass tile near the island center.
func (g *Grid) SpawnPoint() Point {
	cx, cy := g.Width/2, g.Height/2
	if !g.Solid(cx, cy) {
		return Point{X: cx, Y: cy}
	}
	for radius := 1; radius < g.Width; radius++ {
		for y := cy - radius; y <= cy+radius; y++ {
			for x := cx - radius; x <= cx+radius; x++ {
				if !g.Solid(x, y) {
					return Point{X: x, Y: y}
				}
			}
		}
	}
	return Point{X: cx, Y: cy}
}
