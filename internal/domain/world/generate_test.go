package world

import (
	"math/rand"
	"testing"
)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := GenConfig{Width: 32, Height: 32, TreeDensity: 0.1}
	a := Generate(cfg, rand.New(rand.NewSource(9)))
	b := Generate(cfg, rand.New(rand.NewSource(9)))

	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] {
			t.Fatalf("tile %d differs between same-seed islands: %+v vs %+v", i, a.Tiles[i], b.Tiles[i])
		}
	}
}

func TestGenerate_IslandShape(t *testing.T) {
	g := Generate(GenConfig{Width: 64, Height: 64, TreeDensity: 0.1}, rand.New(rand.NewSource(1)))

	if tile, _ := g.At(0, 0); tile.Kind != DeepWater {
		t.Fatalf("corner kind=%v want deep water", tile.Kind)
	}
	if tile, _ := g.At(32, 32); tile.Kind != Grass {
		t.Fatalf("center kind=%v want grass", tile.Kind)
	}

	trees := 0
	g.Each(func(x, y int, tile Tile) {
		if tile.Content.Item == "tree" {
			trees++
		}
	})
	if trees == 0 {
		t.Fatal("island generated without trees")
	}
}

func TestSpawnPoint_Walkable(t *testing.T) {
	g := Generate(GenConfig{Width: 48, Height: 48, TreeDensity: 0.5}, rand.New(rand.NewSource(3)))
	p := g.SpawnPoint()
	if g.Solid(p.X, p.Y) {
		t.Fatalf("spawn %+v is solid", p)
	}
}

func TestGenerate_BadConfigFallsBack(t *testing.T) {
	g := Generate(GenConfig{Width: -1, Height: 0, TreeDensity: 2}, rand.New(rand.NewSource(1)))
	if g.Width != 64 || g.Height != 64 {
		t.Fatalf("dims=%dx%d want 64x64 defaults", g.Width, g.Height)
	}
}
