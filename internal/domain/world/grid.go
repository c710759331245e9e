package world

// Grid owns the 2D tile array, row-major.
type Grid struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Tiles  []Tile `json:"tiles"`
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  make([]Tile, width*height),
	}
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func (g *Grid) At(x, y int) (Tile, bool) {
	if !g.InBounds(x, y) {
		return Tile{}, false
	}
	return g.Tiles[y*g.Width+x], true
}

func (g *Grid) SetKind(x, y int, k Kind) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.Tiles[y*g.Width+x].Kind = k
	return true
}

// SetContent writes a tile's occupant. Structures are refused on deep water.
func (g *Grid) SetContent(x, y int, c Content) bool {
	if !g.InBounds(x, y) {
		return false
	}
	idx := y*g.Width + x
	if c.Type == ContentStructure && g.Tiles[idx].Kind == DeepWater {
		return false
	}
	g.Tiles[idx].Content = c
	return true
}

// Solid reports whether a tile blocks movement. Out-of-bounds counts as
// solid, as does deep water and any occupied tile.
func (g *Grid) Solid(x, y int) bool {
	t, ok := g.At(x, y)
	if !ok {
		return true
	}
	if t.Kind == DeepWater {
		return true
	}
	return !t.Content.IsEmpty()
}

// Neighbors returns the in-bounds cardinal neighbors of a tile.
func (g *Grid) Neighbors(x, y int) []Point {
	out := make([]Point, 0, 4)
	for _, p := range [4]Point{{x, y - 1}, {x, y + 1}, {x - 1, y}, {x + 1, y}} {
		if g.InBounds(p.X, p.Y) {
			out = append(out, p)
		}
	}
	return out
}

func (g *Grid) Each(fn func(x, y int, t Tile)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			fn(x, y, g.Tiles[y*g.Width+x])
		}
	}
}
