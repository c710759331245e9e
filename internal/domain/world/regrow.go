package world

// RegrowSweep promotes every stump old enough back to a tree and returns the
// regrown positions. A stump cut at minute T regrows exactly when
// totalMinutes >= T + regrowMinutes.
func RegrowSweep(g *Grid, totalMinutes, regrowMinutes int64) []Point {
	var regrown []Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx := y*g.Width + x
			c := g.Tiles[idx].Content
			if c.Type != ContentStump {
				continue
			}
			if totalMinutes-c.ChoppedAt < regrowMinutes {
				continue
			}
			g.Tiles[idx].Content = ItemContent("tree")
			regrown = append(regrown, Point{X: x, Y: y})
		}
	}
	return regrown
}
