package world

import "math"

type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// CameraOffset centers a viewport of viewW x viewH tiles on the player and
// clamps it to map bounds. When the map is smaller than the viewport on an
// axis the camera collapses to centered instead.
func CameraOffset(px, py float64, viewW, viewH, mapW, mapH int) (float64, float64) {
	return cameraAxis(px, viewW, mapW), cameraAxis(py, viewH, mapH)
}

func cameraAxis(center float64, view, span int) float64 {
	if span <= view {
		return float64(span-view) / 2
	}
	off := center - float64(view)/2
	off = math.Max(off, 0)
	off = math.Min(off, float64(span-view))
	return off
}

type WindowTile struct {
	X int `json:"x"`
	Y int `json:"y"`
	Tile
}

// Window returns the tiles of r clipped to the grid, row-major.
func (g *Grid) Window(r Rect) []WindowTile {
	out := make([]WindowTile, 0, r.W*r.H)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			t, ok := g.At(x, y)
			if !ok {
				continue
			}
			out = append(out, WindowTile{X: x, Y: y, Tile: t})
		}
	}
	return out
}

// Darkness is the night overlay intensity: zero at solar noon, growing
// linearly with distance from noon, capped at maxDarkness.
func Darkness(timeOfDay, minutesPerDay int64, maxDarkness float64) float64 {
	if minutesPerDay <= 0 {
		return 0
	}
	noon := float64(minutesPerDay) / 2
	frac := math.Abs(float64(timeOfDay)-noon) / noon
	if frac > maxDarkness {
		return maxDarkness
	}
	return frac
}
