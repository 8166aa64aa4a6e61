package geom

import "github.com/floorfield/evacsim/internal/gridkit"

// LineOfSight walks a Bresenham line from a to b (exclusive of a, inclusive
// of b) and reports whether every intermediate cell is unobstructed
// according to blocked. Used by the pedestrian model to decide whether an
// exit's fire-occlusion forces it to fall back to a per-pedestrian static
// field computed only over visible exits.
//
// Complexity: O(max(|ΔLin|, |ΔCol|)).
func LineOfSight(a, b gridkit.Coordinate, blocked func(gridkit.Coordinate) bool) bool {
	x0, y0 := a.Col, a.Lin
	x1, y1 := b.Col, b.Lin

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := sign(x1 - x0)
	sy := sign(y1 - y0)
	err := dx + dy

	x, y := x0, y0
	for {
		if x == x1 && y == y1 {
			return true
		}
		e2 := 2 * err
		nx, ny := x, y
		if e2 >= dy {
			err += dy
			nx += sx
		}
		if e2 <= dx {
			err += dx
			ny += sy
		}
		x, y = nx, ny

		cell := gridkit.Coordinate{Lin: y, Col: x}
		if cell == (gridkit.Coordinate{Lin: y1, Col: x1}) {
			return true
		}
		if blocked(cell) {
			return false
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
