package geom

import (
	"math"

	"github.com/floorfield/evacsim/internal/gridkit"
)

// Distance returns the Euclidean distance between a and b.
// Complexity: O(1).
func Distance(a, b gridkit.Coordinate) float64 {
	dLin := float64(a.Lin - b.Lin)
	dCol := float64(a.Col - b.Col)
	return math.Sqrt(dLin*dLin + dCol*dCol)
}

// Equal reports whether a and b refer to the same cell.
// Complexity: O(1).
func Equal(a, b gridkit.Coordinate) bool {
	return gridkit.Equal(a, b)
}
