package staticfield

import (
	"math"

	"github.com/floorfield/evacsim/internal/gridkit"
)

// Zheng computes the global distance-based static field: for every cell,
// the Euclidean distance to the nearest open (non fire-blocked) exit
// cell, transformed as v = 1/(d+1) and normalized so the field sums to 1.
// Impassable, fire, and blocked-exit cells receive 0 — the pedestrian
// model never consults the static field at those cells (they are filtered
// out earlier in the transition-probability stencil), so their value is
// inert by construction, not a special case here.
// Returns ErrNoOpenExits if no open exit cell exists.
// Complexity: O(L×C×E), E = number of open exit cells.
func Zheng(obstacle, exitsOnly *gridkit.KindGrid, fireActive *gridkit.KindGrid) (*gridkit.FloatGrid, error) {
	lines, columns := obstacle.Lines, obstacle.Columns

	var openExits []gridkit.Coordinate
	for lin := 0; lin < lines; lin++ {
		for col := 0; col < columns; col++ {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			if exitsOnly.At(c) == gridkit.ExitCell {
				openExits = append(openExits, c)
			}
		}
	}
	if len(openExits) == 0 {
		return nil, ErrNoOpenExits
	}

	field, err := gridkit.NewFloatGrid(lines, columns)
	if err != nil {
		return nil, err
	}

	for lin := 0; lin < lines; lin++ {
		for col := 0; col < columns; col++ {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			if blockedForZheng(obstacle, exitsOnly, fireActive, c) {
				continue
			}
			best := math.Inf(1)
			for _, ec := range openExits {
				dLin := float64(c.Lin - ec.Lin)
				dCol := float64(c.Col - ec.Col)
				d := math.Sqrt(dLin*dLin + dCol*dCol)
				if d < best {
					best = d
				}
			}
			field.Set(c, 1.0/(best+1.0))
		}
	}
	field.Normalize()
	return field, nil
}

func blockedForZheng(obstacle, exitsOnly *gridkit.KindGrid, fireActive *gridkit.KindGrid, c gridkit.Coordinate) bool {
	if obstacle.At(c) == gridkit.Impassable && exitsOnly.At(c) == gridkit.Empty {
		return true
	}
	if fireActive != nil && fireActive.At(c) == gridkit.FireCell {
		return true
	}
	if exitsOnly.At(c) == gridkit.BlockedExitCell {
		return true
	}
	return false
}
