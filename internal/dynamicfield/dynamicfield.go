package dynamicfield

import "github.com/floorfield/evacsim/internal/gridkit"

// Field holds the dynamic (trail) floor field as a scalar density grid,
// restarted to zero at the start of each run.
type Field struct {
	gridkit.Dims
	curr *gridkit.FloatGrid
	next *gridkit.FloatGrid
}

// New allocates a Field at the given dimensions, zeroed.
func New(lines, columns int) (*Field, error) {
	curr, err := gridkit.NewFloatGrid(lines, columns)
	if err != nil {
		return nil, err
	}
	next, err := gridkit.NewFloatGrid(lines, columns)
	if err != nil {
		return nil, err
	}
	return &Field{Dims: gridkit.Dims{Lines: lines, Columns: columns}, curr: curr, next: next}, nil
}

// At returns the current density at c.
func (f *Field) At(c gridkit.Coordinate) float64 { return f.curr.At(c) }

// Deposit adds one unit of density at c, modeling one pedestrian's trace.
func (f *Field) Deposit(c gridkit.Coordinate) {
	f.curr.Set(c, f.curr.At(c)+1)
}

// Reset zeroes the field, used at the start of each simulation run.
func (f *Field) Reset() {
	f.curr.Fill(0)
}

var axial = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Relax applies one decay+diffusion sweep:
//
//	next[i][j] = (1-α)(1-δ)·curr[i][j] + α·((1-δ)/4)·Σ_axial curr[n]
//
// restricted to cells that are neither impassable (unless an exit cell)
// nor on fire; a blocked neighbor contributes zero to the sum rather than
// being excluded from the 1/4 weighting, keeping the four-term average
// fixed regardless of how many neighbors are actually open. After the
// sweep next is normalized (sum to 1, when non-zero) and copied back
// into curr.
// Complexity: O(L×C).
func (f *Field) Relax(obstacle, exitsOnly *gridkit.KindGrid, fireActive *gridkit.KindGrid, alpha, delta float64) {
	lines, columns := f.Lines, f.Columns
	stay := (1 - alpha) * (1 - delta)
	spread := alpha * (1 - delta) / 4

	for lin := 0; lin < lines; lin++ {
		for col := 0; col < columns; col++ {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			if !relaxable(obstacle, exitsOnly, fireActive, c) {
				f.next.Set(c, 0)
				continue
			}
			var neighborSum float64
			for _, d := range axial {
				n := gridkit.Coordinate{Lin: lin + d[0], Col: col + d[1]}
				if !obstacle.InBounds(n) || !relaxable(obstacle, exitsOnly, fireActive, n) {
					continue
				}
				neighborSum += f.curr.At(n)
			}
			v := stay*f.curr.At(c) + spread*neighborSum
			f.next.Set(c, v)
		}
	}

	f.next.Normalize()
	f.curr.CopyFrom(f.next)
}

func relaxable(obstacle, exitsOnly *gridkit.KindGrid, fireActive *gridkit.KindGrid, c gridkit.Coordinate) bool {
	if fireActive != nil && fireActive.At(c) == gridkit.FireCell {
		return false
	}
	return gridkit.Passable(obstacle, exitsOnly, c)
}
