package gridkit

// FloatGrid is a dense, row-major L×C grid of real values, used for every
// floor field (static, dynamic, fire) and fire-distance grid.
type FloatGrid struct {
	Dims
	cells [][]float64
}

// NewFloatGrid allocates an L×C grid of zeros.
// Returns ErrBadDimensions if lines or columns is non-positive.
// Complexity: O(L×C).
func NewFloatGrid(lines, columns int) (*FloatGrid, error) {
	if lines <= 0 || columns <= 0 {
		return nil, ErrBadDimensions
	}
	cells := make([][]float64, lines)
	for i := range cells {
		cells[i] = make([]float64, columns)
	}
	return &FloatGrid{Dims: Dims{Lines: lines, Columns: columns}, cells: cells}, nil
}

// At returns the value stored at c. Callers must ensure c is in bounds.
func (g *FloatGrid) At(c Coordinate) float64 {
	return g.cells[c.Lin][c.Col]
}

// Set stores v at c. Callers must ensure c is in bounds.
func (g *FloatGrid) Set(c Coordinate, v float64) {
	g.cells[c.Lin][c.Col] = v
}

// Fill sets every cell to v.
// Complexity: O(L×C).
func (g *FloatGrid) Fill(v float64) {
	for i := range g.cells {
		row := g.cells[i]
		for j := range row {
			row[j] = v
		}
	}
}

// Clone returns a deep copy of g.
// Complexity: O(L×C).
func (g *FloatGrid) Clone() *FloatGrid {
	out, _ := NewFloatGrid(g.Lines, g.Columns)
	out.CopyFrom(g)
	return out
}

// CopyFrom overwrites g's cells with src's. Returns ErrDimensionMismatch on
// dimension mismatch.
// Complexity: O(L×C).
func (g *FloatGrid) CopyFrom(src *FloatGrid) error {
	if g.Lines != src.Lines || g.Columns != src.Columns {
		return ErrDimensionMismatch
	}
	for i := range g.cells {
		copy(g.cells[i], src.cells[i])
	}
	return nil
}

// Sum returns the sum of every cell.
// Complexity: O(L×C).
func (g *FloatGrid) Sum() float64 {
	var total float64
	for _, row := range g.cells {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Normalize divides every cell by the grid's sum, when the sum is non-zero.
// A zero sum leaves the grid untouched (the documented "dead
// if(!normalization_value == 0)" bug is resolved here as an explicit,
// correct != 0 check — see DESIGN.md Open Question Decisions).
// Complexity: O(L×C).
func (g *FloatGrid) Normalize() {
	total := g.Sum()
	if total != 0 {
		inv := 1.0 / total
		for i := range g.cells {
			row := g.cells[i]
			for j := range row {
				row[j] *= inv
			}
		}
	}
}
