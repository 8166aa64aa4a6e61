package gridkit

// KindGrid is a dense, row-major L×C grid of Kind tags.
type KindGrid struct {
	Dims
	cells [][]Kind
}

// NewKindGrid allocates an L×C grid filled with Empty.
// Returns ErrBadDimensions if lines or columns is non-positive.
// Complexity: O(L×C).
func NewKindGrid(lines, columns int) (*KindGrid, error) {
	if lines <= 0 || columns <= 0 {
		return nil, ErrBadDimensions
	}
	cells := make([][]Kind, lines)
	for i := range cells {
		cells[i] = make([]Kind, columns)
	}
	return &KindGrid{Dims: Dims{Lines: lines, Columns: columns}, cells: cells}, nil
}

// At returns the Kind stored at c. Callers must ensure c is in bounds.
func (g *KindGrid) At(c Coordinate) Kind {
	return g.cells[c.Lin][c.Col]
}

// Set stores v at c. Callers must ensure c is in bounds.
func (g *KindGrid) Set(c Coordinate, v Kind) {
	g.cells[c.Lin][c.Col] = v
}

// Fill sets every cell to v.
// Complexity: O(L×C).
func (g *KindGrid) Fill(v Kind) {
	for i := range g.cells {
		row := g.cells[i]
		for j := range row {
			row[j] = v
		}
	}
}

// Clone returns a deep copy of g.
// Complexity: O(L×C).
func (g *KindGrid) Clone() *KindGrid {
	out, _ := NewKindGrid(g.Lines, g.Columns)
	out.CopyFrom(g)
	return out
}

// CopyFrom overwrites g's cells with src's. Returns ErrDimensionMismatch on
// dimension mismatch.
// Complexity: O(L×C).
func (g *KindGrid) CopyFrom(src *KindGrid) error {
	if g.Lines != src.Lines || g.Columns != src.Columns {
		return ErrDimensionMismatch
	}
	for i := range g.cells {
		copy(g.cells[i], src.cells[i])
	}
	return nil
}

// Count returns the number of cells equal to v.
// Complexity: O(L×C).
func (g *KindGrid) Count(v Kind) int {
	n := 0
	for _, row := range g.cells {
		for _, k := range row {
			if k == v {
				n++
			}
		}
	}
	return n
}
