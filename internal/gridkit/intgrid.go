package gridkit

// IntGrid is a dense, row-major L×C grid of integers, used for the
// pedestrian-position grid (0 = empty, else 1-based pedestrian id) and the
// cumulative heatmap grid.
type IntGrid struct {
	Dims
	cells [][]int
}

// NewIntGrid allocates an L×C grid of zeros.
// Returns ErrBadDimensions if lines or columns is non-positive.
// Complexity: O(L×C).
func NewIntGrid(lines, columns int) (*IntGrid, error) {
	if lines <= 0 || columns <= 0 {
		return nil, ErrBadDimensions
	}
	cells := make([][]int, lines)
	for i := range cells {
		cells[i] = make([]int, columns)
	}
	return &IntGrid{Dims: Dims{Lines: lines, Columns: columns}, cells: cells}, nil
}

// At returns the value stored at c. Callers must ensure c is in bounds.
func (g *IntGrid) At(c Coordinate) int {
	return g.cells[c.Lin][c.Col]
}

// Set stores v at c. Callers must ensure c is in bounds.
func (g *IntGrid) Set(c Coordinate, v int) {
	g.cells[c.Lin][c.Col] = v
}

// Add increments the cell at c by delta. Used to accumulate heatmap visits.
func (g *IntGrid) Add(c Coordinate, delta int) {
	g.cells[c.Lin][c.Col] += delta
}

// Fill sets every cell to v.
// Complexity: O(L×C).
func (g *IntGrid) Fill(v int) {
	for i := range g.cells {
		row := g.cells[i]
		for j := range row {
			row[j] = v
		}
	}
}

// Sum returns the sum of every cell.
// Complexity: O(L×C).
func (g *IntGrid) Sum() int {
	total := 0
	for _, row := range g.cells {
		for _, v := range row {
			total += v
		}
	}
	return total
}
