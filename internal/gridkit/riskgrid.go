package gridkit

// RiskGrid is a dense, row-major L×C grid of RiskKind classifications.
type RiskGrid struct {
	Dims
	cells [][]RiskKind
}

// NewRiskGrid allocates an L×C grid filled with NonRisky.
// Returns ErrBadDimensions if lines or columns is non-positive.
func NewRiskGrid(lines, columns int) (*RiskGrid, error) {
	if lines <= 0 || columns <= 0 {
		return nil, ErrBadDimensions
	}
	cells := make([][]RiskKind, lines)
	for i := range cells {
		cells[i] = make([]RiskKind, columns)
	}
	return &RiskGrid{Dims: Dims{Lines: lines, Columns: columns}, cells: cells}, nil
}

// At returns the classification stored at c.
func (g *RiskGrid) At(c Coordinate) RiskKind {
	return g.cells[c.Lin][c.Col]
}

// Set stores v at c.
func (g *RiskGrid) Set(c Coordinate, v RiskKind) {
	g.cells[c.Lin][c.Col] = v
}

// Fill sets every cell to v.
func (g *RiskGrid) Fill(v RiskKind) {
	for i := range g.cells {
		row := g.cells[i]
		for j := range row {
			row[j] = v
		}
	}
}
