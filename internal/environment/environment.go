package environment

import (
	"errors"

	"github.com/floorfield/evacsim/internal/gridkit"
)

// ErrBadDimensions indicates a non-positive line or column count was given.
var ErrBadDimensions = errors.New("environment: lines and columns must be positive")

// Environment holds the layout and live-occupancy grids shared by every
// component of one simulation instance.
type Environment struct {
	gridkit.Dims

	// Obstacle kind ∈ {Empty, Impassable}. Cells holding an exit are
	// marked Impassable here too; ExitsOnly is the authoritative view of
	// exit cells.
	Obstacle *gridkit.KindGrid

	// ExitsOnly kind ∈ {Empty, ExitCell, BlockedExitCell}.
	ExitsOnly *gridkit.KindGrid

	// Pedestrians holds 0 (empty) or the 1-based id of the occupying
	// pedestrian.
	Pedestrians *gridkit.IntGrid

	// Heatmap accumulates per-cell visit counts across the run (and,
	// externally, across an ensemble of runs).
	Heatmap *gridkit.IntGrid
}

// New allocates an empty L×C environment: every obstacle/exit cell Empty,
// no pedestrians, zeroed heatmap.
// Complexity: O(L×C).
func New(lines, columns int) (*Environment, error) {
	if lines <= 0 || columns <= 0 {
		return nil, ErrBadDimensions
	}
	obstacle, err := gridkit.NewKindGrid(lines, columns)
	if err != nil {
		return nil, err
	}
	exits, err := gridkit.NewKindGrid(lines, columns)
	if err != nil {
		return nil, err
	}
	peds, err := gridkit.NewIntGrid(lines, columns)
	if err != nil {
		return nil, err
	}
	heatmap, err := gridkit.NewIntGrid(lines, columns)
	if err != nil {
		return nil, err
	}
	return &Environment{
		Dims:        gridkit.Dims{Lines: lines, Columns: columns},
		Obstacle:    obstacle,
		ExitsOnly:   exits,
		Pedestrians: peds,
		Heatmap:     heatmap,
	}, nil
}

// SetWall marks c as an impassable obstacle cell.
func (e *Environment) SetWall(c gridkit.Coordinate) {
	e.Obstacle.Set(c, gridkit.Impassable)
}

// SetExitCell marks c as an exit cell: Impassable in the obstacle grid
// (per the data model, exit cells are obstacle-blocked to generic
// movement) and ExitCell in the exits-only grid.
func (e *Environment) SetExitCell(c gridkit.Coordinate) {
	e.Obstacle.Set(c, gridkit.Impassable)
	e.ExitsOnly.Set(c, gridkit.ExitCell)
}

// Passable reports whether c may be entered by a moving pedestrian: in
// bounds, not Impassable in the obstacle grid unless it is an exit cell
// (exit cells are passable only as movement terminals, which callers
// enforce separately). Occupancy is not checked here; see Occupied.
func (e *Environment) Passable(c gridkit.Coordinate) bool {
	return gridkit.Passable(e.Obstacle, e.ExitsOnly, c)
}

// Occupied reports whether a living pedestrian currently occupies c.
func (e *Environment) Occupied(c gridkit.Coordinate) bool {
	return e.Pedestrians.At(c) != 0
}

// RecordVisit increments the heatmap at c by one.
func (e *Environment) RecordVisit(c gridkit.Coordinate) {
	e.Heatmap.Add(c, 1)
}
