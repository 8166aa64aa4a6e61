package exitmodel

import (
	"errors"

	"github.com/floorfield/evacsim/internal/gridkit"
)

// ErrNoCoordinates indicates an exit was constructed with no cells.
var ErrNoCoordinates = errors.New("exitmodel: exit must have at least one coordinate")

// Exit describes one exit: its door width, the ordered cells it occupies,
// whether fire has blocked every passable approach to it, and the two
// private grids it owns exclusively.
type Exit struct {
	// ID is the exit's 0-based index within its simulation's exit set.
	ID int

	// Width is the configured door width (informational; movement is
	// still per-cell).
	Width int

	// Coordinates lists the exit's cells in a stable, caller-provided order.
	Coordinates []gridkit.Coordinate

	// IsBlockedByFire is set once every passable approach to the exit is
	// on fire (internal/fire.Blocks, applied by fire.ApplyBlocked).
	IsBlockedByFire bool

	// PrivateStructure is a per-exit snapshot of the obstacle layout,
	// reused across static-field recalculations rather than reallocated.
	PrivateStructure *gridkit.KindGrid

	// PrivateStaticWeight is the Varas BFS-relaxation field scoped to this
	// exit, reused across recalculations.
	PrivateStaticWeight *gridkit.FloatGrid
}

// New constructs an Exit over coords with the given width and id, and
// allocates its private grids at the given dimensions. Returns
// ErrNoCoordinates if coords is empty.
// Complexity: O(L×C) for the private grid allocation.
func New(id, width int, coords []gridkit.Coordinate, lines, columns int) (*Exit, error) {
	if len(coords) == 0 {
		return nil, ErrNoCoordinates
	}
	structure, err := gridkit.NewKindGrid(lines, columns)
	if err != nil {
		return nil, err
	}
	weight, err := gridkit.NewFloatGrid(lines, columns)
	if err != nil {
		return nil, err
	}
	owned := make([]gridkit.Coordinate, len(coords))
	copy(owned, coords)

	return &Exit{
		ID:                  id,
		Width:               width,
		Coordinates:         owned,
		PrivateStructure:    structure,
		PrivateStaticWeight: weight,
	}, nil
}

// Contains reports whether c is one of the exit's cells.
// Complexity: O(width).
func (e *Exit) Contains(c gridkit.Coordinate) bool {
	for _, ec := range e.Coordinates {
		if gridkit.Equal(ec, c) {
			return true
		}
	}
	return false
}

// Accessible reports whether at least one of the exit's cells has a
// 4-neighbor that is neither Impassable nor another exit cell — the
// axial-only resolution of the accessibility Open Question (see
// DESIGN.md).
// Complexity: O(width).
func (e *Exit) Accessible(obstacle *gridkit.KindGrid, exitsOnly *gridkit.KindGrid) bool {
	offsets := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, c := range e.Coordinates {
		for _, d := range offsets {
			n := gridkit.Coordinate{Lin: c.Lin + d[0], Col: c.Col + d[1]}
			if !obstacle.InBounds(n) {
				continue
			}
			if obstacle.At(n) == gridkit.Impassable {
				continue
			}
			if exitsOnly.At(n) == gridkit.ExitCell || exitsOnly.At(n) == gridkit.BlockedExitCell {
				continue
			}
			return true
		}
	}
	return false
}
