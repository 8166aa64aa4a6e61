package fire

import (
	"math"

	"github.com/floorfield/evacsim/internal/gridkit"
)

// moore lists the eight neighbor offsets used by propagation, distance and
// risk scans.
var moore = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// axial lists the four neighbor offsets used by the wall-adjacency test in
// risk classification.
var axial = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Fire owns the active/initial fire grids and every field derived from
// them: distance-to-fire, risk classification, and the fire floor field.
type Fire struct {
	gridkit.Dims

	// Active is the live fire grid, kind ∈ {Empty, FireCell}.
	Active *gridkit.KindGrid
	// Initial is a snapshot of the fire layout at simulation-set setup,
	// used to reset between runs.
	Initial *gridkit.KindGrid
	// Distance holds the Euclidean distance to the nearest fire cell; 0
	// inside fire.
	Distance *gridkit.FloatGrid
	// Risk classifies every cell's proximity to fire.
	Risk *gridkit.RiskGrid
	// FloorField is the normalized fire-avoidance attraction field.
	FloorField *gridkit.FloatGrid

	// Present reports whether any fire cell has ever been seeded.
	Present bool
}

// New allocates an L×C fire subsystem with no fire present.
// Complexity: O(L×C).
func New(lines, columns int) (*Fire, error) {
	active, err := gridkit.NewKindGrid(lines, columns)
	if err != nil {
		return nil, err
	}
	initial, err := gridkit.NewKindGrid(lines, columns)
	if err != nil {
		return nil, err
	}
	distance, err := gridkit.NewFloatGrid(lines, columns)
	if err != nil {
		return nil, err
	}
	risk, err := gridkit.NewRiskGrid(lines, columns)
	if err != nil {
		return nil, err
	}
	field, err := gridkit.NewFloatGrid(lines, columns)
	if err != nil {
		return nil, err
	}
	return &Fire{
		Dims:       gridkit.Dims{Lines: lines, Columns: columns},
		Active:     active,
		Initial:    initial,
		Distance:   distance,
		Risk:       risk,
		FloorField: field,
	}, nil
}

// Seed marks cells as the initial fire layout, snapshots it into Initial,
// and sets Present. Cells already marked ExitCell by the caller's
// exits-only grid must be filtered out before calling Seed — fire never
// consumes exit cells.
// Complexity: O(len(cells) + L×C) for the Initial snapshot.
func (f *Fire) Seed(cells []gridkit.Coordinate) {
	for _, c := range cells {
		if f.InBounds(c) {
			f.Active.Set(c, gridkit.FireCell)
		}
	}
	f.Initial.CopyFrom(f.Active)
	f.Present = f.Active.Count(gridkit.FireCell) > 0
}

// Reset restores Active to the Initial snapshot, for reuse between runs
// within the same simulation set.
// Complexity: O(L×C).
func (f *Fire) Reset() {
	f.Active.CopyFrom(f.Initial)
}

// SpreadInterval derives the fire-spread interval in timesteps from the
// model's physical constants.
// Complexity: O(1).
func SpreadInterval(cellLength, spreadRate, timestepTime float64) int {
	if spreadRate <= 0 || timestepTime <= 0 {
		return 1
	}
	interval := int(cellLength / spreadRate / timestepTime)
	if interval < 1 {
		interval = 1
	}
	return interval
}

// Propagate computes a fresh fire grid: every current fire cell remains
// fire, and every 8-neighbor that is not Impassable catches, except exit
// cells, which are never consumed. The new grid replaces Active
// (two-buffer ping-pong internally).
// Complexity: O(L×C).
func (f *Fire) Propagate(obstacle *gridkit.KindGrid, exitsOnly *gridkit.KindGrid) {
	next, _ := gridkit.NewKindGrid(f.Lines, f.Columns)
	for lin := 0; lin < f.Lines; lin++ {
		for col := 0; col < f.Columns; col++ {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			if f.Active.At(c) == gridkit.FireCell {
				next.Set(c, gridkit.FireCell)
			}
		}
	}
	for lin := 0; lin < f.Lines; lin++ {
		for col := 0; col < f.Columns; col++ {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			if f.Active.At(c) != gridkit.FireCell {
				continue
			}
			for _, d := range moore {
				n := gridkit.Coordinate{Lin: lin + d[0], Col: col + d[1]}
				if !f.InBounds(n) {
					continue
				}
				if obstacle.At(n) == gridkit.Impassable {
					continue
				}
				if exitsOnly.At(n) == gridkit.ExitCell || exitsOnly.At(n) == gridkit.BlockedExitCell {
					continue
				}
				next.Set(n, gridkit.FireCell)
			}
		}
	}
	f.Active = next
	f.Present = f.Active.Count(gridkit.FireCell) > 0
}

// RecomputeDistance fills Distance with the Euclidean distance from every
// cell to the nearest fire cell (0 for fire cells themselves), via a
// direct O(L×C×F) scan; correctness, not constant factors, is this
// kernel's contract.
// Complexity: O(L×C×F), F = number of fire cells.
func (f *Fire) RecomputeDistance() {
	var fireCells []gridkit.Coordinate
	for lin := 0; lin < f.Lines; lin++ {
		for col := 0; col < f.Columns; col++ {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			if f.Active.At(c) == gridkit.FireCell {
				fireCells = append(fireCells, c)
			}
		}
	}
	for lin := 0; lin < f.Lines; lin++ {
		for col := 0; col < f.Columns; col++ {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			if f.Active.At(c) == gridkit.FireCell {
				f.Distance.Set(c, 0)
				continue
			}
			best := math.Inf(1)
			for _, fc := range fireCells {
				dLin := float64(c.Lin - fc.Lin)
				dCol := float64(c.Col - fc.Col)
				d := math.Sqrt(dLin*dLin + dCol*dCol)
				if d < best {
					best = d
				}
			}
			if math.IsInf(best, 1) {
				best = math.MaxFloat64
			}
			f.Distance.Set(c, best)
		}
	}
}

// RecomputeRisk classifies every non-fire, non-obstacle cell: Danger if
// its fire distance is below 1.5 and it is not adjacent to an Impassable
// cell; Risky if its fire distance is below 1.5 and it IS adjacent to an
// Impassable cell (a wall-hugging cell is downgraded from Danger to
// Risky — a pedestrian may still pass it, just at a penalty); NonRisky
// otherwise.
// Complexity: O(L×C).
func (f *Fire) RecomputeRisk(obstacle *gridkit.KindGrid) {
	const dangerThreshold = 1.5
	for lin := 0; lin < f.Lines; lin++ {
		for col := 0; col < f.Columns; col++ {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			if f.Active.At(c) == gridkit.FireCell || obstacle.At(c) == gridkit.Impassable {
				f.Risk.Set(c, gridkit.NonRisky)
				continue
			}
			if f.Distance.At(c) >= dangerThreshold {
				f.Risk.Set(c, gridkit.NonRisky)
				continue
			}
			if adjacentToWall(obstacle, c) {
				f.Risk.Set(c, gridkit.Risky)
			} else {
				f.Risk.Set(c, gridkit.Danger)
			}
		}
	}
}

func adjacentToWall(obstacle *gridkit.KindGrid, c gridkit.Coordinate) bool {
	for _, d := range axial {
		n := gridkit.Coordinate{Lin: c.Lin + d[0], Col: c.Col + d[1]}
		if !obstacle.InBounds(n) {
			continue
		}
		if obstacle.At(n) == gridkit.Impassable {
			return true
		}
	}
	return false
}

// RecomputeFloorField sets FloorField[i][j] = 1/Distance[i][j] for every
// cell within fireGamma of fire and not itself fire/obstacle, then
// normalizes by the sum (a zero sum, meaning no fire present, leaves the
// field zero rather than dividing by zero).
// Complexity: O(L×C).
func (f *Fire) RecomputeFloorField(fireGamma float64, obstacle *gridkit.KindGrid) {
	f.FloorField.Fill(0)
	if !f.Present {
		return
	}
	for lin := 0; lin < f.Lines; lin++ {
		for col := 0; col < f.Columns; col++ {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			if f.Active.At(c) == gridkit.FireCell || obstacle.At(c) == gridkit.Impassable {
				continue
			}
			d := f.Distance.At(c)
			if d <= fireGamma && d > 0 {
				f.FloorField.Set(c, 1.0/d)
			}
		}
	}
	f.FloorField.Normalize()
}
