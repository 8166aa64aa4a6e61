package fire

import (
	"github.com/floorfield/evacsim/internal/exitmodel"
	"github.com/floorfield/evacsim/internal/gridkit"
)

// Blocks reports whether every passable 4-adjacent cell of every cell in e
// is fire. An exit with no passable neighbor at all (already inaccessible)
// is reported as not blocked — it has no fire-caused transition to make.
// Complexity: O(width).
func Blocks(f *Fire, obstacle, exitsOnly *gridkit.KindGrid, e *exitmodel.Exit) bool {
	sawPassable := false
	for cellIndex := 0; cellIndex < len(e.Coordinates); cellIndex++ {
		c := e.Coordinates[cellIndex]
		for _, d := range axial {
			n := gridkit.Coordinate{Lin: c.Lin + d[0], Col: c.Col + d[1]}
			if !gridkit.Passable(obstacle, exitsOnly, n) {
				continue
			}
			sawPassable = true
			if f.Active.At(n) != gridkit.FireCell {
				return false
			}
		}
	}
	return sawPassable
}

// ApplyBlocked runs Blocks over every exit not already blocked and, for
// each newly blocked exit, sets IsBlockedByFire and overwrites its cells
// in exitsOnly with BlockedExitCell. Returns true if any exit was newly
// blocked this call, which signals the caller (internal/simulation) to
// recompute the static field over the remaining open exits.
// Complexity: O(total exit width).
func ApplyBlocked(f *Fire, obstacle, exitsOnly *gridkit.KindGrid, exits []*exitmodel.Exit) bool {
	anyNew := false
	for _, e := range exits {
		if e.IsBlockedByFire {
			continue
		}
		if Blocks(f, obstacle, exitsOnly, e) {
			e.IsBlockedByFire = true
			for _, c := range e.Coordinates {
				exitsOnly.Set(c, gridkit.BlockedExitCell)
			}
			anyNew = true
		}
	}
	return anyNew
}
