package gridkit

// Passable reports whether c is walkable: in bounds, and either not
// Impassable in obstacle, or marked ExitCell in exitsOnly — exit cells
// are Impassable in the obstacle grid by construction but remain
// passable as movement terminals until fire turns them into
// BlockedExitCell, which is not passable. Shared by environment, fire and staticfield so the
// "obstacle vs. exit" rule is defined exactly once.
// Complexity: O(1).
func Passable(obstacle, exitsOnly *KindGrid, c Coordinate) bool {
	if !obstacle.InBounds(c) {
		return false
	}
	if obstacle.At(c) != Impassable {
		return true
	}
	return exitsOnly.At(c) == ExitCell
}
