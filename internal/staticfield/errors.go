package staticfield

import "errors"

// ErrInaccessible indicates an exit has no passable axial neighbor on any
// of its cells, so Varas relaxation was not performed.
var ErrInaccessible = errors.New("staticfield: exit is inaccessible, no axial neighbor is passable")

// ErrNoOpenExits indicates every exit is fire-blocked, so the Zheng field
// cannot be computed (no target for distance computation).
var ErrNoOpenExits = errors.New("staticfield: no open (non fire-blocked) exit cells remain")
