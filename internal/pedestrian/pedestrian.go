package pedestrian

import "github.com/floorfield/evacsim/internal/gridkit"

// State is a pedestrian's position in its lifecycle.
type State int

const (
	Moving State = iota
	Stopped
	Leaving
	GotOut
	Dead
)

func (s State) String() string {
	switch s {
	case Moving:
		return "MOVING"
	case Stopped:
		return "STOPPED"
	case Leaving:
		return "LEAVING"
	case GotOut:
		return "GOT_OUT"
	case Dead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}

// Pedestrian is one agent: its id, lifecycle state, the three coordinates
// it tracks, and its most recently computed transition-probability
// stencil.
type Pedestrian struct {
	// ID is the pedestrian's stable 1-based id; its index into the owning
	// set is ID-1.
	ID int

	State State

	Origin, Previous, Current, Target gridkit.Coordinate

	// Probabilities is the 3×3 stencil, indexed [di+1][dj+1]; diagonal
	// entries are always zero (movement is Von Neumann).
	Probabilities [3][3]float64
}

// New constructs a Pedestrian at origin, in state Moving.
func New(id int, origin gridkit.Coordinate) *Pedestrian {
	return &Pedestrian{
		ID:       id,
		State:    Moving,
		Origin:   origin,
		Previous: origin,
		Current:  origin,
		Target:   origin,
	}
}

// IsLive reports whether the pedestrian is in a non-terminal state.
func (p *Pedestrian) IsLive() bool {
	return p.State != GotOut && p.State != Dead
}

// ResetToOrigin returns the pedestrian to its origin in state Moving,
// clearing its stencil, for reuse between runs of the same simulation set
// (static-pedestrian configurations).
func (p *Pedestrian) ResetToOrigin() {
	p.State = Moving
	p.Previous = p.Origin
	p.Current = p.Origin
	p.Target = p.Origin
	p.Probabilities = [3][3]float64{}
}

// ResetForNextTimestep returns a Stopped pedestrian to Moving at the start
// of the next timestep; every other state is left untouched.
func (p *Pedestrian) ResetForNextTimestep() {
	if p.State == Stopped {
		p.State = Moving
	}
}

// AdvanceDwell transitions a Leaving pedestrian to GotOut, modeling the
// one-step dwell at the exit cell before departure.
func (p *Pedestrian) AdvanceDwell() {
	if p.State == Leaving {
		p.State = GotOut
	}
}

// MarkDeadIfOnFire transitions the pedestrian to Dead if its current cell
// is on fire and it is not already in a terminal state.
func (p *Pedestrian) MarkDeadIfOnFire(fireActive *gridkit.KindGrid) {
	if !p.IsLive() {
		return
	}
	if fireActive != nil && fireActive.At(p.Current) == gridkit.FireCell {
		p.State = Dead
	}
}

// CommitMove applies a resolved, un-denied move: previous := current;
// current := target. If the target is an (open) exit cell the pedestrian
// transitions to Leaving, or directly to GotOut when immediateExit is
// set.
func (p *Pedestrian) CommitMove(target gridkit.Coordinate, exitsOnly *gridkit.KindGrid, immediateExit bool) {
	p.Previous = p.Current
	p.Current = target
	if exitsOnly.At(target) == gridkit.ExitCell {
		if immediateExit {
			p.State = GotOut
		} else {
			p.State = Leaving
		}
	}
}
