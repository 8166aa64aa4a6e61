package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/floorfield/evacsim/internal/environment"
	"github.com/floorfield/evacsim/internal/gridkit"
)

// TimestepFrame is a single rendered snapshot of one environment's grids
// at one timestep: walls, exits (open or fire-blocked), and occupied
// cells — the "per-timestep grid visualizations" output mode.
type TimestepFrame struct {
	Timestep int
	Rows     []string
}

// NewTimestepFrame renders env's current obstacle/exits/pedestrian grids
// at the given timestep. Cell precedence, highest first: an occupied
// cell always renders '@' regardless of what lies beneath it; then a
// fire-blocked exit 'X'; then an open exit 'E'; then a wall '#'; else '.'.
// Complexity: O(L×C).
func NewTimestepFrame(timestep int, env *environment.Environment) *TimestepFrame {
	rows := make([]string, env.Lines)
	for lin := 0; lin < env.Lines; lin++ {
		var b strings.Builder
		b.Grow(env.Columns)
		for col := 0; col < env.Columns; col++ {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			switch {
			case env.Occupied(c):
				b.WriteByte('@')
			case env.ExitsOnly.At(c) == gridkit.BlockedExitCell:
				b.WriteByte('X')
			case env.ExitsOnly.At(c) == gridkit.ExitCell:
				b.WriteByte('E')
			case env.Obstacle.At(c) == gridkit.Impassable:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		rows[lin] = b.String()
	}
	return &TimestepFrame{Timestep: timestep, Rows: rows}
}

// String renders the frame as a header line followed by one line per
// grid row.
func (f *TimestepFrame) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "t=%d\n", f.Timestep)
	for _, row := range f.Rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the frame's String() to w.
func (f *TimestepFrame) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	return int64(n), err
}
