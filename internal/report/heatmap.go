package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/floorfield/evacsim/internal/gridkit"
)

// ErrNoRuns indicates a Heatmap was requested over zero runs.
var ErrNoRuns = errors.New("report: heatmap requires at least one run")

// Heatmap is the "heatmap of mean visits per cell over all runs" output
// mode: the visit grid accumulated over every run, divided by the number
// of runs it was accumulated over.
type Heatmap struct {
	Lines, Columns int
	Mean           *gridkit.FloatGrid
}

// NewHeatmap divides total's cumulative per-cell visit counts by runs.
// Complexity: O(L×C).
func NewHeatmap(total *gridkit.IntGrid, runs int) (*Heatmap, error) {
	if runs <= 0 {
		return nil, ErrNoRuns
	}
	mean, err := gridkit.NewFloatGrid(total.Lines, total.Columns)
	if err != nil {
		return nil, err
	}
	inv := 1.0 / float64(runs)
	for lin := 0; lin < total.Lines; lin++ {
		for col := 0; col < total.Columns; col++ {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			mean.Set(c, float64(total.At(c))*inv)
		}
	}
	return &Heatmap{Lines: total.Lines, Columns: total.Columns, Mean: mean}, nil
}

// String renders the mean-visit grid as whitespace-separated rows.
func (h *Heatmap) String() string {
	var b strings.Builder
	for lin := 0; lin < h.Lines; lin++ {
		for col := 0; col < h.Columns; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%.4f", h.Mean.At(gridkit.Coordinate{Lin: lin, Col: col}))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes h's String() to w.
func (h *Heatmap) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, h.String())
	return int64(n), err
}
