package report

import (
	"fmt"
	"io"
)

// RunSummary is the "single integer count of timesteps per run" output
// mode, one per completed (or abandoned) run.
type RunSummary struct {
	SimulationSet int
	Run           int

	// Timesteps is the number of timesteps the run took to reach
	// termination. Meaningless when Accessible is false.
	Timesteps int

	// Accessible is false for a simulation set where no exit was
	// reachable (internal/simulation.ErrNoAccessibleExit); the run never
	// started and Timesteps holds the placeholder value instead.
	Accessible bool
}

// NewPlaceholderSummary builds the placeholder RunSummary required for
// an inaccessible-exit simulation set: same shape as a real result,
// Accessible false, Timesteps set to the given placeholder width.
func NewPlaceholderSummary(simulationSet, run, placeholder int) RunSummary {
	return RunSummary{SimulationSet: simulationSet, Run: run, Timesteps: placeholder, Accessible: false}
}

// String renders one summary line.
func (s RunSummary) String() string {
	if !s.Accessible {
		return fmt.Sprintf("set=%d run=%d timesteps=%d (inaccessible)\n", s.SimulationSet, s.Run, s.Timesteps)
	}
	return fmt.Sprintf("set=%d run=%d timesteps=%d\n", s.SimulationSet, s.Run, s.Timesteps)
}

// WriteTo writes s's String() to w.
func (s RunSummary) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
