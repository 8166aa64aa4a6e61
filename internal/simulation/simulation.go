package simulation

import (
	"errors"
	"math"
	"math/rand"

	"github.com/floorfield/evacsim/internal/config"
	"github.com/floorfield/evacsim/internal/conflict"
	"github.com/floorfield/evacsim/internal/dynamicfield"
	"github.com/floorfield/evacsim/internal/environment"
	"github.com/floorfield/evacsim/internal/exitmodel"
	"github.com/floorfield/evacsim/internal/fire"
	"github.com/floorfield/evacsim/internal/geom"
	"github.com/floorfield/evacsim/internal/gridkit"
	"github.com/floorfield/evacsim/internal/pedestrian"
	"github.com/floorfield/evacsim/internal/staticfield"
)

// ErrNoAccessibleExit indicates no configured exit has a passable
// approach — a semantic-within-set error: non-fatal to the process, but
// this simulation set cannot run.
var ErrNoAccessibleExit = errors.New("simulation: no exit is accessible")

// Simulation owns every grid, the exit and pedestrian sets, and the
// single PRNG stream for one run, rooted at the driver's component-graph
// DAG.
type Simulation struct {
	cfg *config.Config

	env  *environment.Environment
	fire *fire.Fire

	exits       []*exitmodel.Exit
	pedestrians []*pedestrian.Pedestrian

	dynamic      *dynamicfield.Field
	globalStatic *gridkit.FloatGrid

	rng                *rand.Rand
	timestep           int
	fireSpreadInterval int
}

// NewSimulation assembles a Simulation: validates at least one exit is
// accessible, computes the configured static field variant, allocates
// the dynamic field, and seeds the run's single PRNG from seed. Callers
// running more than one run per simulation set must draw a fresh seed
// per run (e.g. from a set-level PRNG) rather than passing cfg.Seed
// unchanged on every call, or every run replays an identical stream.
// Complexity: O(L×C×log(L×C)) dominated by the static field computation.
func NewSimulation(cfg *config.Config, env *environment.Environment, fireSub *fire.Fire, exits []*exitmodel.Exit, pedestrians []*pedestrian.Pedestrian, seed int64) (*Simulation, error) {
	accessible := false
	for _, e := range exits {
		if e.Accessible(env.Obstacle, env.ExitsOnly) {
			accessible = true
			break
		}
	}
	if !accessible {
		return nil, ErrNoAccessibleExit
	}

	dynamic, err := dynamicfield.New(env.Lines, env.Columns)
	if err != nil {
		return nil, err
	}

	interval := 1
	if cfg.FireIsPresent {
		interval = fire.SpreadInterval(1.0, cfg.SpreadRate, 1.0)
	}

	s := &Simulation{
		cfg:                cfg,
		env:                env,
		fire:               fireSub,
		exits:              exits,
		pedestrians:        pedestrians,
		dynamic:            dynamic,
		rng:                geom.NewRNG(seed),
		fireSpreadInterval: interval,
	}

	for _, p := range pedestrians {
		if p.IsLive() {
			env.Pedestrians.Set(p.Current, p.ID)
		}
	}

	if err := s.recomputeGlobalStatic(); err != nil {
		return nil, err
	}
	return s, nil
}

// recomputeGlobalStatic fills s.globalStatic per the configured variant,
// called at construction and again whenever fire newly blocks an exit.
func (s *Simulation) recomputeGlobalStatic() error {
	switch s.cfg.StaticFieldVariant {
	case config.Varas:
		field, err := combineVaras(s.env.Obstacle, s.env.ExitsOnly, s.exits, s.cfg.DiagonalCost, s.cfg.PreventCornerCrossing)
		if err != nil {
			return err
		}
		s.globalStatic = field
	default:
		field, err := staticfield.Zheng(s.env.Obstacle, s.env.ExitsOnly, s.fireActive())
		if err != nil {
			return err
		}
		s.globalStatic = field
	}
	return nil
}

// combineVaras runs the BFS-relaxation variant over every accessible
// exit not blocked by fire and combines the per-exit fields by per-cell minimum distance,
// then applies Zheng's distance→attraction transform and normalization
// so the pedestrian stencil's consumer code stays variant-agnostic. A
// cell never reached by any exit's relaxation (e.g. walled off from all
// exits) is left at zero, exactly as Zheng leaves unreachable cells at
// zero. Returns ErrNoAccessibleExit if no exit is both open and accessible.
func combineVaras(obstacle, exitsOnly *gridkit.KindGrid, exits []*exitmodel.Exit, diagonalCost float64, preventCornerCrossing bool) (*gridkit.FloatGrid, error) {
	lines, columns := obstacle.Lines, obstacle.Columns
	best, err := gridkit.NewFloatGrid(lines, columns)
	if err != nil {
		return nil, err
	}
	best.Fill(math.Inf(1))

	anyAccessible := false
	for _, e := range exits {
		if e.IsBlockedByFire {
			continue
		}
		if err := staticfield.Varas(obstacle, exitsOnly, e, diagonalCost, preventCornerCrossing); err != nil {
			continue
		}
		anyAccessible = true
		for lin := 0; lin < lines; lin++ {
			for col := 0; col < columns; col++ {
				c := gridkit.Coordinate{Lin: lin, Col: col}
				reached := e.Contains(c) || e.PrivateStaticWeight.At(c) > 0
				if !reached {
					continue
				}
				if v := e.PrivateStaticWeight.At(c); v < best.At(c) {
					best.Set(c, v)
				}
			}
		}
	}
	if !anyAccessible {
		return nil, ErrNoAccessibleExit
	}

	field, err := gridkit.NewFloatGrid(lines, columns)
	if err != nil {
		return nil, err
	}
	for lin := 0; lin < lines; lin++ {
		for col := 0; col < columns; col++ {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			d := best.At(c)
			if math.IsInf(d, 1) {
				continue
			}
			field.Set(c, 1.0/(d+1.0))
		}
	}
	field.Normalize()
	return field, nil
}

// fireActive returns the fire subsystem's active grid when fire is
// enabled for this run, or nil otherwise.
func (s *Simulation) fireActive() *gridkit.KindGrid {
	if !s.cfg.FireIsPresent || s.fire == nil {
		return nil
	}
	return s.fire.Active
}

// fireRisk and fireField mirror fireActive for the Risk/FloorField grids
// the pedestrian stencil consults.
func (s *Simulation) fireRisk() *gridkit.RiskGrid {
	if !s.cfg.FireIsPresent || s.fire == nil {
		return nil
	}
	return s.fire.Risk
}

func (s *Simulation) fireField() *gridkit.FloatGrid {
	if !s.cfg.FireIsPresent || s.fire == nil {
		return nil
	}
	return s.fire.FloorField
}

func (s *Simulation) pedestrianEnv() *pedestrian.Environment {
	return &pedestrian.Environment{
		Obstacle:     s.env.Obstacle,
		ExitsOnly:    s.env.ExitsOnly,
		Positions:    s.env.Pedestrians,
		FireActive:   s.fireActive(),
		Risk:         s.fireRisk(),
		FireField:    s.fireField(),
		GlobalStatic: s.globalStatic,
		Dynamic:      s.dynamic,
		Exits:        s.exits,
	}
}

func (s *Simulation) pedestrianParams() pedestrian.Params {
	return pedestrian.Params{
		Ks:                    s.cfg.Ks,
		Kd:                    s.cfg.Kd,
		Kf:                    s.cfg.Kf,
		FireAlpha:             s.cfg.FireAlpha,
		RiskDistance:          s.cfg.RiskDistance,
		Inertia:               s.cfg.Omega,
		Tolerance:             s.cfg.Tolerance,
		IgnoreLatestSelfTrace: s.cfg.IgnoreLatestSelfTrace,
	}
}

func (s *Simulation) byID() map[int]*pedestrian.Pedestrian {
	m := make(map[int]*pedestrian.Pedestrian, len(s.pedestrians))
	for _, p := range s.pedestrians {
		m[p.ID] = p
	}
	return m
}

// Timestep returns the number of completed Step calls.
func (s *Simulation) Timestep() int { return s.timestep }

// Done reports whether every pedestrian has reached a terminal state
// (GotOut or Dead) — the run's termination condition.
func (s *Simulation) Done() bool {
	for _, p := range s.pedestrians {
		if p.IsLive() {
			return false
		}
	}
	return true
}

// Step runs one full pass of the eight-phase movement pipeline.
// Complexity: O(L×C + P) per step, plus O(L×C×log(L×C)) on a fire-spread
// tick that newly blocks an exit (static field recompute).
func (s *Simulation) Step() error {
	s.timestep++

	// 1. Return every pedestrian Stopped on the previous step to Moving.
	for _, p := range s.pedestrians {
		p.ResetForNextTimestep()
	}

	// 2. Mark any pedestrian standing on fire dead.
	fireActive := s.fireActive()
	for _, p := range s.pedestrians {
		p.MarkDeadIfOnFire(fireActive)
	}

	// Dynamic-field deposition, "otherwise" branch (not velocity-density
	// mode): at the start of the timestep, at every living pedestrian's
	// current cell.
	if !s.cfg.VelocityDensityField {
		for _, p := range s.pedestrians {
			if p.IsLive() {
				s.dynamic.Deposit(p.Current)
			}
		}
	}

	// 3. Compute probabilities and draw targets for every Moving
	// pedestrian.
	env := s.pedestrianEnv()
	params := s.pedestrianParams()
	for _, p := range s.pedestrians {
		if p.State != pedestrian.Moving {
			continue
		}
		p.ComputeProbabilities(env, params)
		p.DrawTarget(s.rng, s.cfg.Tolerance)
	}

	// 4. Resolve same-target conflicts, then X-crossings if disallowed.
	byID := s.byID()
	records := conflict.DetectSameTarget(s.pedestrians)
	conflict.ResolveSameTarget(records, s.cfg.Mu, s.rng)
	conflict.Apply(records, byID)
	if !s.cfg.AllowXMovement {
		conflict.DetectAndResolveXCrossings(s.env.Pedestrians, byID, s.cfg.Tolerance, s.rng)
	}

	// 5. Commit.
	for _, p := range s.pedestrians {
		switch p.State {
		case pedestrian.Leaving:
			s.env.Pedestrians.Set(p.Current, 0)
			p.AdvanceDwell()
		case pedestrian.Moving:
			s.env.Pedestrians.Set(p.Current, 0)
			p.CommitMove(p.Target, s.env.ExitsOnly, s.cfg.ImmediateExit)
			if s.cfg.VelocityDensityField {
				s.dynamic.Deposit(p.Previous)
			}
			if p.IsLive() {
				s.env.Pedestrians.Set(p.Current, p.ID)
			}
		}
	}

	// 6. Update the heatmap from live pedestrians' current cells.
	for _, p := range s.pedestrians {
		if p.IsLive() {
			s.env.RecordVisit(p.Current)
		}
	}

	// 7. Dynamic-field decay+diffusion.
	s.dynamic.Relax(s.env.Obstacle, s.env.ExitsOnly, fireActive, s.cfg.Alpha, s.cfg.Delta)

	// 8. Periodic fire propagation and exit-blocking recompute.
	if s.cfg.FireIsPresent && s.fire != nil && s.fireSpreadInterval > 0 && s.timestep%s.fireSpreadInterval == 0 {
		s.fire.Propagate(s.env.Obstacle, s.env.ExitsOnly)
		s.fire.RecomputeDistance()
		s.fire.RecomputeRisk(s.env.Obstacle)
		s.fire.RecomputeFloorField(s.cfg.FireGamma, s.env.Obstacle)
		if fire.ApplyBlocked(s.fire, s.env.Obstacle, s.env.ExitsOnly, s.exits) {
			if err := s.recomputeGlobalStatic(); err != nil {
				return err
			}
		}
	}

	return nil
}
