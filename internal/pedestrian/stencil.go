package pedestrian

import (
	"math"
	"math/rand"

	"github.com/floorfield/evacsim/internal/dynamicfield"
	"github.com/floorfield/evacsim/internal/exitmodel"
	"github.com/floorfield/evacsim/internal/geom"
	"github.com/floorfield/evacsim/internal/gridkit"
	"github.com/floorfield/evacsim/internal/staticfield"
)

// Environment bundles the grids and exit set a pedestrian consults while
// building its stencil. Fire-related fields are nil when fire is disabled
// for the run.
type Environment struct {
	Obstacle  *gridkit.KindGrid
	ExitsOnly *gridkit.KindGrid
	Positions *gridkit.IntGrid

	FireActive *gridkit.KindGrid
	Risk       *gridkit.RiskGrid
	FireField  *gridkit.FloatGrid

	GlobalStatic *gridkit.FloatGrid
	Dynamic      *dynamicfield.Field
	Exits        []*exitmodel.Exit
}

// Params carries the sensitivity and bias coefficients from configuration.
type Params struct {
	Ks, Kd, Kf   float64
	FireAlpha    float64
	RiskDistance float64
	Inertia      float64
	Tolerance    float64

	// IgnoreLatestSelfTrace excludes a pedestrian's own just-vacated cell
	// from its dynamic-field read, so it is not drawn back toward the
	// trace it deposited there this run.
	IgnoreLatestSelfTrace bool
}

// candidates lists the five Von Neumann stencil offsets (axial + center);
// diagonal entries are never visited and stay at their zero value.
var candidates = [5][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {0, 0}}

// ComputeProbabilities fills p.Probabilities by combining the static,
// dynamic, and fire fields over the Von Neumann stencil, applies the
// inertia boost, and normalizes. A pedestrian whose raw stencil sums to
// zero is left with an all-zero stencil (it stays in place on the
// subsequent draw).
func (p *Pedestrian) ComputeProbabilities(env *Environment, params Params) {
	p.Probabilities = [3][3]float64{}

	staticField := env.GlobalStatic
	if env.FireActive != nil {
		staticField = chooseStaticField(env, p.Current)
	}

	raw := [3][3]float64{}
	var total float64

	for _, off := range candidates {
		di, dj := off[0], off[1]
		n := gridkit.Coordinate{Lin: p.Current.Lin + di, Col: p.Current.Col + dj}
		ri, rj := di+1, dj+1

		if !blockedCandidate(env, n) {
			dynamicValue := env.Dynamic.At(n)
			if params.IgnoreLatestSelfTrace && n == p.Previous {
				dynamicValue = 0
			}
			w := math.Exp(params.Ks * staticField.At(n))
			w *= math.Exp(params.Kd * dynamicValue)
			if env.FireField != nil {
				w /= math.Exp(params.Kf * fireDivisorAlpha(env, params, n) * env.FireField.At(n))
			}
			if (di != 0 || dj != 0) && env.Positions.At(n) != 0 {
				w = 0
			}
			raw[ri][rj] = w
			total += w
		}
	}

	if p.Previous != p.Current {
		dLin := p.Current.Lin - p.Previous.Lin
		dCol := p.Current.Col - p.Previous.Col
		ri, rj := dLin+1, dCol+1
		before := raw[ri][rj]
		raw[ri][rj] = before * params.Inertia
		total += raw[ri][rj] - before
	}

	if total > 0 {
		for i := range raw {
			for j := range raw[i] {
				raw[i][j] /= total
			}
		}
	}
	p.Probabilities = raw
}

// blockedCandidate reports whether n is disqualified per step 1: out of
// bounds, fire, impassable (and not an exit cell), or classified Danger.
func blockedCandidate(env *Environment, n gridkit.Coordinate) bool {
	if !env.Obstacle.InBounds(n) {
		return true
	}
	if env.FireActive != nil && env.FireActive.At(n) == gridkit.FireCell {
		return true
	}
	if !gridkit.Passable(env.Obstacle, env.ExitsOnly, n) {
		return true
	}
	if env.Risk != nil && env.Risk.At(n) == gridkit.Danger {
		return true
	}
	return false
}

// fireDivisorAlpha returns fireAlpha when n is Non-Risky and within
// riskDistance of some exit, and 1 otherwise (no alpha scaling of the
// fire penalty).
func fireDivisorAlpha(env *Environment, params Params, n gridkit.Coordinate) float64 {
	if env.Risk == nil || env.Risk.At(n) != gridkit.NonRisky {
		return 1
	}
	for _, e := range env.Exits {
		for _, c := range e.Coordinates {
			if geom.Distance(n, c) <= params.RiskDistance {
				return params.FireAlpha
			}
		}
	}
	return 1
}

// chooseStaticField picks the global static field, unless fire occludes
// the line of sight to any non-blocked exit cell, in which case it
// builds and returns an auxiliary field computed over only the visible
// exits.
func chooseStaticField(env *Environment, current gridkit.Coordinate) *gridkit.FloatGrid {
	blocked := func(c gridkit.Coordinate) bool {
		return env.FireActive.InBounds(c) && env.FireActive.At(c) == gridkit.FireCell
	}

	occluded := false
	for _, e := range env.Exits {
		if e.IsBlockedByFire {
			continue
		}
		for _, c := range e.Coordinates {
			if !geom.LineOfSight(current, c, blocked) {
				occluded = true
			}
		}
	}
	if !occluded {
		return env.GlobalStatic
	}

	restricted, err := gridkit.NewKindGrid(env.ExitsOnly.Lines, env.ExitsOnly.Columns)
	if err != nil {
		return env.GlobalStatic
	}
	anyVisible := false
	for _, e := range env.Exits {
		if e.IsBlockedByFire {
			continue
		}
		for _, c := range e.Coordinates {
			if geom.LineOfSight(current, c, blocked) {
				restricted.Set(c, gridkit.ExitCell)
				anyVisible = true
			}
		}
	}
	if !anyVisible {
		return env.GlobalStatic
	}

	aux, err := staticfield.Zheng(env.Obstacle, restricted, env.FireActive)
	if err != nil {
		return env.GlobalStatic
	}
	return aux
}

// DrawTarget draws u ∈ [0,1] against the normalized stencil in row-major
// scan order and sets p.Target to the chosen cell, returning it. When the
// stencil sums to zero (cornered pedestrian) the target is the center
// cell — the pedestrian stays in place.
func (p *Pedestrian) DrawTarget(rng *rand.Rand, tolerance float64) gridkit.Coordinate {
	weights := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			weights = append(weights, p.Probabilities[i][j])
		}
	}
	idx := geom.RouletteSelect(rng, weights, tolerance)
	if idx < 0 || idx == len(weights)-1 {
		// idx<0: empty/zero-mass stencil. idx==len(weights)-1: RouletteSelect's
		// rounding-exhaustion fallback, which returns the last index — but
		// weights is flattened in row-major order, so its last entry is
		// Probabilities[2][2] (the SE corner), not the center. Land on the
		// center cell explicitly rather than trust the flattened index.
		p.Target = p.Current
		return p.Target
	}
	ri, rj := idx/3, idx%3
	p.Target = gridkit.Coordinate{Lin: p.Current.Lin + (ri - 1), Col: p.Current.Col + (rj - 1)}
	return p.Target
}
