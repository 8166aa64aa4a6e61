package geom

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0,
// so NewRNG(0) is still fully deterministic rather than time-based.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand seeded from seed. seed==0 maps
// to defaultRNGSeed so the zero value of a configuration struct never
// silently produces a non-reproducible stream.
//
// Concurrency: the returned *rand.Rand is not goroutine-safe. The
// simulation kernel is single-threaded and threads one instance through
// every draw; never share one across goroutines.
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// ProbabilityTest draws u ∈ [0,1) from rng and reports whether u < p.
// p ≤ 0 always fails; p ≥ 1 always succeeds. The draw is made for every
// p, so each call advances rng exactly once.
// Complexity: O(1).
func ProbabilityTest(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// RandIntRange draws a uniform integer in [lo, hi] inclusive from rng.
// If hi < lo, the arguments are swapped.
// Complexity: O(1).
func RandIntRange(rng *rand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	if lo == hi {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
