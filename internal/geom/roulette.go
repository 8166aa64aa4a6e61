package geom

import "math/rand"

// RouletteSelect draws u ∈ [0,1) from rng, walks weights in order
// accumulating a running sum, and returns the index of the first entry
// whose cumulative mass reaches (u+tolerance)·total, where total is the sum
// of weights. If weights is empty or total is zero, returns -1. On
// exhaustion due to floating-point rounding, returns len(weights)-1; this
// is a rounding fallback only, not a semantic one — a caller whose
// weights are not ordered so that the last entry is the intended default
// must special-case this index itself.
//
// Complexity: O(n).
func RouletteSelect(rng *rand.Rand, weights []float64, tolerance float64) int {
	if len(weights) == 0 {
		return -1
	}
	var total float64
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return -1
	}

	u := rng.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if cumulative >= u+tolerance*total {
			return i
		}
	}
	return len(weights) - 1
}
