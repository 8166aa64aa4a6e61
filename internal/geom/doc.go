// Package geom provides the small geometric and stochastic primitives the
// kernel threads through every probability computation: Euclidean distance,
// coordinate equality, a single deterministic RNG source, probability
// tests, roulette-wheel selection, and a Bresenham line-of-sight test used
// by the pedestrian model's fire-occlusion check.
//
// Every draw in the kernel goes through the *rand.Rand returned by NewRNG —
// never through a package-level or time-seeded source — so that two runs
// with the same seed advance the PRNG in exactly the same order, per the
// determinism contract described for the simulation driver.
package geom
