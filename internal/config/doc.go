// Package config defines the simulation's configuration surface: every
// physical coefficient and behavioral flag the kernel needs, plus the
// ambient fields for logging, reporting, and the timestep ceiling.
// Construction follows a functional-options idiom (core.GraphOption):
// New applies defaults first, then each Option in order.
package config
