// Package exitmodel defines the Exit descriptor: width, ordered cell
// coordinates, fire-blocked flag, and the two private grids an exit owns
// exclusively and reuses across recalculations — a structure view used as
// the per-exit obstacle snapshot, and a static-weight field filled in by
// internal/staticfield's Varas BFS-relaxation variant.
package exitmodel
