// Package conflict implements the two movement conflict mechanisms:
// same-target conflicts among MOVING pedestrians, and adjacent-pair
// "X-crossing" detection for pedestrians whose intended moves would cross.
package conflict
