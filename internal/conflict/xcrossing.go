package conflict

import (
	"math"
	"math/rand"

	"github.com/floorfield/evacsim/internal/geom"
	"github.com/floorfield/evacsim/internal/gridkit"
	"github.com/floorfield/evacsim/internal/pedestrian"
)

// DetectAndResolveXCrossings scans pedestrian pairs in top-left to
// bottom-right order, examining each live pedestrian's right-neighbor and
// below-neighbor in positions — so every adjacent pair is considered
// exactly once — and resolves any detected crossing by stopping one
// participant (uniform coin flip).
// Complexity: O(L×C).
func DetectAndResolveXCrossings(positions *gridkit.IntGrid, byID map[int]*pedestrian.Pedestrian, tolerance float64, rng *rand.Rand) {
	lines, columns := positions.Lines, positions.Columns
	for lin := 0; lin < lines; lin++ {
		for col := 0; col < columns; col++ {
			id := positions.At(gridkit.Coordinate{Lin: lin, Col: col})
			a := byID[id]
			if id == 0 || a == nil || a.State != pedestrian.Moving {
				continue
			}
			for _, n := range [2]gridkit.Coordinate{{Lin: lin, Col: col + 1}, {Lin: lin + 1, Col: col}} {
				if !positions.InBounds(n) {
					continue
				}
				otherID := positions.At(n)
				b := byID[otherID]
				if otherID == 0 || b == nil || b.State != pedestrian.Moving {
					continue
				}
				if IsXCrossing(a.Current, a.Target, b.Current, b.Target, tolerance) {
					if geom.ProbabilityTest(rng, 0.5) {
						a.State = pedestrian.Stopped
					} else {
						b.State = pedestrian.Stopped
					}
				}
			}
		}
	}
}

// IsXCrossing reports whether the (current -> target) segments of two
// pedestrians cross strictly inside both segments:
//   - either segment vertical (equal columns) -> not an X-crossing.
//   - either slope zero (horizontal), or the two slopes equal -> not an
//     X-crossing.
//   - intersection coincides with either target -> a same-target
//     conflict, not an X-crossing (handled by DetectSameTarget instead).
//   - otherwise, an X-crossing iff the intersection is strictly interior
//     to both segments.
//
// The slope comparisons use integer division on purpose (see DESIGN.md),
// while the intersection point itself is computed with real slopes for
// numerical accuracy of the interior test.
func IsXCrossing(aCur, aTgt, bCur, bTgt gridkit.Coordinate, tolerance float64) bool {
	if aCur.Col == aTgt.Col || bCur.Col == bTgt.Col {
		return false
	}
	if intSlope(aCur, aTgt) == 0 || intSlope(bCur, bTgt) == 0 || intSlope(aCur, aTgt) == intSlope(bCur, bTgt) {
		return false
	}

	x, y, ok := intersect(aCur, aTgt, bCur, bTgt)
	if !ok {
		return false
	}
	if closeToPoint(x, y, aTgt, tolerance) || closeToPoint(x, y, bTgt, tolerance) {
		return false
	}
	return strictlyInterior(x, y, aCur, aTgt, tolerance) && strictlyInterior(x, y, bCur, bTgt, tolerance)
}

// intSlope computes Δrow/Δcol using integer division. Callers must ensure
// aTgt.Col != aCur.Col.
func intSlope(cur, tgt gridkit.Coordinate) int {
	dx := tgt.Col - cur.Col
	dy := tgt.Lin - cur.Lin
	return dy / dx
}

func intersect(aCur, aTgt, bCur, bTgt gridkit.Coordinate) (x, y float64, ok bool) {
	x0a, y0a := float64(aCur.Col), float64(aCur.Lin)
	x1a, y1a := float64(aTgt.Col), float64(aTgt.Lin)
	x0b, y0b := float64(bCur.Col), float64(bCur.Lin)
	x1b, y1b := float64(bTgt.Col), float64(bTgt.Lin)

	slopeA := (y1a - y0a) / (x1a - x0a)
	slopeB := (y1b - y0b) / (x1b - x0b)
	if slopeA == slopeB {
		return 0, 0, false
	}
	x = (slopeA*x0a - slopeB*x0b + y0b - y0a) / (slopeA - slopeB)
	y = slopeA*(x-x0a) + y0a
	return x, y, true
}

func closeToPoint(x, y float64, c gridkit.Coordinate, tolerance float64) bool {
	return math.Abs(x-float64(c.Col)) <= tolerance && math.Abs(y-float64(c.Lin)) <= tolerance
}

func strictlyInterior(x, y float64, cur, tgt gridkit.Coordinate, tolerance float64) bool {
	loX, hiX := float64(cur.Col), float64(tgt.Col)
	if loX > hiX {
		loX, hiX = hiX, loX
	}
	if x < loX+tolerance || x > hiX-tolerance {
		return false
	}
	loY, hiY := float64(cur.Lin), float64(tgt.Lin)
	if loY > hiY {
		loY, hiY = hiY, loY
	}
	if y < loY+tolerance || y > hiY-tolerance {
		return false
	}
	return true
}
