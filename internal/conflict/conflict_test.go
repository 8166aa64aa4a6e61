package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorfield/evacsim/internal/geom"
	"github.com/floorfield/evacsim/internal/gridkit"
	"github.com/floorfield/evacsim/internal/pedestrian"
)

func byIDMap(peds []*pedestrian.Pedestrian) map[int]*pedestrian.Pedestrian {
	m := make(map[int]*pedestrian.Pedestrian, len(peds))
	for _, p := range peds {
		m[p.ID] = p
	}
	return m
}

func TestDetectSameTargetGroupsCollisions(t *testing.T) {
	a := pedestrian.New(1, gridkit.Coordinate{Lin: 1, Col: 3})
	b := pedestrian.New(2, gridkit.Coordinate{Lin: 3, Col: 3})
	a.Target = gridkit.Coordinate{Lin: 2, Col: 4}
	b.Target = gridkit.Coordinate{Lin: 2, Col: 4}

	records := DetectSameTarget([]*pedestrian.Pedestrian{a, b})
	require.Len(t, records, 1)
	assert.ElementsMatch(t, []int{1, 2}, records[0].PedestrianIDs)
}

func TestDetectSameTargetIgnoresNonMoving(t *testing.T) {
	a := pedestrian.New(1, gridkit.Coordinate{Lin: 1, Col: 3})
	b := pedestrian.New(2, gridkit.Coordinate{Lin: 3, Col: 3})
	a.Target = gridkit.Coordinate{Lin: 2, Col: 4}
	b.Target = gridkit.Coordinate{Lin: 2, Col: 4}
	b.State = pedestrian.Stopped

	records := DetectSameTarget([]*pedestrian.Pedestrian{a, b})
	assert.Empty(t, records)
}

func TestDetectSameTargetExtendsRecordOnThirdCollider(t *testing.T) {
	a := pedestrian.New(1, gridkit.Coordinate{Lin: 0, Col: 0})
	b := pedestrian.New(2, gridkit.Coordinate{Lin: 0, Col: 1})
	c := pedestrian.New(3, gridkit.Coordinate{Lin: 0, Col: 2})
	a.Target = gridkit.Coordinate{Lin: 1, Col: 1}
	b.Target = gridkit.Coordinate{Lin: 1, Col: 1}
	c.Target = gridkit.Coordinate{Lin: 1, Col: 1}

	records := DetectSameTarget([]*pedestrian.Pedestrian{a, b, c})
	require.Len(t, records, 1)
	assert.ElementsMatch(t, []int{1, 2, 3}, records[0].PedestrianIDs)
}

func TestResolveSameTargetDeniesAllWithProbabilityMu(t *testing.T) {
	rec := &Record{PedestrianIDs: []int{1, 2}}
	rng := geom.NewRNG(1)
	ResolveSameTarget([]*Record{rec}, 1.0, rng) // mu=1: always deny
	assert.Equal(t, NoWinner, rec.Allowed)
}

func TestResolveSameTargetPicksWinnerWhenNotDenied(t *testing.T) {
	rec := &Record{PedestrianIDs: []int{1, 2}}
	rng := geom.NewRNG(1)
	ResolveSameTarget([]*Record{rec}, 0.0, rng) // mu=0: never deny
	assert.Contains(t, []int{1, 2}, rec.Allowed)
}

func TestApplyStopsEveryLoser(t *testing.T) {
	a := pedestrian.New(1, gridkit.Coordinate{Lin: 0, Col: 0})
	b := pedestrian.New(2, gridkit.Coordinate{Lin: 0, Col: 1})
	rec := &Record{PedestrianIDs: []int{1, 2}, Allowed: 1}

	Apply([]*Record{rec}, byIDMap([]*pedestrian.Pedestrian{a, b}))
	assert.Equal(t, pedestrian.Moving, a.State)
	assert.Equal(t, pedestrian.Stopped, b.State)
}

func TestApplyStopsBothWhenNoWinner(t *testing.T) {
	a := pedestrian.New(1, gridkit.Coordinate{Lin: 0, Col: 0})
	b := pedestrian.New(2, gridkit.Coordinate{Lin: 0, Col: 1})
	rec := &Record{PedestrianIDs: []int{1, 2}, Allowed: NoWinner}

	Apply([]*Record{rec}, byIDMap([]*pedestrian.Pedestrian{a, b}))
	assert.Equal(t, pedestrian.Stopped, a.State)
	assert.Equal(t, pedestrian.Stopped, b.State)
}

// TestIsXCrossingDiagonalPairDetected constructs a genuine crossing X:
// one pedestrian moving up-right, another moving down-right, their
// segments crossing strictly inside a shared 2x2 block.
func TestIsXCrossingDiagonalPairDetected(t *testing.T) {
	aCur := gridkit.Coordinate{Lin: 2, Col: 1}
	aTgt := gridkit.Coordinate{Lin: 1, Col: 2}
	bCur := gridkit.Coordinate{Lin: 1, Col: 1}
	bTgt := gridkit.Coordinate{Lin: 2, Col: 2}

	assert.True(t, IsXCrossing(aCur, aTgt, bCur, bTgt, 1e-9))
}

func TestIsXCrossingVerticalSegmentExcluded(t *testing.T) {
	aCur := gridkit.Coordinate{Lin: 0, Col: 1}
	aTgt := gridkit.Coordinate{Lin: 1, Col: 1} // vertical
	bCur := gridkit.Coordinate{Lin: 1, Col: 0}
	bTgt := gridkit.Coordinate{Lin: 0, Col: 1}

	assert.False(t, IsXCrossing(aCur, aTgt, bCur, bTgt, 1e-9))
}

func TestIsXCrossingParallelSegmentsExcluded(t *testing.T) {
	aCur := gridkit.Coordinate{Lin: 2, Col: 1}
	aTgt := gridkit.Coordinate{Lin: 1, Col: 2}
	bCur := gridkit.Coordinate{Lin: 2, Col: 2}
	bTgt := gridkit.Coordinate{Lin: 3, Col: 1}

	assert.False(t, IsXCrossing(aCur, aTgt, bCur, bTgt, 1e-9))
}

func TestIsXCrossingSameTargetIsNotXCrossing(t *testing.T) {
	// Both segments genuinely intersect (non-parallel slopes), but at a
	// point coincident with both targets — that's a same-target conflict,
	// not an X-crossing.
	shared := gridkit.Coordinate{Lin: 1, Col: 1}
	aCur := gridkit.Coordinate{Lin: 2, Col: 0}
	bCur := gridkit.Coordinate{Lin: 2, Col: 2}

	assert.False(t, IsXCrossing(aCur, shared, bCur, shared, 1e-9))
}

func TestDetectAndResolveXCrossingsStopsOneParticipant(t *testing.T) {
	a := pedestrian.New(1, gridkit.Coordinate{Lin: 2, Col: 1})
	a.Target = gridkit.Coordinate{Lin: 1, Col: 2}
	b := pedestrian.New(2, gridkit.Coordinate{Lin: 1, Col: 1})
	b.Target = gridkit.Coordinate{Lin: 2, Col: 2}

	positions, err := gridkit.NewIntGrid(3, 3)
	require.NoError(t, err)
	positions.Set(a.Current, a.ID)
	positions.Set(b.Current, b.ID)

	DetectAndResolveXCrossings(positions, byIDMap([]*pedestrian.Pedestrian{a, b}), 1e-9, geom.NewRNG(1))

	stopped := 0
	if a.State == pedestrian.Stopped {
		stopped++
	}
	if b.State == pedestrian.Stopped {
		stopped++
	}
	assert.Equal(t, 1, stopped)
}
