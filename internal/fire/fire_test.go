package fire

import (
	"testing"

	"github.com/floorfield/evacsim/internal/exitmodel"
	"github.com/floorfield/evacsim/internal/gridkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyObstacleAndExits(t *testing.T, lines, cols int) (*gridkit.KindGrid, *gridkit.KindGrid) {
	t.Helper()
	obstacle, err := gridkit.NewKindGrid(lines, cols)
	require.NoError(t, err)
	exits, err := gridkit.NewKindGrid(lines, cols)
	require.NoError(t, err)
	return obstacle, exits
}

// TestS4FirePropagation7x7 checks a single fire cell at (3,3) on a 7x7
// open grid forms a 3x3 square after one propagation and a 5x5 square
// after two.
func TestS4FirePropagation7x7(t *testing.T) {
	obstacle, exits := emptyObstacleAndExits(t, 7, 7)
	f, err := New(7, 7)
	require.NoError(t, err)
	f.Seed([]gridkit.Coordinate{{3, 3}})
	require.True(t, f.Present)

	f.Propagate(obstacle, exits)
	assert.Equal(t, 9, f.Active.Count(gridkit.FireCell), "expected a 3x3 square of fire")
	for lin := 2; lin <= 4; lin++ {
		for col := 2; col <= 4; col++ {
			assert.Equal(t, gridkit.FireCell, f.Active.At(gridkit.Coordinate{lin, col}))
		}
	}

	f.Propagate(obstacle, exits)
	assert.Equal(t, 25, f.Active.Count(gridkit.FireCell), "expected a 5x5 square of fire")
	for lin := 1; lin <= 5; lin++ {
		for col := 1; col <= 5; col++ {
			assert.Equal(t, gridkit.FireCell, f.Active.At(gridkit.Coordinate{lin, col}))
		}
	}
}

func TestFirePropagationBlockedByWalls(t *testing.T) {
	obstacle, exits := emptyObstacleAndExits(t, 5, 5)
	obstacle.Set(gridkit.Coordinate{2, 2}, gridkit.Impassable)
	f, _ := New(5, 5)
	f.Seed([]gridkit.Coordinate{{2, 1}})

	f.Propagate(obstacle, exits)
	assert.Equal(t, gridkit.Empty, f.Active.At(gridkit.Coordinate{2, 2}), "wall must never catch fire")
}

func TestFireNeverConsumesExitCells(t *testing.T) {
	obstacle, exits := emptyObstacleAndExits(t, 5, 5)
	obstacle.Set(gridkit.Coordinate{2, 4}, gridkit.Impassable)
	exits.Set(gridkit.Coordinate{2, 4}, gridkit.ExitCell)
	f, _ := New(5, 5)
	f.Seed([]gridkit.Coordinate{{2, 3}})

	f.Propagate(obstacle, exits)
	assert.Equal(t, gridkit.ExitCell, exits.At(gridkit.Coordinate{2, 4}))
	assert.NotEqual(t, gridkit.FireCell, f.Active.At(gridkit.Coordinate{2, 4}))
}

func TestDistanceZeroIffFireCell(t *testing.T) {
	obstacle, _ := emptyObstacleAndExits(t, 5, 5)
	_ = obstacle
	f, _ := New(5, 5)
	f.Seed([]gridkit.Coordinate{{2, 2}})
	f.RecomputeDistance()

	for lin := 0; lin < 5; lin++ {
		for col := 0; col < 5; col++ {
			c := gridkit.Coordinate{lin, col}
			if f.Active.At(c) == gridkit.FireCell {
				assert.Equal(t, 0.0, f.Distance.At(c))
			} else {
				assert.NotEqual(t, 0.0, f.Distance.At(c))
			}
		}
	}
}

func TestRiskClassificationDanger(t *testing.T) {
	obstacle, _ := emptyObstacleAndExits(t, 5, 5)
	f, _ := New(5, 5)
	f.Seed([]gridkit.Coordinate{{2, 2}})
	f.RecomputeDistance()
	f.RecomputeRisk(obstacle)

	// (2,1) and (2,3) are within 1.5 of fire at (2,2) and not wall-adjacent.
	assert.Equal(t, gridkit.Danger, f.Risk.At(gridkit.Coordinate{2, 1}))
	assert.Equal(t, gridkit.Danger, f.Risk.At(gridkit.Coordinate{2, 3}))
	// Far cells stay NonRisky.
	assert.Equal(t, gridkit.NonRisky, f.Risk.At(gridkit.Coordinate{4, 4}))
}

func TestRiskClassificationRiskyDowngradesWallAdjacentDanger(t *testing.T) {
	obstacle, _ := emptyObstacleAndExits(t, 5, 5)
	// Wall directly above (2,3), so (2,3) is both near-fire and wall-adjacent.
	obstacle.Set(gridkit.Coordinate{1, 3}, gridkit.Impassable)
	f, _ := New(5, 5)
	f.Seed([]gridkit.Coordinate{{2, 2}})
	f.RecomputeDistance()
	f.RecomputeRisk(obstacle)

	assert.Equal(t, gridkit.Risky, f.Risk.At(gridkit.Coordinate{2, 3}))
	// (2,1), unaffected by the new wall, remains plain Danger.
	assert.Equal(t, gridkit.Danger, f.Risk.At(gridkit.Coordinate{2, 1}))
}

func TestFloorFieldZeroWhenNoFire(t *testing.T) {
	obstacle, _ := emptyObstacleAndExits(t, 5, 5)
	f, _ := New(5, 5)
	f.RecomputeDistance()
	f.RecomputeFloorField(5.0, obstacle)
	assert.Equal(t, 0.0, f.FloorField.Sum())
}

func TestFloorFieldNormalizedWhenFirePresent(t *testing.T) {
	obstacle, _ := emptyObstacleAndExits(t, 5, 5)
	f, _ := New(5, 5)
	f.Seed([]gridkit.Coordinate{{2, 2}})
	f.RecomputeDistance()
	f.RecomputeFloorField(5.0, obstacle)
	assert.InDelta(t, 1.0, f.FloorField.Sum(), 1e-9)
}

func TestBlocksExitWhenAllApproachesAreFire(t *testing.T) {
	obstacle, exits := emptyObstacleAndExits(t, 5, 5)
	obstacle.Set(gridkit.Coordinate{2, 4}, gridkit.Impassable)
	exits.Set(gridkit.Coordinate{2, 4}, gridkit.ExitCell)
	e, err := exitmodel.New(0, 1, []gridkit.Coordinate{{2, 4}}, 5, 5)
	require.NoError(t, err)

	f, _ := New(5, 5)
	f.Seed([]gridkit.Coordinate{{1, 4}, {3, 4}})
	// the only other passable axial neighbor of (2,4) is (2,3); seed it too.
	f.Active.Set(gridkit.Coordinate{2, 3}, gridkit.FireCell)

	assert.True(t, Blocks(f, obstacle, exits, e))

	applied := ApplyBlocked(f, obstacle, exits, []*exitmodel.Exit{e})
	assert.True(t, applied)
	assert.True(t, e.IsBlockedByFire)
	assert.Equal(t, gridkit.BlockedExitCell, exits.At(gridkit.Coordinate{2, 4}))
}

func TestBlocksExitFalseWhenOneApproachOpen(t *testing.T) {
	obstacle, exits := emptyObstacleAndExits(t, 5, 5)
	obstacle.Set(gridkit.Coordinate{2, 4}, gridkit.Impassable)
	exits.Set(gridkit.Coordinate{2, 4}, gridkit.ExitCell)
	e, _ := exitmodel.New(0, 1, []gridkit.Coordinate{{2, 4}}, 5, 5)

	f, _ := New(5, 5)
	assert.False(t, Blocks(f, obstacle, exits, e))
}

func TestSpreadInterval(t *testing.T) {
	assert.Equal(t, 1, SpreadInterval(1, 1, 1))
	assert.Equal(t, 2, SpreadInterval(2, 1, 1))
	assert.Equal(t, 1, SpreadInterval(1, 0, 1))
}
