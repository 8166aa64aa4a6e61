package staticfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorfield/evacsim/internal/exitmodel"
	"github.com/floorfield/evacsim/internal/gridkit"
)

func openGrids(t *testing.T, lines, columns int) (*gridkit.KindGrid, *gridkit.KindGrid) {
	t.Helper()
	obstacle, err := gridkit.NewKindGrid(lines, columns)
	require.NoError(t, err)
	exitsOnly, err := gridkit.NewKindGrid(lines, columns)
	require.NoError(t, err)
	return obstacle, exitsOnly
}

func TestZhengNoOpenExits(t *testing.T) {
	obstacle, exitsOnly := openGrids(t, 3, 3)
	_, err := Zheng(obstacle, exitsOnly, nil)
	assert.ErrorIs(t, err, ErrNoOpenExits)
}

func TestZhengDistanceDecreasesTowardExit(t *testing.T) {
	obstacle, exitsOnly := openGrids(t, 1, 5)
	exitCell := gridkit.Coordinate{Lin: 0, Col: 4}
	obstacle.Set(exitCell, gridkit.Impassable)
	exitsOnly.Set(exitCell, gridkit.ExitCell)

	field, err := Zheng(obstacle, exitsOnly, nil)
	require.NoError(t, err)

	// Field value should be monotonically non-decreasing as columns
	// approach the exit (1/(d+1) grows as d shrinks).
	prev := -1.0
	for col := 0; col < 4; col++ {
		v := field.At(gridkit.Coordinate{Lin: 0, Col: col})
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestZhengIgnoresFireBlockedExit(t *testing.T) {
	obstacle, exitsOnly := openGrids(t, 1, 3)
	exitCell := gridkit.Coordinate{Lin: 0, Col: 2}
	obstacle.Set(exitCell, gridkit.Impassable)
	exitsOnly.Set(exitCell, gridkit.BlockedExitCell)

	_, err := Zheng(obstacle, exitsOnly, nil)
	assert.ErrorIs(t, err, ErrNoOpenExits)
}

func TestVarasInaccessibleExit(t *testing.T) {
	obstacle, exitsOnly := openGrids(t, 3, 3)
	exitCell := gridkit.Coordinate{Lin: 1, Col: 2}
	obstacle.Set(exitCell, gridkit.Impassable)
	exitsOnly.Set(exitCell, gridkit.ExitCell)
	// Wall off every axial neighbor of the exit cell.
	for _, n := range []gridkit.Coordinate{
		{Lin: 0, Col: 2}, {Lin: 2, Col: 2}, {Lin: 1, Col: 1},
	} {
		obstacle.Set(n, gridkit.Impassable)
	}

	e, err := exitmodel.New(0, 1, []gridkit.Coordinate{exitCell}, 3, 3)
	require.NoError(t, err)

	err = Varas(obstacle, exitsOnly, e, 1.5, true)
	assert.ErrorIs(t, err, ErrInaccessible)
}

// TestVarasFixpointOnOpenCorridor hand-traces a 1x5 open corridor with the
// exit at column 4: axial cost 1 per step means the field value at column
// k is exactly (4-k).
func TestVarasFixpointOnOpenCorridor(t *testing.T) {
	obstacle, exitsOnly := openGrids(t, 1, 5)
	exitCell := gridkit.Coordinate{Lin: 0, Col: 4}
	obstacle.Set(exitCell, gridkit.Impassable)
	exitsOnly.Set(exitCell, gridkit.ExitCell)

	e, err := exitmodel.New(0, 1, []gridkit.Coordinate{exitCell}, 1, 5)
	require.NoError(t, err)

	err = Varas(obstacle, exitsOnly, e, 1.5, true)
	require.NoError(t, err)

	for col := 0; col < 5; col++ {
		want := float64(4 - col)
		got := e.PrivateStaticWeight.At(gridkit.Coordinate{Lin: 0, Col: col})
		assert.InDelta(t, want, got, 1e-9)
	}
}

// TestVarasDiagonalCheaperThanDoubleAxial verifies a corner cell reaches the
// exit via a single diagonal step rather than two axial steps when the
// diagonal is not blocked.
func TestVarasDiagonalCheaperThanDoubleAxial(t *testing.T) {
	obstacle, exitsOnly := openGrids(t, 2, 2)
	exitCell := gridkit.Coordinate{Lin: 1, Col: 1}
	obstacle.Set(exitCell, gridkit.Impassable)
	exitsOnly.Set(exitCell, gridkit.ExitCell)

	e, err := exitmodel.New(0, 1, []gridkit.Coordinate{exitCell}, 2, 2)
	require.NoError(t, err)

	err = Varas(obstacle, exitsOnly, e, 1.5, false)
	require.NoError(t, err)

	corner := gridkit.Coordinate{Lin: 0, Col: 0}
	got := e.PrivateStaticWeight.At(corner)
	assert.InDelta(t, 1.5, got, 1e-9)
}

// TestVarasPrivateStructureSnapshotsObstacle confirms the per-exit obstacle
// snapshot is refreshed on every successful call.
func TestVarasPrivateStructureSnapshotsObstacle(t *testing.T) {
	obstacle, exitsOnly := openGrids(t, 1, 3)
	exitCell := gridkit.Coordinate{Lin: 0, Col: 2}
	obstacle.Set(exitCell, gridkit.Impassable)
	exitsOnly.Set(exitCell, gridkit.ExitCell)
	wall := gridkit.Coordinate{Lin: 0, Col: 0}
	obstacle.Set(wall, gridkit.Impassable)

	e, err := exitmodel.New(0, 1, []gridkit.Coordinate{gridkit.Coordinate{Lin: 0, Col: 2}}, 1, 3)
	require.NoError(t, err)

	require.NoError(t, Varas(obstacle, exitsOnly, e, 1.5, true))
	assert.Equal(t, gridkit.Impassable, e.PrivateStructure.At(wall))
}
