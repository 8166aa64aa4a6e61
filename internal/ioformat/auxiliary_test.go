package ioformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimulationSetsSingleExitSingleCell(t *testing.T) {
	sets, err := ParseSimulationSets(strings.NewReader("2 4.\n"))
	require.NoError(t, err)
	require.Len(t, sets, 1)
	require.Len(t, sets[0], 1)
	assert.Equal(t, ExitSpec{{Lin: 2, Col: 4}}, sets[0][0])
}

func TestParseSimulationSetsMultiCellExitAndMultipleExits(t *testing.T) {
	sets, err := ParseSimulationSets(strings.NewReader("1 1+1 2,3 3.\n"))
	require.NoError(t, err)
	require.Len(t, sets, 1)
	require.Len(t, sets[0], 2)
	assert.Equal(t, ExitSpec{
		{Lin: 1, Col: 1},
		{Lin: 1, Col: 2},
	}, sets[0][0])
	assert.Equal(t, ExitSpec{{Lin: 3, Col: 3}}, sets[0][1])
}

func TestParseSimulationSetsIgnoresEmptyLines(t *testing.T) {
	src := "0 0.\n\n   \n1 1.\n"
	sets, err := ParseSimulationSets(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, sets, 2)
}

func TestParseSimulationSetsRejectsMissingTerminator(t *testing.T) {
	_, err := ParseSimulationSets(strings.NewReader("1 1\n"))
	assert.ErrorIs(t, err, ErrMalformedAuxiliary)
}

func TestParseSimulationSetsRejectsGarbage(t *testing.T) {
	_, err := ParseSimulationSets(strings.NewReader("a b.\n"))
	assert.ErrorIs(t, err, ErrMalformedAuxiliary)
}
