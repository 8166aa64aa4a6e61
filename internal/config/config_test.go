package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesDefaults(t *testing.T) {
	c, err := New(WithDimensions(5, 5), WithPedestrianCount(1))
	require.NoError(t, err)
	assert.Equal(t, 1, c.NumSimulations)
	assert.Equal(t, 1.0, c.Omega)
	assert.True(t, c.AllowXMovement)
}

func TestNewRejectsBadDimensions(t *testing.T) {
	_, err := New(WithDimensions(0, 5), WithPedestrianCount(1))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestNewRejectsNegativeSeed(t *testing.T) {
	_, err := New(WithDimensions(5, 5), WithPedestrianCount(1), WithSeed(-1))
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestNewRejectsZeroSimulations(t *testing.T) {
	_, err := New(WithDimensions(5, 5), WithPedestrianCount(1), WithNumSimulations(0))
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestNewRejectsBothCountAndDensityUnset(t *testing.T) {
	_, err := New(WithDimensions(5, 5))
	assert.ErrorIs(t, err, ErrInvalidPedestrian)
}

func TestNewRejectsBothCountAndDensitySet(t *testing.T) {
	// The With* options clear each other, so both fields are set directly.
	c := &Config{L: 5, C: 5, NumSimulations: 1, Tolerance: 1e-9, PedestrianCount: 3, PedestrianDensity: 0.2}
	assert.ErrorIs(t, c.Validate(), ErrInvalidPedestrian)
}

func TestWithPedestrianDensityClearsCount(t *testing.T) {
	c, err := New(WithDimensions(5, 5), WithPedestrianCount(3), WithPedestrianDensity(0.2))
	require.NoError(t, err)
	assert.Equal(t, 0, c.PedestrianCount)
	assert.Equal(t, 0.2, c.PedestrianDensity)
}

func TestWithFireSetsAllFireFields(t *testing.T) {
	c, err := New(WithDimensions(5, 5), WithPedestrianCount(1), WithFire(true, 1.5, 0.5, 3, 0.6))
	require.NoError(t, err)
	assert.True(t, c.FireIsPresent)
	assert.Equal(t, 1.5, c.RiskDistance)
	assert.Equal(t, 0.5, c.FireAlpha)
	assert.Equal(t, 3.0, c.FireGamma)
	assert.Equal(t, 0.6, c.SpreadRate)
}

func TestNewRejectsNonPositiveTolerance(t *testing.T) {
	_, err := New(WithDimensions(5, 5), WithPedestrianCount(1), WithTolerance(0))
	assert.ErrorIs(t, err, ErrInvalidTolerance)
}
