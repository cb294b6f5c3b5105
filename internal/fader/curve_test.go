package fader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCurveCalibrationPoints(t *testing.T) {
	c := DefaultCurve()

	cases := []struct {
		db   float64
		norm float64
	}{
		{-90, 0},
		{-60, 0.0625},
		{-30, 0.25},
		{-10, 0.5},
		{0, 0.75}, // unity gain
		{10, 1},
		{-20, 0.375}, // midpoint of the -30..-10 segment
		{5, 0.875},
		{-120, 0}, // below floor clamps
		{20, 1},   // above ceiling clamps
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.norm, c.ToNormalized(tc.db), 1e-9, "%v dB", tc.db)
	}
}

func TestToNormalizedMonotonic(t *testing.T) {
	c := DefaultCurve()
	prev := c.ToNormalized(-120)
	for db := -119.5; db <= 30; db += 0.5 {
		cur := c.ToNormalized(db)
		require.GreaterOrEqual(t, cur, prev, "curve regressed at %v dB", db)
		prev = cur
	}
	assert.Equal(t, 0.0, c.ToNormalized(c.FloorDB()))
	assert.Equal(t, 1.0, c.ToNormalized(c.CeilingDB()))
}

func TestToDecibelInverts(t *testing.T) {
	c := DefaultCurve()
	for db := -89.0; db <= 9.0; db += 1.0 {
		got := c.ToDecibel(c.ToNormalized(db))
		assert.InDelta(t, db, got, 1e-9, "round trip at %v dB", db)
	}
	assert.Equal(t, c.FloorDB(), c.ToDecibel(0))
	assert.Equal(t, c.CeilingDB(), c.ToDecibel(1))
}

func TestCurveIsReplaceableData(t *testing.T) {
	// A two-point linear law, nothing like the console's: the mapping must
	// follow the table, not a built-in formula.
	c, err := NewCurve([]Anchor{{DB: -60, Norm: 0}, {DB: 0, Norm: 1}}, -60, 0)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, c.ToNormalized(-30), 1e-9)
	assert.InDelta(t, 0.75, c.ToNormalized(-15), 1e-9)
}

func TestExtrapolationInsideBounds(t *testing.T) {
	// Anchors narrower than the floor/ceiling bounds: values between the
	// bound and the outermost anchor extend the nearest segment's slope.
	c, err := NewCurve([]Anchor{{DB: -40, Norm: 0.2}, {DB: 0, Norm: 0.6}}, -90, 10)
	require.NoError(t, err)

	// Slope is 0.01/dB; -50 dB extrapolates to 0.1, +5 dB to 0.65.
	assert.InDelta(t, 0.1, c.ToNormalized(-50), 1e-9)
	assert.InDelta(t, 0.65, c.ToNormalized(5), 1e-9)
	assert.Equal(t, 0.0, c.ToNormalized(-90))
	assert.Equal(t, 1.0, c.ToNormalized(10))
}

func TestNewCurveValidation(t *testing.T) {
	_, err := NewCurve([]Anchor{{DB: 0, Norm: 0.5}}, -90, 10)
	assert.ErrorIs(t, err, ErrNoAnchors)

	_, err = NewCurve([]Anchor{{DB: 0, Norm: 0.5}, {DB: -10, Norm: 0.6}}, -90, 10)
	assert.ErrorIs(t, err, ErrAnchorsNotAscending)

	_, err = NewCurve([]Anchor{{DB: -10, Norm: 0.6}, {DB: 0, Norm: 0.5}}, -90, 10)
	assert.ErrorIs(t, err, ErrAnchorsNotAscending)

	_, err = NewCurve([]Anchor{{DB: -10, Norm: 0.4}, {DB: 0, Norm: 0.5}}, 10, -90)
	assert.ErrorIs(t, err, ErrBoundsInverted)
}
