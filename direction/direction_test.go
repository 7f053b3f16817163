package direction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/direction"
)

// TestCardinal_CW verifies a full clockwise turn visits Up, Right, Down, Left.
func TestCardinal_CW(t *testing.T) {
	d := direction.Up
	var seen []direction.Cardinal
	for range 4 {
		seen = append(seen, d)
		d = d.CW()
	}
	all := direction.Cardinals()
	assert.Equal(t, all[:], seen)
	assert.Equal(t, direction.Up, d, "four right turns return to start")
}

// TestCardinal_RotationInverses checks CCW undoes CW and Opposite is two turns.
func TestCardinal_RotationInverses(t *testing.T) {
	for _, d := range direction.Cardinals() {
		assert.Equal(t, d, d.CW().CCW())
		assert.Equal(t, d.CW().CW(), d.Opposite())
	}
}

// TestCardinal_Vector checks unit vectors with y growing downward.
func TestCardinal_Vector(t *testing.T) {
	cases := map[direction.Cardinal][2]int64{
		direction.Up:    {0, -1},
		direction.Down:  {0, 1},
		direction.Left:  {-1, 0},
		direction.Right: {1, 0},
	}
	for d, want := range cases {
		dx, dy := d.Vector()
		assert.Equal(t, want, [2]int64{dx, dy}, "vector of %v", d)
	}
}

// TestParseCardinal round-trips guard glyphs and rejects others.
func TestParseCardinal(t *testing.T) {
	for _, d := range direction.Cardinals() {
		got, err := direction.ParseCardinal(d.Rune())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := direction.ParseCardinal('#')
	assert.ErrorIs(t, err, direction.ErrUnknownDirection)
}

// TestCompass_AllOrder pins the row-major order and the diagonal vectors.
func TestCompass_AllOrder(t *testing.T) {
	want := [][2]int64{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	for i, c := range direction.All() {
		dx, dy := c.Vector()
		assert.Equal(t, want[i], [2]int64{dx, dy}, "slot %d (%v)", i, c)
	}
}

// TestCompass_CardinalRoundTrip checks widening and narrowing agree.
func TestCompass_CardinalRoundTrip(t *testing.T) {
	for _, d := range direction.Cardinals() {
		back, ok := d.Compass().Cardinal()
		require.True(t, ok)
		assert.Equal(t, d, back)
	}
	_, ok := direction.NorthEast.Cardinal()
	assert.False(t, ok)
}
