package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinates(t *testing.T) {
	rng := NewRNG(4711)

	c := rng.Coordinates(32)

	assert.Len(t, c, 32)
	for _, v := range c {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
}

func TestVector(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Vector(3)

	for _, g := range v.Grades() {
		assert.Equal(t, 1, g)
	}
	assert.LessOrEqual(t, int(v.Dimension()), 3)
}

func TestMultivector(t *testing.T) {
	rng := NewRNG(4711)

	m := rng.Multivector(4, 10)

	assert.LessOrEqual(t, int(m.Dimension()), 4)
	for _, g := range m.Grades() {
		assert.LessOrEqual(t, g, 4)
	}
}

func TestDirection(t *testing.T) {
	rng := NewRNG(4711)

	for range 100 {
		d := rng.Direction(FullBounds())
		assert.InDelta(t, 1.0, math.Sqrt(d[0]*d[0]+d[1]*d[1]+d[2]*d[2]), 1e-12)
	}

	b := FullBounds()
	b.MinX = 0
	for _, d := range rng.Directions(100, b) {
		assert.GreaterOrEqual(t, d[0], 0.0)
	}
}

func TestAngle(t *testing.T) {
	rng := NewRNG(1)

	for range 100 {
		a := rng.Angle()
		assert.GreaterOrEqual(t, a, -math.Pi)
		assert.Less(t, a, math.Pi)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Coordinates(10)

	rng.Reset()
	v2 := rng.Coordinates(10)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}
