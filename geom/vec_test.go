package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voro3d/geom"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, geom.Up, geom.Classify(1))
	assert.Equal(t, geom.Down, geom.Classify(-1))
	assert.Equal(t, geom.On, geom.Classify(0))
	assert.Equal(t, geom.On, geom.Classify(geom.Epsilon/2))
	assert.Equal(t, geom.Up, geom.Classify(geom.Epsilon*2))
}

func TestOrthonormalBasis(t *testing.T) {
	t.Parallel()

	for _, n := range []geom.Vec{{X: 1}, {Y: 1}, {Z: 1}, {X: 1, Y: 1, Z: 1}} {
		e1, e2 := geom.OrthonormalBasis(n)

		require.InDelta(t, 1, geom.Norm(e1), 1e-9)
		require.InDelta(t, 1, geom.Norm(e2), 1e-9)
		assert.InDelta(t, 0, geom.Dot(e1, e2), 1e-9)
		assert.InDelta(t, 0, geom.Dot(e1, n), 1e-9)
		assert.InDelta(t, 0, geom.Dot(e2, n), 1e-9)
	}
}

func TestAngleOrdersCycle(t *testing.T) {
	t.Parallel()

	n := geom.Vec{Z: 1}
	e1, e2 := geom.OrthonormalBasis(n)
	center := geom.Zero

	pts := []geom.Vec{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}
	var angles []float64
	for _, p := range pts {
		angles = append(angles, geom.Angle(center, p, e1, e2))
	}
	// Angles must be monotonically increasing around the circle (mod wrap).
	for i := 1; i < len(angles); i++ {
		assert.Greater(t, angles[i], angles[i-1])
	}
	assert.True(t, math.Abs(angles[len(angles)-1]-angles[0]) < 2*math.Pi)
}
