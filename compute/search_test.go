package compute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voro3d/compute"
	"github.com/katalvlaran/voro3d/container"
	"github.com/katalvlaran/voro3d/output"
)

func TestBuildSingleParticleFillsUnitCube(t *testing.T) {
	t.Parallel()

	g, err := container.New(
		container.WithBox(container.Box{AX: 0, BX: 1, AY: 0, BY: 1, AZ: 0, BZ: 1}),
		container.WithGridDims(1, 1, 1),
	)
	require.NoError(t, err)

	p := container.Particle{ID: 0, X: 0.5, Y: 0.5, Z: 0.5}
	_, err = g.Put(p, false)
	require.NoError(t, err)

	d := compute.NewDriver(g, nil)
	cell, err := d.Build(p, false)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, output.Volume(cell), 1e-9)
	assert.Equal(t, 8, cell.NVertices())
}

func TestBuildTwoParticlesSplitUnitCube(t *testing.T) {
	t.Parallel()

	g, err := container.New(
		container.WithBox(container.Box{AX: 0, BX: 1, AY: 0, BY: 1, AZ: 0, BZ: 1}),
		container.WithGridDims(1, 1, 1),
	)
	require.NoError(t, err)

	p0 := container.Particle{ID: 0, X: 0.25, Y: 0.5, Z: 0.5}
	p1 := container.Particle{ID: 1, X: 0.75, Y: 0.5, Z: 0.5}
	_, err = g.Put(p0, false)
	require.NoError(t, err)
	_, err = g.Put(p1, false)
	require.NoError(t, err)

	d := compute.NewDriver(g, nil)

	cell0, err := d.Build(p0, true)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, output.Volume(cell0), 1e-9)

	var sawNeighbor1 bool
	for _, f := range output.Faces(cell0) {
		if f.HasNeighborID && f.NeighborID == 1 {
			sawNeighbor1 = true
			assert.InDelta(t, 1.0, output.FaceArea(cell0, f), 1e-9)
		}
	}
	assert.True(t, sawNeighbor1, "cell 0 should have a face tagged with neighbor id 1")

	cell1, err := d.Build(p1, true)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, output.Volume(cell1), 1e-9)
}

func TestBuildSingleParticleAllPeriodicClipsToOwnImages(t *testing.T) {
	t.Parallel()

	// spec.md §8 scenario 3: a single particle in an all-periodic unit
	// cube must clip against its own periodic images rather than stay
	// the uncut 8-vertex box, yielding volume 1.0, 6 faces, and every
	// face tagged with the particle's own id.
	g, err := container.New(
		container.WithBox(container.Box{
			AX: 0, BX: 1, AY: 0, BY: 1, AZ: 0, BZ: 1,
			PeriodicX: true, PeriodicY: true, PeriodicZ: true,
		}),
		container.WithGridDims(1, 1, 1),
	)
	require.NoError(t, err)

	p := container.Particle{ID: 0, X: 0.5, Y: 0.5, Z: 0.5}
	_, err = g.Put(p, false)
	require.NoError(t, err)

	d := compute.NewDriver(g, nil)
	cell, err := d.Build(p, true)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, output.Volume(cell), 1e-9)

	faces := output.Faces(cell)
	require.Len(t, faces, 6)
	for _, f := range faces {
		assert.True(t, f.HasNeighborID, "every face should carry a neighbor tag")
		assert.Equal(t, int64(0), f.NeighborID, "every face's neighbor should be the particle's own periodic image")
	}
}

func TestBuildOutsideDomainFails(t *testing.T) {
	t.Parallel()

	g, err := container.New(
		container.WithBox(container.Box{AX: 0, BX: 1, AY: 0, BY: 1, AZ: 0, BZ: 1}),
		container.WithGridDims(1, 1, 1),
	)
	require.NoError(t, err)

	d := compute.NewDriver(g, nil)
	_, err = d.Build(container.Particle{ID: 0, X: 5, Y: 5, Z: 5}, false)
	require.ErrorIs(t, err, compute.ErrOutsideDomain)
}

func TestFindVoronoiCellReturnsNearestParticle(t *testing.T) {
	t.Parallel()

	g, err := container.New(
		container.WithBox(container.Box{AX: 0, BX: 1, AY: 0, BY: 1, AZ: 0, BZ: 1}),
		container.WithGridDims(2, 2, 2),
	)
	require.NoError(t, err)

	p0 := container.Particle{ID: 0, X: 0.25, Y: 0.5, Z: 0.5}
	p1 := container.Particle{ID: 1, X: 0.75, Y: 0.5, Z: 0.5}
	_, err = g.Put(p0, false)
	require.NoError(t, err)
	_, err = g.Put(p1, false)
	require.NoError(t, err)

	d := compute.NewDriver(g, nil)

	nearest, err := d.FindVoronoiCell(0.1, 0.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), nearest.ID)

	nearest, err = d.FindVoronoiCell(0.9, 0.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), nearest.ID)
}
