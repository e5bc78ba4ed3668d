package wall_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voro3d/wall"
)

// fakeWall is a trivial half-space wall used only to exercise Registry.
type fakeWall struct {
	clipped []float64 // records the w argument of every Clip call it forwards
	keep    bool
}

func (f *fakeWall) PointInside(x, y, z float64) bool { return x >= 0 }

func (f *fakeWall) CutCell(c wall.Clippable, px, py, pz float64) bool {
	f.clipped = append(f.clipped, 0)
	return c.Clip(1, 0, 0, 0, -1, false)
}

type fakeCell struct{ keep bool }

func (c *fakeCell) Clip(ux, uy, uz, w float64, neighborID int64, tagged bool) bool {
	return c.keep
}

func TestRegistryAssignsNegativeIDsInOrder(t *testing.T) {
	t.Parallel()

	reg := wall.NewRegistry()
	id1 := reg.Add(&fakeWall{})
	id2 := reg.Add(&fakeWall{})

	assert.Equal(t, int64(-1), id1)
	assert.Equal(t, int64(-2), id2)
	require.Equal(t, 2, reg.Len())

	entries := reg.Entries()
	assert.Equal(t, int64(-1), entries[0].ID)
	assert.Equal(t, int64(-2), entries[1].ID)
}

func TestRegistryPointInside(t *testing.T) {
	t.Parallel()

	reg := wall.NewRegistry()
	assert.True(t, reg.PointInside(-5, 0, 0), "empty registry constrains nothing")

	reg.Add(&fakeWall{})
	assert.True(t, reg.PointInside(1, 0, 0))
	assert.False(t, reg.PointInside(-1, 0, 0))
}

func TestRegistryCutCellStopsOnAnnihilation(t *testing.T) {
	t.Parallel()

	reg := wall.NewRegistry()
	reg.Add(&fakeWall{})
	reg.Add(&fakeWall{})

	assert.True(t, reg.CutCell(&fakeCell{keep: true}, 0, 0, 0))
	assert.False(t, reg.CutCell(&fakeCell{keep: false}, 0, 0, 0))
}
