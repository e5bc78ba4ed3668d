package voronoicell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voro3d/geom"
	"github.com/katalvlaran/voro3d/voronoicell"
)

func assertBackLinkConsistent(t *testing.T, c *voronoicell.Cell) {
	t.Helper()
	for i := 0; i < c.NVertices(); i++ {
		for k := 0; k < c.Order(i); k++ {
			j := c.Neighbor(i, k)
			s := c.BackLink(i, k)
			require.Equal(t, i, c.Neighbor(j, s), "back-link mismatch at vertex %d slot %d", i, k)
		}
	}
}

func TestNewBoxHasEightVerticesOrderThree(t *testing.T) {
	t.Parallel()

	box := voronoicell.Box{AX: 0, BX: 1, AY: 0, BY: 1, AZ: 0, BZ: 1}
	c := voronoicell.NewBox(box, geom.Vec{X: 0.5, Y: 0.5, Z: 0.5}, false)

	require.True(t, c.Alive())
	require.Equal(t, 8, c.NVertices())
	for i := 0; i < 8; i++ {
		assert.Equal(t, 3, c.Order(i))
	}
	assertBackLinkConsistent(t, c)
}

func TestClipBisectorSplitsCubeInHalf(t *testing.T) {
	t.Parallel()

	box := voronoicell.Box{AX: 0, BX: 1, AY: 0, BY: 1, AZ: 0, BZ: 1}
	// Particle at (0.25, 0.5, 0.5); neighbor at world (0.75, 0.5, 0.5), so
	// u is the world delta (0.5,0,0) and w=|u|^2/4, matching the
	// u.p<=2w=|u|^2/2 bisector the driver itself computes in search.go.
	// The bisector sits at world x=0.5, local x=0.25.
	c := voronoicell.NewBox(box, geom.Vec{X: 0.25, Y: 0.5, Z: 0.5}, true)

	kept := c.Clip(0.5, 0, 0, 0.0625, 7, true)
	require.True(t, kept)
	require.NoError(t, c.Err())
	assertBackLinkConsistent(t, c)

	for i := 0; i < c.NVertices(); i++ {
		v := c.Vertex(i)
		assert.LessOrEqual(t, v.X, 0.25+geom.Epsilon)
	}
}

func TestClipAnnihilatesWhenFullyBeyondPlane(t *testing.T) {
	t.Parallel()

	box := voronoicell.Box{AX: 0, BX: 1, AY: 0, BY: 1, AZ: 0, BZ: 1}
	c := voronoicell.NewBox(box, geom.Vec{X: 0.5, Y: 0.5, Z: 0.5}, false)

	// A plane with w far negative puts every vertex on the Up side.
	kept := c.Clip(1, 0, 0, -10, 1, false)
	assert.False(t, kept)
	assert.False(t, c.Alive())
}

func TestClipOnPlaneVertexKeepsGenuineDownNeighbor(t *testing.T) {
	t.Parallel()

	box := voronoicell.Box{AX: 0, BX: 1, AY: 0, BY: 1, AZ: 0, BZ: 1}
	c := voronoicell.NewBox(box, geom.Vec{X: 0.5, Y: 0.5, Z: 0.5}, false)

	// Plane x+y-2z=0 passes exactly through corners (-.5,-.5,-.5) and
	// (.5,.5,.5) (old vertices 0 and 6), leaving each an On-plane vertex
	// with a genuinely mixed ring of Up and Down neighbors. This is the
	// on-plane case whose neighbor-ring resolution must not confuse a
	// remapped NEW vertex index with an unrelated OLD vertex index that
	// happens to classify Up in the same clip.
	kept := c.Clip(1, 1, -2, 0, 1, false)
	require.True(t, kept)
	require.NoError(t, c.Err())
	assertBackLinkConsistent(t, c)

	require.Equal(t, 7, c.NVertices())

	// Old vertex 0 survives at new index 0 (first in compaction order).
	// Its only genuine pre-existing neighbor, old vertex 4 (Down, new
	// index 1), must still be linked — not silently dropped alongside
	// the two Up neighbors old vertices 1 and 3.
	require.Equal(t, 3, c.Order(0))
	assert.Contains(t, []int{c.Neighbor(0, 0), c.Neighbor(0, 1), c.Neighbor(0, 2)}, 1)

	// Old vertex 6 survives at new index 3. Its two genuine Down
	// neighbors (old vertices 5 and 7, new indices 2 and 4) must both
	// still be linked.
	require.Equal(t, 4, c.Order(3))
	nbrs6 := []int{c.Neighbor(3, 0), c.Neighbor(3, 1), c.Neighbor(3, 2), c.Neighbor(3, 3)}
	assert.Contains(t, nbrs6, 2)
	assert.Contains(t, nbrs6, 4)
}

func TestClipNoOpWhenPlaneDoesNotCut(t *testing.T) {
	t.Parallel()

	box := voronoicell.Box{AX: 0, BX: 1, AY: 0, BY: 1, AZ: 0, BZ: 1}
	c := voronoicell.NewBox(box, geom.Vec{X: 0.5, Y: 0.5, Z: 0.5}, false)

	kept := c.Clip(1, 0, 0, 10, 1, false)
	assert.True(t, kept)
	assert.Equal(t, 8, c.NVertices())
}
