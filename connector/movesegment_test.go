package connector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schemcore/canvas"
	"github.com/katalvlaran/schemcore/connector"
)

// MoveSegment is the moveSegment entry point (§4.7): splitConnectorAtSegments
// then moveConn. Splitting a middle segment out of a multi-segment
// connector and then moving every resulting piece by the same offset keeps
// them mutually touching at the same relative coordinates, so assimilate
// (run inside MoveConn) re-fuses them into a single connector at the new
// location — the net effect of moving the whole connector, reached via the
// split-then-move composition rather than a direct MoveConn call.
func TestMoveSegment_SplitThenMove(t *testing.T) {
	d, e := newEngine()
	c, err := e.DrawConnector([]canvas.Segment{
		seg(0, 0, 10, 0),
		seg(10, 0, 10, 10),
		seg(10, 10, 20, 10),
	}, nil)
	require.NoError(t, err)
	require.Len(t, c.Segments, 3)

	result, err := e.MoveSegment([]connector.SegRef{{Conn: c, Idx: 1}}, 100, 0)
	require.NoError(t, err)

	// Every isolated piece was translated by the same offset, so they
	// still touch at the same relative endpoints and assimilate fuses
	// them back into one master connector.
	require.Len(t, result, 1)
	assert.Len(t, d.Connectors(), 1)

	master := result[0]
	require.Len(t, master.Segments, 3)
	assert.Empty(t, master.Junctions)

	var minX, maxX int
	minX, maxX = master.Segments[0].StartX, master.Segments[0].StartX
	for _, s := range master.Segments {
		for _, x := range []int{s.StartX, s.EndX} {
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
	}
	assert.Equal(t, 100, minX)
	assert.Equal(t, 120, maxX)

	// routing-matrix coherence (invariant 8): every surviving segment is
	// registered exactly once.
	assert.Equal(t, 3, e.Matrix.Count())
}

// Splitting out a segment that is not adjacent to the rest on either side
// still produces a connector set that moveConn can assimilate without
// error, even when the pieces do NOT reconverge (disjoint after the move).
func TestMoveSegment_DisjointPiecesStayApart(t *testing.T) {
	d, e := newEngine()
	c, err := e.DrawConnector([]canvas.Segment{
		seg(0, 0, 10, 0),
		seg(100, 100, 110, 100),
	}, nil)
	require.NoError(t, err)
	require.Len(t, c.Segments, 2)

	result, err := e.MoveSegment([]connector.SegRef{{Conn: c, Idx: 0}}, 5, 5)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Len(t, d.Connectors(), 2)
	for _, rc := range result {
		assert.Empty(t, rc.Junctions)
		require.Len(t, rc.Segments, 1)
	}
	assert.Equal(t, 2, e.Matrix.Count())
}
