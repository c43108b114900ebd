package routingmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schemcore/canvas"
	"github.com/katalvlaran/schemcore/routingmatrix"
)

func TestAddSegment_NilConnector(t *testing.T) {
	m := routingmatrix.New(10)
	err := m.AddSegment(nil, canvas.Segment{EndX: 10})
	assert.ErrorIs(t, err, routingmatrix.ErrNilConnector)
}

func TestAddSegment_RemoveSegment_RoundTrip(t *testing.T) {
	m := routingmatrix.New(10)
	c := &canvas.Connector{ID: "C1"}
	seg := canvas.Segment{StartX: 0, StartY: 0, EndX: 20, EndY: 0}

	require.NoError(t, m.AddSegment(c, seg))
	assert.Equal(t, 1, m.Count())

	hits := m.SegmentsAt(10, 0)
	require.Len(t, hits, 1)
	assert.Same(t, c, hits[0].Connector)

	m.RemoveSegment(c, seg)
	assert.Equal(t, 0, m.Count())
	assert.Empty(t, m.SegmentsAt(10, 0))
}

func TestRemoveSegment_AbsentIsNoop(t *testing.T) {
	m := routingmatrix.New(10)
	c := &canvas.Connector{ID: "C1"}
	m.RemoveSegment(c, canvas.Segment{EndX: 10})
	assert.Equal(t, 0, m.Count())
}

func TestAddSegment_SameOrientationFlipIsIdempotent(t *testing.T) {
	m := routingmatrix.New(10)
	c := &canvas.Connector{ID: "C1"}
	fwd := canvas.Segment{StartX: 0, StartY: 0, EndX: 10, EndY: 0}
	rev := canvas.Segment{StartX: 10, StartY: 0, EndX: 0, EndY: 0}

	require.NoError(t, m.AddSegment(c, fwd))
	require.NoError(t, m.AddSegment(c, rev))
	assert.Equal(t, 1, m.Count())
}

func TestRemoveAllForConnector(t *testing.T) {
	m := routingmatrix.New(10)
	c1 := &canvas.Connector{ID: "C1"}
	c2 := &canvas.Connector{ID: "C2"}
	require.NoError(t, m.AddSegment(c1, canvas.Segment{StartX: 0, StartY: 0, EndX: 10, EndY: 0}))
	require.NoError(t, m.AddSegment(c1, canvas.Segment{StartX: 10, StartY: 0, EndX: 10, EndY: 10}))
	require.NoError(t, m.AddSegment(c2, canvas.Segment{StartX: 20, StartY: 0, EndX: 30, EndY: 0}))

	m.RemoveAllForConnector(c1)
	assert.Equal(t, 1, m.Count())
	assert.Equal(t, []*canvas.Connector{c2}, m.ConnectorsAt(25, 0))
}

func TestConnectorsAt_DistinctOnly(t *testing.T) {
	m := routingmatrix.New(10)
	c := &canvas.Connector{ID: "C1"}
	require.NoError(t, m.AddSegment(c, canvas.Segment{StartX: 0, StartY: 0, EndX: 10, EndY: 0}))
	require.NoError(t, m.AddSegment(c, canvas.Segment{StartX: 5, StartY: 0, EndX: 5, EndY: 10}))

	conns := m.ConnectorsAt(5, 0)
	assert.Len(t, conns, 1)
}

func TestDenseView(t *testing.T) {
	m := routingmatrix.New(10)
	c := &canvas.Connector{ID: "C1"}
	require.NoError(t, m.AddSegment(c, canvas.Segment{StartX: 2, StartY: 3, EndX: 5, EndY: 3}))

	view := m.DenseView(10, 10)
	require.Len(t, view, 10)
	assert.True(t, view[3][2])
	assert.True(t, view[3][5])
	assert.False(t, view[3][6])
}

func TestSegments_SnapshotMatchesAdds(t *testing.T) {
	m := routingmatrix.New(10)
	c := &canvas.Connector{ID: "C1"}
	require.NoError(t, m.AddSegment(c, canvas.Segment{StartX: 0, StartY: 0, EndX: 10, EndY: 0}))
	require.NoError(t, m.AddSegment(c, canvas.Segment{StartX: 10, StartY: 0, EndX: 10, EndY: 10}))

	assert.Len(t, m.Segments(), 2)
}
