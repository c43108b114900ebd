package connector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schemcore/canvas"
	"github.com/katalvlaran/schemcore/connector"
)

func TestSplitConnectorAtCoor_MidSegment(t *testing.T) {
	d, e := newEngine()
	c := addConnWithSegs(d, e, []canvas.Segment{{StartX: 0, StartY: 0, EndX: 10, EndY: 0}})

	parts, err := e.SplitConnectorAtCoor(c, 5, 0)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Same(t, c, parts[0])
	assert.Equal(t, 0, parts[0].Segments[0].StartX)
	assert.Equal(t, 5, parts[0].Segments[0].EndX)
	assert.Equal(t, 5, parts[1].Segments[0].StartX)
	assert.Equal(t, 10, parts[1].Segments[0].EndX)
}

// Splitting at a junction with three branches yields three partitions,
// one per branch, since the split coordinate is excluded as an
// adjacency edge in every direction.
func TestSplitConnectorAtCoor_JunctionYieldsThreeParts(t *testing.T) {
	d, e := newEngine()
	c := addConnWithSegs(d, e, []canvas.Segment{
		{StartX: 0, StartY: 0, EndX: 5, EndY: 0},
		{StartX: 5, StartY: 0, EndX: 10, EndY: 0},
		{StartX: 5, StartY: 0, EndX: 5, EndY: 10},
	})

	parts, err := e.SplitConnectorAtCoor(c, 5, 0)
	require.NoError(t, err)
	assert.Len(t, parts, 3)
	for _, p := range parts {
		assert.Len(t, p.Segments, 1)
	}
}

func TestSplitConnectorAtCoor_CoordNotOnConnector(t *testing.T) {
	d, e := newEngine()
	c := addConnWithSegs(d, e, []canvas.Segment{{StartX: 0, StartY: 0, EndX: 10, EndY: 0}})

	_, err := e.SplitConnectorAtCoor(c, 100, 100)
	assert.ErrorIs(t, err, connector.ErrCoordNotOnConnector)
}

func TestSplitConnectorAtCoor_ZeroSegmentRejected(t *testing.T) {
	d, e := newEngine()
	c := &canvas.Connector{}
	d.AddConnector(c)

	_, err := e.SplitConnectorAtCoor(c, 0, 0)
	assert.ErrorIs(t, err, connector.ErrCoordNotOnConnector)
}

func TestSplitConnectorAtCoor_NilConnector(t *testing.T) {
	_, e := newEngine()
	_, err := e.SplitConnectorAtCoor(nil, 0, 0)
	assert.ErrorIs(t, err, connector.ErrNilConnector)
}
