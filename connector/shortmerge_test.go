package connector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schemcore/canvas"
	"github.com/katalvlaran/schemcore/connector"
)

func TestShortAndMergeConnector_NoOverlapIsNoop(t *testing.T) {
	d, e := newEngine()
	c := addConnWithSegs(d, e, []canvas.Segment{{StartX: 0, StartY: 0, EndX: 10, EndY: 0}})

	master, merged, err := e.ShortAndMergeConnector(c)
	require.NoError(t, err)
	assert.Same(t, c, master)
	assert.Equal(t, []string{c.ID}, merged)
	assert.Len(t, d.Connectors(), 1)
}

// Two touching connectors fuse into the one with the lower numeric ID
// suffix; the other is removed from the model.
func TestShortAndMergeConnector_AbsorbsTouchingConnector(t *testing.T) {
	d, e := newEngine()
	first := addConnWithSegs(d, e, []canvas.Segment{{StartX: 0, StartY: 0, EndX: 10, EndY: 0}})
	second := addConnWithSegs(d, e, []canvas.Segment{{StartX: 10, StartY: 0, EndX: 10, EndY: 10}})

	master, merged, err := e.ShortAndMergeConnector(second)
	require.NoError(t, err)
	require.NotNil(t, master)
	assert.ElementsMatch(t, []string{first.ID, second.ID}, merged)
	assert.Len(t, d.Connectors(), 1)
	assert.Len(t, master.Segments, 2)

	_, stillThere := d.Connector(second.ID)
	assert.False(t, stillThere)
}

func TestShortAndMergeConnector_NilConnector(t *testing.T) {
	_, e := newEngine()
	_, _, err := e.ShortAndMergeConnector(nil)
	assert.ErrorIs(t, err, connector.ErrNilConnector)
}
