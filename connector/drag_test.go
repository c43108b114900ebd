package connector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schemcore/canvas"
	"github.com/katalvlaran/schemcore/connector"
	"github.com/katalvlaran/schemcore/router"
)

func newDragEngine() (*canvas.Drawn, *connector.Engine) {
	d, e := newEngine()
	e.DragRouter = router.Orthogonal{}
	e.FinalRouter = router.Orthogonal{}
	return d, e
}

// Dragging a lone segment whose ends are free (no junction, no port)
// needs no re-routing: it produces no drag node and no removed stubs,
// and its connector is still listed as affected.
func TestGenerateRoutingStartNodes_DanglingFreeEnd(t *testing.T) {
	d, e := newDragEngine()
	c := addConnWithSegs(d, e, []canvas.Segment{{StartX: 0, StartY: 0, EndX: 10, EndY: 0}})

	selected := []connector.SegRef{{Conn: c, Idx: 0}}
	plan := e.GenerateRoutingStartNodes(selected, map[*canvas.Object]bool{})

	require.Len(t, plan.DragNodes, 0)
	assert.Equal(t, []*canvas.Connector{c}, plan.ConnList)
	assert.Empty(t, plan.SegsToRemove)
}

// A junction endpoint becomes a drag node even though the selected
// segment's other branch is unselected.
func TestGenerateRoutingStartNodes_JunctionEndpoint(t *testing.T) {
	d, e := newDragEngine()
	c := addConnWithSegs(d, e, []canvas.Segment{
		{StartX: 0, StartY: 0, EndX: 10, EndY: 0},
		{StartX: 10, StartY: 0, EndX: 10, EndY: 10},
		{StartX: 10, StartY: 0, EndX: 20, EndY: 0},
	})

	selected := []connector.SegRef{{Conn: c, Idx: 1}}
	plan := e.GenerateRoutingStartNodes(selected, map[*canvas.Object]bool{})

	var anchors []canvas.Point
	for _, n := range plan.DragNodes {
		anchors = append(anchors, n.Anchor)
	}
	assert.Contains(t, anchors, canvas.Point{X: 10, Y: 0})
}

func TestRegenSegments_NoRouterConfigured(t *testing.T) {
	d, e := newEngine()
	c := addConnWithSegs(d, e, []canvas.Segment{{StartX: 0, StartY: 0, EndX: 10, EndY: 0}})
	selected := []connector.SegRef{{Conn: c, Idx: 0}}
	plan := e.GenerateRoutingStartNodes(selected, map[*canvas.Object]bool{})

	_, err := e.RegenSegments(plan, selected, plan.SegsToRemove, 0, 5)
	assert.ErrorIs(t, err, connector.ErrNoRouter)
}

func TestDragSegment_MovesAndReroutes(t *testing.T) {
	d, e := newDragEngine()
	c := addConnWithSegs(d, e, []canvas.Segment{{StartX: 0, StartY: 0, EndX: 10, EndY: 0}})

	selected := []connector.SegRef{{Conn: c, Idx: 0}}
	result, err := e.DragSegment(selected, map[*canvas.Object]bool{}, 0, 5)
	require.NoError(t, err)
	require.NotEmpty(t, result)

	assert.Len(t, d.Connectors(), 1)
}
