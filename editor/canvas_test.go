package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schemcore/canvas"
	"github.com/katalvlaran/schemcore/editor"
	"github.com/katalvlaran/schemcore/hooks"
)

func TestNewCanvas_DefaultsSnapToGridOf10(t *testing.T) {
	c := editor.NewCanvas()
	o := c.AddObject(canvas.ShapeRect, 4, 4, 14, 16)
	assert.Equal(t, 0, o.StartX)
	assert.Equal(t, 0, o.StartY)
	assert.Equal(t, 10, o.EndX)
	assert.Equal(t, 20, o.EndY)
}

func TestNewCanvas_WithSnapGridOffDisablesSnapping(t *testing.T) {
	c := editor.NewCanvas(editor.WithSnapGrid(false))
	o := c.AddObject(canvas.ShapeRect, 7, 7, 13, 13)
	assert.Equal(t, 7, o.StartX)
	assert.Equal(t, 13, o.EndX)
}

func TestAddPort_LinksOverlappingPortsToConnector(t *testing.T) {
	c := editor.NewCanvas(editor.WithSnapGrid(false))
	obj := c.AddObject(canvas.ShapeRect, 0, -10, 10, 10)

	conn, err := c.Engine.DrawConnector([]canvas.Segment{{StartX: 0, StartY: 0, EndX: 10, EndY: 0}}, nil)
	require.NoError(t, err)

	p, err := c.AddPort(obj, 5, 0)
	require.NoError(t, err)

	assert.Len(t, c.Drawn.Connectors(), 2) // original wire split into two halves
	assert.True(t, p.HasConnector(conn) || len(p.Conn) == 2)
}

func TestAddPort_NilObject(t *testing.T) {
	c := editor.NewCanvas()
	_, err := c.AddPort(nil, 0, 0)
	assert.ErrorIs(t, err, editor.ErrNilObject)
}

func TestGroupObjects_AndUngroup(t *testing.T) {
	c := editor.NewCanvas()
	o1 := c.AddObject(canvas.ShapeRect, 0, 0, 10, 10)
	o2 := c.AddObject(canvas.ShapeRect, 20, 20, 30, 30)

	g := c.GroupObjects([]*canvas.Object{o1, o2})
	assert.Same(t, g, o1.Group)
	assert.Same(t, g, o2.Group)
	assert.Len(t, g.Members, 2)

	c.Ungroup(g)
	assert.Nil(t, o1.Group)
	assert.Nil(t, o2.Group)
	assert.Empty(t, g.Members)
}

func TestMoveObj_TranslatesPortAndAttachedSegment(t *testing.T) {
	c := editor.NewCanvas(editor.WithSnapGrid(false))
	obj := c.AddObject(canvas.ShapeRect, 0, -10, 10, 10)
	p, err := c.AddPort(obj, 0, 0)
	require.NoError(t, err)

	_, err = c.Engine.DrawConnector([]canvas.Segment{{StartX: 0, StartY: 0, EndX: 10, EndY: 0}}, nil)
	require.NoError(t, err)

	_, err = c.MoveObj(obj, 5, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, p.X)
	assert.Equal(t, 5, p.Y)

	var touchesNewPoint bool
	for _, cn := range c.Drawn.Connectors() {
		for _, s := range cn.Segments {
			if s.Start() == (canvas.Point{X: 5, Y: 5}) || s.End() == (canvas.Point{X: 5, Y: 5}) {
				touchesNewPoint = true
			}
		}
	}
	assert.True(t, touchesNewPoint)
}

func TestMoveObj_NilObject(t *testing.T) {
	c := editor.NewCanvas()
	_, err := c.MoveObj(nil, 1, 1)
	assert.ErrorIs(t, err, editor.ErrNilObject)
}

func TestBeginOp_FinishCancel_RestoresOrder(t *testing.T) {
	c := editor.NewCanvas()
	c1 := &canvas.Connector{}
	c2 := &canvas.Connector{}
	c.Drawn.AddConnector(c1)
	c.Drawn.AddConnector(c2)
	before := c.Drawn.Order()

	op := c.BeginOp(editor.OpMoveConn, nil)
	c.Drawn.MoveConnectorToMaxOrder(c1, 1)
	_, err := op.Finish(false)
	require.NoError(t, err)

	assert.Equal(t, before, c.Drawn.Order())
}

func TestFinish_NotTopOfStackErrors(t *testing.T) {
	c := editor.NewCanvas()
	op1 := c.BeginOp(editor.OpDrawConn, nil)
	_ = c.BeginOp(editor.OpMoveConn, nil)

	_, err := op1.Finish(false)
	assert.ErrorIs(t, err, editor.ErrOpNotTop)
}

func TestBeginOp_FiresHooks(t *testing.T) {
	c := editor.NewCanvas()
	var preFired, postFired bool
	c.Hooks.Register(hooks.MouseClickPre, "test", func(args ...interface{}) error {
		preFired = true
		return nil
	})
	c.Hooks.Register(hooks.MouseClickPost, "test", func(args ...interface{}) error {
		postFired = true
		return nil
	})

	op := c.BeginOp(editor.OpDrawConn, nil)
	assert.True(t, preFired)
	_, err := op.Finish(false)
	require.NoError(t, err)
	assert.True(t, postFired)
}
