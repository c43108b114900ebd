package canvas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schemcore/canvas"
)

func TestAddObject_AssignsIDAndOrder(t *testing.T) {
	d := canvas.NewDrawn()
	o1 := d.AddObject(canvas.ShapeRect, 0, 0, 10, 10)
	o2 := d.AddObject(canvas.ShapeEllipse, 20, 20, 30, 30)

	assert.NotEqual(t, o1.ID, o2.ID)
	assert.Equal(t, 0, o1.Order)
	assert.Equal(t, 1, o2.Order)
	assert.Len(t, d.Objects(), 2)
}

func TestAddPort_AppendsToObject(t *testing.T) {
	d := canvas.NewDrawn()
	o := d.AddObject(canvas.ShapeRect, 0, 0, 10, 10)
	p := d.AddPort(o, 5, 0)

	assert.Same(t, o, p.Obj)
	assert.Len(t, o.Ports, 1)
	got, ok := d.Port(p.ID)
	require.True(t, ok)
	assert.Same(t, p, got)
}

func TestAddConnector_AssignsIDAndAppendsOrder(t *testing.T) {
	d := canvas.NewDrawn()
	d.AddObject(canvas.ShapeRect, 0, 0, 10, 10)
	c := &canvas.Connector{Segments: []canvas.Segment{{StartX: 0, StartY: 0, EndX: 10, EndY: 0}}}
	d.AddConnector(c)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, 1, c.Order)
	order := d.Order()
	assert.Equal(t, canvas.KindConnector, order[1].Kind)
	assert.Equal(t, c.ID, order[1].ConnectorID)
}

func TestRemoveConnector_CompactsOrderAndRelabels(t *testing.T) {
	d := canvas.NewDrawn()
	c1 := &canvas.Connector{}
	c2 := &canvas.Connector{}
	d.AddConnector(c1)
	d.AddConnector(c2)

	d.RemoveConnector(c1)

	_, ok := d.Connector(c1.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, c2.Order)
	assert.Len(t, d.Order(), 1)
}

func TestInsertConnectorAt_PreservesPosition(t *testing.T) {
	d := canvas.NewDrawn()
	c1 := &canvas.Connector{}
	c2 := &canvas.Connector{}
	c3 := &canvas.Connector{}
	d.AddConnector(c1)
	d.AddConnector(c2)

	d.InsertConnectorAt(c3, 1)

	order := d.Order()
	require.Len(t, order, 3)
	assert.Equal(t, c1.ID, order[0].ConnectorID)
	assert.Equal(t, c3.ID, order[1].ConnectorID)
	assert.Equal(t, c2.ID, order[2].ConnectorID)
	assert.Equal(t, 1, c3.Order)
	assert.Equal(t, 2, c2.Order)
}

func TestMoveConnectorToMaxOrder(t *testing.T) {
	d := canvas.NewDrawn()
	c1 := &canvas.Connector{}
	c2 := &canvas.Connector{}
	c3 := &canvas.Connector{}
	d.AddConnector(c1)
	d.AddConnector(c2)
	d.AddConnector(c3)

	d.MoveConnectorToMaxOrder(c1, 2)

	order := d.Order()
	assert.Equal(t, c2.ID, order[0].ConnectorID)
	assert.Equal(t, c3.ID, order[1].ConnectorID)
	assert.Equal(t, c1.ID, order[2].ConnectorID)
}

func TestSetOrder_ReplacesWholesale(t *testing.T) {
	d := canvas.NewDrawn()
	c1 := &canvas.Connector{}
	c2 := &canvas.Connector{}
	d.AddConnector(c1)
	d.AddConnector(c2)
	backup := d.Order()

	d.MoveConnectorToMaxOrder(c1, 1)
	assert.Equal(t, c2.ID, d.Order()[0].ConnectorID)

	d.SetOrder(backup)
	assert.Equal(t, c1.ID, d.Order()[0].ConnectorID)
	assert.Equal(t, 0, c1.Order)
	assert.Equal(t, 1, c2.Order)
}

func TestConnectorIndex_AbsentIsNegativeOne(t *testing.T) {
	d := canvas.NewDrawn()
	c := &canvas.Connector{ID: "C999"}
	assert.Equal(t, -1, d.ConnectorIndex(c))
}

func TestSegment_SameCoords_OrientationIndependent(t *testing.T) {
	a := canvas.Segment{StartX: 0, StartY: 0, EndX: 10, EndY: 0}
	b := canvas.Segment{StartX: 10, StartY: 0, EndX: 0, EndY: 0}
	c := canvas.Segment{StartX: 0, StartY: 0, EndX: 10, EndY: 1}
	assert.True(t, a.SameCoords(b))
	assert.False(t, a.SameCoords(c))
}

func TestConnector_IsZeroSegment(t *testing.T) {
	zero := &canvas.Connector{}
	nonzero := &canvas.Connector{Segments: []canvas.Segment{{EndX: 1}}}
	assert.True(t, zero.IsZeroSegment())
	assert.False(t, nonzero.IsZeroSegment())
}
