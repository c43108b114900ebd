package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/schemcore/geom"
)

func TestPointOnSegment(t *testing.T) {
	assert.True(t, geom.PointOnSegment(0, 0, 10, 0, 5, 0))
	assert.True(t, geom.PointOnSegment(0, 0, 10, 0, 0, 0))
	assert.True(t, geom.PointOnSegment(0, 0, 10, 0, 10, 0))
	assert.False(t, geom.PointOnSegment(0, 0, 10, 0, 11, 0))
	assert.False(t, geom.PointOnSegment(0, 0, 10, 0, 5, 1))
	assert.True(t, geom.PointOnSegment(0, 0, 0, 10, 0, 5))
}

func TestPointNearSegment(t *testing.T) {
	assert.True(t, geom.PointNearSegment(0, 0, 10, 0, 5, 2, 2))
	assert.False(t, geom.PointNearSegment(0, 0, 10, 0, 5, 3, 2))
	assert.True(t, geom.PointNearSegment(0, 0, 10, 0, 5, 0, 0)) // res==0 degenerates to exact
	assert.False(t, geom.PointNearSegment(0, 0, 10, 0, 5, 1, 0))
	assert.True(t, geom.PointNearSegment(5, 5, 5, 5, 6, 6, 2)) // degenerate point segment
}

func TestSnapXY(t *testing.T) {
	assert.Equal(t, 10, geom.SnapX(12, 10))
	assert.Equal(t, 10, geom.SnapX(14, 10))
	assert.Equal(t, 20, geom.SnapX(15, 10))
	assert.Equal(t, 0, geom.SnapX(4, 10))
	assert.Equal(t, -10, geom.SnapX(-12, 10))

	assert.Equal(t, 7, geom.SnapY(7, 0)) // grid<=1: no snapping
	assert.Equal(t, 7, geom.SnapY(7, 1))
}
