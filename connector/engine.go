package connector

import (
	"github.com/katalvlaran/schemcore/canvas"
	"github.com/katalvlaran/schemcore/geom"
	"github.com/katalvlaran/schemcore/router"
	"github.com/katalvlaran/schemcore/routingmatrix"
)

// Engine bundles the canvas model, the routing matrix and the router
// pair (drag/final) the reconciliation algorithms operate over. It holds
// no interactive-operation state (op stack, transient drag nodes) — that
// belongs to editor.Canvas, which owns one Engine and drives it.
type Engine struct {
	Drawn  *canvas.Drawn
	Matrix *routingmatrix.Matrix

	GridX, GridY int
	SnapGrid     bool

	DragRouter  router.Router
	FinalRouter router.Router
}

// NewEngine returns an Engine over an existing canvas model and routing
// matrix. gridX/gridY and snapGrid implement the §6 Grid contract
// ("when snapGrid is false, effective grid is (1,1)").
func NewEngine(d *canvas.Drawn, m *routingmatrix.Matrix, gridX, gridY int, snapGrid bool) *Engine {
	return &Engine{Drawn: d, Matrix: m, GridX: gridX, GridY: gridY, SnapGrid: snapGrid}
}

// snap applies the engine's grid-snap policy to a coordinate pair.
func (e *Engine) snap(x, y int) (int, int) {
	gx, gy := e.GridX, e.GridY
	if !e.SnapGrid {
		gx, gy = 1, 1
	}
	return geom.SnapX(x, gx), geom.SnapY(y, gy)
}

// Snap exposes the engine's grid-snap policy to external packages (the
// editor, snapping object/port coordinates before the first mutation).
func (e *Engine) Snap(x, y int) (int, int) { return e.snap(x, y) }

// portsAt returns every port of the canvas model located exactly at (x,y).
func (e *Engine) portsAt(x, y int) []*canvas.Port {
	var out []*canvas.Port
	for _, p := range e.Drawn.Ports() {
		if p.X == x && p.Y == y {
			out = append(out, p)
		}
	}
	return out
}

// connectorsAt returns the distinct connectors with a segment whose
// interior or endpoint exactly contains (x,y), using the routing matrix
// as a candidate index and geom.PointOnSegment for the exact test.
// Zero-segment connectors (not indexed in the routing matrix) are found
// by a linear scan over every connector, comparing port coordinates.
func (e *Engine) connectorsAt(x, y int) []*canvas.Connector {
	seen := make(map[*canvas.Connector]struct{})
	var out []*canvas.Connector
	for _, entry := range e.Matrix.SegmentsAt(x, y) {
		if !geom.PointOnSegment(entry.Segment.StartX, entry.Segment.StartY, entry.Segment.EndX, entry.Segment.EndY, x, y) {
			continue
		}
		if _, ok := seen[entry.Connector]; !ok {
			seen[entry.Connector] = struct{}{}
			out = append(out, entry.Connector)
		}
	}
	for _, c := range e.Drawn.Connectors() {
		if !c.IsZeroSegment() {
			continue
		}
		for _, p := range c.Ports {
			if p.X == x && p.Y == y {
				if _, ok := seen[c]; !ok {
					seen[c] = struct{}{}
					out = append(out, c)
				}
				break
			}
		}
	}
	return out
}

// segmentsThrough returns the segments of connector c whose line passes
// through (x,y) with zero tolerance, via geom.PointOnSegment, restricted
// to c's own segment list (used by Phase B T-split, which only
// considers segments of the connector currently being repaired).
func segmentsThrough(c *canvas.Connector, x, y int) []int {
	var idxs []int
	for i, s := range c.Segments {
		if geom.PointOnSegment(s.StartX, s.StartY, s.EndX, s.EndY, x, y) {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// addSeg registers segment s of c with the routing matrix, skipping
// zero-segment connectors (§4.1 special case: not indexed).
func (e *Engine) addSeg(c *canvas.Connector, s canvas.Segment) {
	if c.IsZeroSegment() {
		return
	}
	_ = e.Matrix.AddSegment(c, s)
}

func (e *Engine) removeSeg(c *canvas.Connector, s canvas.Segment) {
	e.Matrix.RemoveSegment(c, s)
}
