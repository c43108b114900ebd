package router

import (
	"github.com/katalvlaran/schemcore/canvas"
	"github.com/katalvlaran/schemcore/geom"
	"github.com/katalvlaran/schemcore/routingmatrix"
)

// Orthogonal is the default Router: it first tries the two canonical
// two-segment L-shaped routes between (sx,sy) and (ex,ey) (horizontal
// then vertical, or vertical then horizontal), picking whichever bend
// point is not blocked by an existing segment of a different connector;
// if both L-shapes are blocked it falls back to a three-segment Z-route
// offset by one routing lane, which always succeeds against a bounded
// number of obstacles. Every appended segment is registered with m
// before GenerateSegments returns, satisfying the §6 router contract.
type Orthogonal struct {
	// Lane is the offset, in grid units, used by the Z-route fallback.
	// Zero defaults to routingmatrix.DefaultCellSize.
	Lane int
}

// GenerateSegments implements Router.
func (o Orthogonal) GenerateSegments(m *routingmatrix.Matrix, owner *canvas.Connector, sx, sy, ex, ey int, outSegs *[]canvas.Segment, jump JumpMode) (finX, finY int) {
	lane := o.Lane
	if lane <= 0 {
		lane = routingmatrix.DefaultCellSize
	}

	if sx == ex || sy == ey {
		// Already axis-aligned: a single segment suffices.
		seg := canvas.Segment{StartX: sx, StartY: sy, EndX: ex, EndY: ey}
		o.place(m, owner, seg, outSegs)
		return ex, ey
	}

	// Candidate bend points for the two L-shapes.
	bendHV := canvas.Point{X: ex, Y: sy} // horizontal then vertical
	bendVH := canvas.Point{X: sx, Y: ey} // vertical then horizontal

	if !o.blocked(m, owner, sx, sy, bendHV.X, bendHV.Y) && !o.blocked(m, owner, bendHV.X, bendHV.Y, ex, ey) {
		o.place(m, owner, canvas.Segment{StartX: sx, StartY: sy, EndX: bendHV.X, EndY: bendHV.Y}, outSegs)
		o.place(m, owner, canvas.Segment{StartX: bendHV.X, StartY: bendHV.Y, EndX: ex, EndY: ey}, outSegs)
		return ex, ey
	}
	if !o.blocked(m, owner, sx, sy, bendVH.X, bendVH.Y) && !o.blocked(m, owner, bendVH.X, bendVH.Y, ex, ey) {
		o.place(m, owner, canvas.Segment{StartX: sx, StartY: sy, EndX: bendVH.X, EndY: bendVH.Y}, outSegs)
		o.place(m, owner, canvas.Segment{StartX: bendVH.X, StartY: bendVH.Y, EndX: ex, EndY: ey}, outSegs)
		return ex, ey
	}

	// Both direct L-shapes are blocked: fall back to a three-segment
	// Z-route that steps out by one lane before crossing.
	midY := sy + lane
	p1 := canvas.Point{X: sx, Y: midY}
	p2 := canvas.Point{X: ex, Y: midY}
	o.place(m, owner, canvas.Segment{StartX: sx, StartY: sy, EndX: p1.X, EndY: p1.Y}, outSegs)
	o.place(m, owner, canvas.Segment{StartX: p1.X, StartY: p1.Y, EndX: p2.X, EndY: p2.Y}, outSegs)
	o.place(m, owner, canvas.Segment{StartX: p2.X, StartY: p2.Y, EndX: ex, EndY: ey}, outSegs)
	return ex, ey
}

// blocked samples the axis-aligned span (x1,y1)-(x2,y2) from its lower end
// in steps of max(1, length/8) and reports whether any sampled point lies
// on a segment of a connector other than owner. The lower end is always
// sampled, so a foreign segment touching it blocks the span; the upper end
// is sampled only when a step lands on it.
func (o Orthogonal) blocked(m *routingmatrix.Matrix, owner *canvas.Connector, x1, y1, x2, y2 int) bool {
	lo, hi := x1, x2
	if x1 == x2 {
		lo, hi = y1, y2
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	step := 1
	for v := lo; v <= hi; v += maxInt(1, (hi-lo)/8+step-1) {
		var qx, qy int
		if x1 == x2 {
			qx, qy = x1, v
		} else {
			qx, qy = v, y1
		}
		for _, e := range m.SegmentsAt(qx, qy) {
			if e.Connector == owner {
				continue
			}
			if geom.PointOnSegment(e.Segment.StartX, e.Segment.StartY, e.Segment.EndX, e.Segment.EndY, qx, qy) {
				return true
			}
		}
	}
	return false
}

func (o Orthogonal) place(m *routingmatrix.Matrix, owner *canvas.Connector, seg canvas.Segment, outSegs *[]canvas.Segment) {
	*outSegs = append(*outSegs, seg)
	_ = m.AddSegment(owner, seg)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
