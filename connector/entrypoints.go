package connector

import (
	"sort"

	"github.com/katalvlaran/schemcore/canvas"
)

// DrawConnector is the non-interactive drawConnector entry point (§4.7).
// It grid-snaps every input segment, enforces the bit-precise validation
// rules (no endpoint of one segment may sit strictly interior to another
// segment of the same call — the caller must pre-split), registers a new
// Connector, and assimilates it. Go's int-valued Point/Segment model
// makes ErrNonIntegerCoordinate unreachable in practice (snapping an int
// always yields an int); the error is kept for interface parity with the
// source contract.
func (e *Engine) DrawConnector(segs []canvas.Segment, vattr *canvas.VisAttr) (*canvas.Connector, error) {
	if len(segs) == 0 {
		return nil, ErrEmptySegmentList
	}

	snapped := make([]canvas.Segment, len(segs))
	for i, s := range segs {
		sx, sy := e.snap(s.StartX, s.StartY)
		ex, ey := e.snap(s.EndX, s.EndY)
		snapped[i] = canvas.Segment{StartX: sx, StartY: sy, EndX: ex, EndY: ey, VAttr: s.VAttr}
	}

	for i, a := range snapped {
		for j, b := range snapped {
			if i == j {
				continue
			}
			if interiorPoint(b, a.Start()) || interiorPoint(b, a.End()) {
				return nil, ErrMidSegmentTouch
			}
		}
	}

	c := &canvas.Connector{Segments: snapped, VAttr: vattr}
	e.Drawn.AddConnector(c)
	for _, s := range snapped {
		e.addSeg(c, s)
	}

	result, err := e.Assimilate([]*canvas.Connector{c})
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return c, nil
	}
	return result[0], nil
}

// MoveConn translates every segment of every connector in list by
// (offx, offy), re-snapping and re-indexing each, then assimilates.
func (e *Engine) MoveConn(list []*canvas.Connector, offx, offy int) ([]*canvas.Connector, error) {
	for _, c := range list {
		for i, s := range c.Segments {
			e.removeSeg(c, s)
			sx, sy := e.snap(s.StartX+offx, s.StartY+offy)
			ex, ey := e.snap(s.EndX+offx, s.EndY+offy)
			s.StartX, s.StartY, s.EndX, s.EndY = sx, sy, ex, ey
			c.Segments[i] = s
			e.addSeg(c, s)
		}
	}
	return e.Assimilate(list)
}

// RemoveConn deletes c from the model: its segments are unindexed, its
// ports detached, and the connector removed from drawn.conn and the
// order array.
func (e *Engine) RemoveConn(c *canvas.Connector) error {
	if c == nil {
		return ErrNilConnector
	}
	for _, s := range c.Segments {
		e.removeSeg(c, s)
	}
	for _, p := range append([]*canvas.Port{}, c.Ports...) {
		removeConnFrom(p, c)
	}
	e.Drawn.RemoveConnector(c)
	return nil
}

// MoveSegment is the moveSegment entry point (§4.7): splitConnectorAtSegments
// then moveConn. It isolates segList into its own connector(s) via
// SplitConnectorAtSegments, then translates every resulting connector by
// (offx, offy) via MoveConn, so the remainder moves along with the
// selected segments; pieces that still touch are fused back together by
// the Assimilate run inside MoveConn.
func (e *Engine) MoveSegment(segList []SegRef, offx, offy int) ([]*canvas.Connector, error) {
	split, err := e.SplitConnectorAtSegments(segList)
	if err != nil {
		return nil, err
	}
	return e.MoveConn(split, offx, offy)
}

// componentsOf partitions segs by endpoint adjacency, restricted to the
// indices whose selSet membership equals wantSelected, returning each
// connected component as its own segment slice.
func componentsOf(segs []canvas.Segment, selSet map[int]bool, wantSelected bool) [][]canvas.Segment {
	var idxs []int
	for i := range segs {
		if selSet[i] == wantSelected {
			idxs = append(idxs, i)
		}
	}
	if len(idxs) == 0 {
		return nil
	}

	uf := newUnionFind(len(idxs))
	buckets := make(map[canvas.Point][]int)
	for k, i := range idxs {
		s := segs[i]
		buckets[s.Start()] = append(buckets[s.Start()], k)
		buckets[s.End()] = append(buckets[s.End()], k)
	}
	for _, ks := range buckets {
		for x := 1; x < len(ks); x++ {
			uf.union(ks[0], ks[x])
		}
	}

	groups := make(map[int][]canvas.Segment)
	var roots []int
	for k, i := range idxs {
		r := uf.find(k)
		if _, ok := groups[r]; !ok {
			roots = append(roots, r)
		}
		groups[r] = append(groups[r], segs[i])
	}
	sort.Ints(roots)
	out := make([][]canvas.Segment, 0, len(roots))
	for _, r := range roots {
		out = append(out, groups[r])
	}
	return out
}

// SplitConnectorAtSegments separates the given segments into their own
// connectors (§4.7): it groups by owning connector, partitions each
// connector's segments into the selected set (connM) and the remainder
// (connNM) — each itself split into its adjacency components — installs
// every resulting connector, disconnects the original's ports and
// reconciles ports against each result.
func (e *Engine) SplitConnectorAtSegments(segList []SegRef) ([]*canvas.Connector, error) {
	byConn := make(map[*canvas.Connector][]int)
	var order []*canvas.Connector
	for _, r := range segList {
		if _, ok := byConn[r.Conn]; !ok {
			order = append(order, r.Conn)
		}
		byConn[r.Conn] = append(byConn[r.Conn], r.Idx)
	}

	var results []*canvas.Connector
	for _, conn := range order {
		idxs := byConn[conn]
		sort.Sort(sort.Reverse(sort.IntSlice(idxs)))
		selSet := make(map[int]bool, len(idxs))
		for _, i := range idxs {
			selSet[i] = true
		}

		segs := conn.Segments
		for _, s := range segs {
			e.Matrix.RemoveSegment(conn, s)
		}

		mGroups := componentsOf(segs, selSet, true)
		nmGroups := componentsOf(segs, selSet, false)

		ports := append([]*canvas.Port{}, conn.Ports...)
		for _, p := range ports {
			detachPort(p, conn)
		}

		var built []*canvas.Connector
		for _, g := range append(append([][]canvas.Segment{}, mGroups...), nmGroups...) {
			nc := &canvas.Connector{Segments: g, Junctions: junctionsOf(g), VAttr: conn.VAttr.Clone()}
			for _, s := range g {
				e.addSeg(nc, s)
			}
			for _, p := range ports {
				for _, s := range g {
					if s.Start() == (canvas.Point{X: p.X, Y: p.Y}) || s.End() == (canvas.Point{X: p.X, Y: p.Y}) {
						linkPort(p, nc)
						break
					}
				}
			}
			built = append(built, nc)
		}

		for _, nc := range built {
			e.Drawn.AddConnector(nc)
			if err := e.ConnectOverlapPortsToConnector(nc, nc.Ports); err != nil {
				return nil, err
			}
		}
		e.Drawn.RemoveConnector(conn)

		results = append(results, built...)
	}

	return results, nil
}
