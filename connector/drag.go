package connector

import (
	"sort"

	"github.com/katalvlaran/schemcore/canvas"
	"github.com/katalvlaran/schemcore/router"
)

// SegRef names one segment by its owning connector and current slice
// index. Indices are only stable within a single drag frame's bookkeeping
// (see RegenSegments); callers must not cache a SegRef across a
// reconciliation pass that mutates Segments.
type SegRef struct {
	Conn *canvas.Connector
	Idx  int
}

// DragNode is an anchor coordinate from which an orthogonal route must be
// regenerated each frame of a segment drag (§4.6 glossary: Drag node).
// TargetIsStart selects which endpoint of FromSeg is tracked as the live
// routing target each frame (the endpoint that moves with the drag).
type DragNode struct {
	Anchor        canvas.Point
	Conn          *canvas.Connector
	FromSeg       SegRef
	TargetIsStart bool
}

// DragPlan is the output of GenerateRoutingStartNodes: the anchors to
// re-route from, the single-use stub segments to delete, and the set of
// affected connectors.
type DragPlan struct {
	DragNodes    []DragNode
	SegsToRemove []SegRef
	ConnList     []*canvas.Connector
}

// GenerateRoutingStartNodes classifies every endpoint of every selected
// segment per §4.6: a junction or unowned port becomes a drag node; a
// lone adjacent segment chains the classification outward (and is itself
// absorbed into the selection if everything past it is already
// selected, or marked for removal otherwise); a port-owned dead end
// means the wire simply moves with its port.
func (e *Engine) GenerateRoutingStartNodes(selected []SegRef, objList map[*canvas.Object]bool) *DragPlan {
	selSet := make(map[SegRef]bool, len(selected))
	for _, r := range selected {
		selSet[r] = true
	}

	plan := &DragPlan{}
	connSeen := make(map[*canvas.Connector]bool)
	dragNodeSeen := make(map[canvas.Point]bool)
	removeSeen := make(map[SegRef]bool)

	addConn := func(c *canvas.Connector) {
		if !connSeen[c] {
			connSeen[c] = true
			plan.ConnList = append(plan.ConnList, c)
		}
	}
	portsOwned := func(pts []*canvas.Port) bool {
		for _, p := range pts {
			if p.Obj == nil || !objList[p.Obj] {
				return false
			}
		}
		return true
	}
	addDragNode := func(pt canvas.Point, conn *canvas.Connector, ref SegRef, fromStart bool) {
		if !dragNodeSeen[pt] {
			dragNodeSeen[pt] = true
			plan.DragNodes = append(plan.DragNodes, DragNode{Anchor: pt, Conn: conn, FromSeg: ref, TargetIsStart: fromStart})
		}
		addConn(conn)
	}

	var classify func(conn *canvas.Connector, pt canvas.Point, excludeIdx int, refSeg SegRef, fromStart bool)
	classify = func(conn *canvas.Connector, pt canvas.Point, excludeIdx int, refSeg SegRef, fromStart bool) {
		var adj []int
		for i, s := range conn.Segments {
			if i == excludeIdx {
				continue
			}
			if s.Start() == pt || s.End() == pt {
				adj = append(adj, i)
			}
		}
		prts := e.portsAt(pt.X, pt.Y)
		allOwned := portsOwned(prts)

		adjAllSelected := true
		for _, i := range adj {
			if !selSet[SegRef{conn, i}] {
				adjAllSelected = false
				break
			}
		}

		if adjAllSelected && len(adj) != 1 {
			if len(adj) == 0 && len(prts) > 0 && allOwned {
				addConn(conn) // wire moves with its port: no drag node
			}
			return
		}

		if len(adj) >= 2 || (len(prts) > 0 && !allOwned) {
			addDragNode(pt, conn, refSeg, fromStart)
			return
		}

		// len(adj) == 1: chain through t.
		t := adj[0]
		tSeg := conn.Segments[t]
		other := tSeg.Start()
		if other == pt {
			other = tSeg.End()
		}

		var adj2 []int
		for i, s := range conn.Segments {
			if i == t {
				continue
			}
			if s.Start() == other || s.End() == other {
				adj2 = append(adj2, i)
			}
		}
		allSelected2 := len(adj2) > 0
		for _, i := range adj2 {
			if !selSet[SegRef{conn, i}] {
				allSelected2 = false
				break
			}
		}

		if allSelected2 {
			selSet[SegRef{conn, t}] = true
			classify(conn, other, t, refSeg, fromStart)
			return
		}

		addDragNode(other, conn, refSeg, fromStart)
		tref := SegRef{conn, t}
		if !removeSeen[tref] {
			removeSeen[tref] = true
			plan.SegsToRemove = append(plan.SegsToRemove, tref)
		}
	}

	for _, ref := range selected {
		addConn(ref.Conn)
		s := ref.Conn.Segments[ref.Idx]
		classify(ref.Conn, s.Start(), ref.Idx, ref, false)
		classify(ref.Conn, s.End(), ref.Idx, ref, true)
	}

	return plan
}

// RegenSegments performs one frame of interactive drag regeneration
// (§4.6 regenSegments): it deletes last frame's router-generated stubs,
// applies the frame's (dx,dy) offset to every selected segment, then
// re-routes from every drag node to its reference segment's live moved
// endpoint. It returns the stub SegRefs to delete on the next frame (or
// at drag end).
func (e *Engine) RegenSegments(plan *DragPlan, selected []SegRef, toRemove []SegRef, dx, dy int) ([]SegRef, error) {
	if e.DragRouter == nil {
		return nil, ErrNoRouter
	}

	byConn := make(map[*canvas.Connector][]int)
	for _, r := range toRemove {
		byConn[r.Conn] = append(byConn[r.Conn], r.Idx)
	}
	for conn, idxs := range byConn {
		sort.Sort(sort.Reverse(sort.IntSlice(idxs)))
		for _, idx := range idxs {
			if idx < 0 || idx >= len(conn.Segments) {
				continue
			}
			e.removeSeg(conn, conn.Segments[idx])
			conn.Segments = append(conn.Segments[:idx], conn.Segments[idx+1:]...)
		}
	}

	for _, ref := range selected {
		seg := ref.Conn.Segments[ref.Idx]
		e.removeSeg(ref.Conn, seg)
		seg.StartX += dx
		seg.StartY += dy
		seg.EndX += dx
		seg.EndY += dy
		ref.Conn.Segments[ref.Idx] = seg
		e.addSeg(ref.Conn, seg)
	}

	var next []SegRef
	for _, node := range plan.DragNodes {
		conn := node.Conn
		for _, s := range conn.Segments {
			e.Matrix.RemoveSegment(conn, s)
		}

		fs := node.FromSeg.Conn.Segments[node.FromSeg.Idx]
		target := fs.End()
		if node.TargetIsStart {
			target = fs.Start()
		}

		var outSegs []canvas.Segment
		e.DragRouter.GenerateSegments(e.Matrix, conn, node.Anchor.X, node.Anchor.Y, target.X, target.Y, &outSegs, router.JumpDefault)

		for _, s := range conn.Segments {
			e.addSeg(conn, s)
		}

		base := len(conn.Segments)
		conn.Segments = append(conn.Segments, outSegs...)
		for i := range outSegs {
			next = append(next, SegRef{Conn: conn, Idx: base + i})
		}
	}

	return next, nil
}

// DragSegment runs a complete drag lifecycle in one call: classification,
// a single frame of movement to (dx,dy) routed with FinalRouter (this
// frame is the release frame), then reconciliation via
// Assimilate(plan.ConnList) (§4.6: "on drag completion the engine
// calls assimilate(connList)"). Interactive callers driving multiple
// intermediate frames should call GenerateRoutingStartNodes once and
// RegenSegments per pointer-move themselves, calling DragSegment's tail
// (Assimilate) only on release.
func (e *Engine) DragSegment(selected []SegRef, objList map[*canvas.Object]bool, dx, dy int) ([]*canvas.Connector, error) {
	if e.DragRouter == nil || e.FinalRouter == nil {
		return nil, ErrNoRouter
	}
	plan := e.GenerateRoutingStartNodes(selected, objList)
	dragRouter := e.DragRouter
	e.DragRouter = e.FinalRouter
	_, err := e.RegenSegments(plan, selected, plan.SegsToRemove, dx, dy)
	e.DragRouter = dragRouter
	if err != nil {
		return nil, err
	}
	return e.Assimilate(plan.ConnList)
}
