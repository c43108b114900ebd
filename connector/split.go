package connector

import (
	"sort"

	"github.com/katalvlaran/schemcore/canvas"
)

// unionFind is a tiny disjoint-set helper local to split partitioning.
type unionFind struct{ parent []int }

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

// SplitConnectorAtCoor partitions c by the equivalence relation "reachable
// by traversing segments without crossing (x,y) and without passing
// through a port" (§4.4). It returns ≥1 connectors; the first reuses c's
// ID and *canvas.Connector identity, the rest are freshly allocated (with
// no ID assigned — the caller registers them via Drawn.AddConnector /
// InsertConnectorAt). Port back-references are updated in place; z-order
// and drawn.conn membership are explicitly the caller's responsibility.
func (e *Engine) SplitConnectorAtCoor(c *canvas.Connector, x, y int) ([]*canvas.Connector, error) {
	if c == nil {
		return nil, ErrNilConnector
	}
	if c.IsZeroSegment() {
		return nil, ErrCoordNotOnConnector
	}

	splitPoint := canvas.Point{X: x, Y: y}

	// Step 1: if (x,y) is strictly interior to a segment, split it first.
	for {
		idx := -1
		for i, s := range c.Segments {
			if interiorPoint(s, splitPoint) {
				idx = i
				break
			}
		}
		if idx < 0 {
			break
		}
		e.splitSegmentAt(c, idx, splitPoint)
	}

	onConnector := false
	for _, s := range c.Segments {
		if s.Start() == splitPoint || s.End() == splitPoint {
			onConnector = true
			break
		}
	}
	if !onConnector {
		return nil, ErrCoordNotOnConnector
	}

	// Step 2: connected components of the segment-adjacency graph, with
	// the split coordinate and every port coordinate acting as barriers
	// (edges through those coordinates are simply never added).
	segs := c.Segments
	uf := newUnionFind(len(segs))
	buckets := make(map[canvas.Point][]int)
	for i, s := range segs {
		for _, pt := range []canvas.Point{s.Start(), s.End()} {
			if pt == splitPoint {
				continue
			}
			if len(e.portsAt(pt.X, pt.Y)) > 0 {
				continue
			}
			buckets[pt] = append(buckets[pt], i)
		}
	}
	for _, idxs := range buckets {
		for k := 1; k < len(idxs); k++ {
			uf.union(idxs[0], idxs[k])
		}
	}

	groups := make(map[int][]int)
	var roots []int
	for i := range segs {
		r := uf.find(i)
		if _, ok := groups[r]; !ok {
			roots = append(roots, r)
		}
		groups[r] = append(groups[r], i)
	}
	sort.Slice(roots, func(a, b int) bool { return groups[roots[a]][0] < groups[roots[b]][0] })

	out := make([]*canvas.Connector, 0, len(roots))
	for gi, r := range roots {
		idxs := groups[r]
		partSegs := make([]canvas.Segment, len(idxs))
		for k, si := range idxs {
			partSegs[k] = segs[si]
		}

		var dest *canvas.Connector
		if gi == 0 {
			dest = c
		} else {
			dest = &canvas.Connector{VAttr: c.VAttr.Clone()}
		}
		dest.Segments = partSegs
		dest.Junctions = junctionsOf(partSegs)

		var dports []*canvas.Port
		for _, p := range c.Ports {
			for _, s := range partSegs {
				if s.Start() == (canvas.Point{X: p.X, Y: p.Y}) || s.End() == (canvas.Point{X: p.X, Y: p.Y}) {
					dports = append(dports, p)
					break
				}
			}
		}
		dest.Ports = dports

		if gi != 0 {
			dest.VAttr = c.VAttr.Clone()
		}

		out = append(out, dest)
	}

	// Port back-references: remove c, add the owning partition(s).
	for _, p := range c.Ports {
		removeConnFrom(p, c)
	}
	for _, dest := range out {
		for _, p := range dest.Ports {
			addConnIfAbsent(p, dest)
		}
	}

	// Routing-matrix ownership migrates for every partition except the
	// first, which keeps the same *canvas.Connector identity.
	for gi, dest := range out {
		if gi == 0 {
			continue
		}
		for _, s := range dest.Segments {
			e.Matrix.RemoveSegment(c, s)
			e.addSeg(dest, s)
		}
	}

	return out, nil
}

// junctionsOf regenerates the junction set for a standalone segment slice
// (coordinates with >2 endpoint occurrences), per invariant 4.
func junctionsOf(segs []canvas.Segment) []canvas.Point {
	counts := make(map[canvas.Point]int)
	var order []canvas.Point
	for _, s := range segs {
		for _, pt := range []canvas.Point{s.Start(), s.End()} {
			if _, ok := counts[pt]; !ok {
				order = append(order, pt)
			}
			counts[pt]++
		}
	}
	var out []canvas.Point
	for _, pt := range order {
		if counts[pt] > 2 {
			out = append(out, pt)
		}
	}
	return out
}
