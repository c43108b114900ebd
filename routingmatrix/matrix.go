package routingmatrix

import "github.com/katalvlaran/schemcore/canvas"

// Matrix is the routing matrix: a spatial occupancy index over segments,
// bucketed by grid cell. The zero value is not usable; use New.
type Matrix struct {
	cellSize int
	buckets  map[cellKey][]entryKey
	entries  map[entryKey]canvas.Segment
	cellsOf  map[entryKey][]cellKey
}

// New returns an empty Matrix with the given cell size (grid units per
// bucket). cellSize<=0 defaults to DefaultCellSize.
func New(cellSize int) *Matrix {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Matrix{
		cellSize: cellSize,
		buckets:  make(map[cellKey][]entryKey),
		entries:  make(map[entryKey]canvas.Segment),
		cellsOf:  make(map[entryKey][]cellKey),
	}
}

// AddSegment registers seg (owned by conn) at the coordinates it was
// drawn with. Per §4.1, callers must supply the same coordinates used at
// registration to RemoveSegment later; re-adding an already-registered
// segment is idempotent (it replaces the stored coordinates but does not
// duplicate cell entries).
func (m *Matrix) AddSegment(conn *canvas.Connector, seg canvas.Segment) error {
	if conn == nil {
		return ErrNilConnector
	}
	ek := entryKey{conn: conn, seg: newSegKey(seg)}
	if _, exists := m.entries[ek]; exists {
		m.removeFromCellsLocked(ek)
	}
	m.entries[ek] = seg

	cells := cellsForSegment(seg, m.cellSize)
	m.cellsOf[ek] = cells
	for _, ck := range cells {
		m.buckets[ck] = append(m.buckets[ck], ek)
	}
	return nil
}

// RemoveSegment unregisters seg from conn. It is idempotent: removing an
// absent segment is a no-op (§4.1 contract), never an error.
func (m *Matrix) RemoveSegment(conn *canvas.Connector, seg canvas.Segment) {
	if conn == nil {
		return
	}
	ek := entryKey{conn: conn, seg: newSegKey(seg)}
	if _, exists := m.entries[ek]; !exists {
		return
	}
	m.removeFromCellsLocked(ek)
	delete(m.entries, ek)
	delete(m.cellsOf, ek)
}

// RemoveAllForConnector unregisters every segment currently registered
// under conn. Used before re-routing a connector's drag node (§4.6 step
// 3: "temporarily remove n's connector's segments from the routing
// matrix").
func (m *Matrix) RemoveAllForConnector(conn *canvas.Connector) {
	for ek := range m.entries {
		if ek.conn == conn {
			m.removeFromCellsLocked(ek)
			delete(m.entries, ek)
			delete(m.cellsOf, ek)
		}
	}
}

func (m *Matrix) removeFromCellsLocked(ek entryKey) {
	for _, ck := range m.cellsOf[ek] {
		bucket := m.buckets[ck]
		for i, e := range bucket {
			if e == ek {
				bucket = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
		if len(bucket) == 0 {
			delete(m.buckets, ck)
		} else {
			m.buckets[ck] = bucket
		}
	}
}

// SegmentsAt returns candidate (connector, segment) entries sharing a
// cell with (x,y). Exact membership is the caller's responsibility via
// geom.PointOnSegment/PointNearSegment.
func (m *Matrix) SegmentsAt(x, y int) []Entry {
	ck := cellFor(x, y, m.cellSize)
	bucket := m.buckets[ck]
	out := make([]Entry, 0, len(bucket))
	for _, ek := range bucket {
		out = append(out, Entry{Connector: ek.conn, Segment: m.entries[ek]})
	}
	return out
}

// ConnectorsAt returns the distinct connectors with a candidate segment
// sharing a cell with (x,y).
func (m *Matrix) ConnectorsAt(x, y int) []*canvas.Connector {
	entries := m.SegmentsAt(x, y)
	seen := make(map[*canvas.Connector]struct{}, len(entries))
	out := make([]*canvas.Connector, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Connector]; !ok {
			seen[e.Connector] = struct{}{}
			out = append(out, e.Connector)
		}
	}
	return out
}

// Count returns the number of currently-registered (connector, segment)
// pairs. Used by tests asserting invariant 8 (routing-matrix coherence).
func (m *Matrix) Count() int { return len(m.entries) }

// Segments returns a snapshot of every registered segment, paired with
// its owning connector. Used by tests to check the routing matrix
// segment set equals the union of all connectors' segments.
func (m *Matrix) Segments() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for ek, seg := range m.entries {
		out = append(out, Entry{Connector: ek.conn, Segment: seg})
	}
	return out
}

// DenseView returns a width×height debug snapshot of cell occupancy at
// cell granularity 1 (i.e. treating each integer coordinate as its own
// cell), grounded on matrix.Dense's dense-export idiom
// (github.com/katalvlaran/lvlath/matrix). Intended for tests and
// diagnostics, not for the router's hot path.
func (m *Matrix) DenseView(width, height int) [][]bool {
	view := make([][]bool, height)
	for y := range view {
		view[y] = make([]bool, width)
	}
	for _, seg := range m.entries {
		for _, p := range rasterize(seg) {
			if p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height {
				view[p.Y][p.X] = true
			}
		}
	}
	return view
}

func cellFor(x, y, cellSize int) cellKey {
	return cellKey{cx: floorDiv(x, cellSize), cy: floorDiv(y, cellSize)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// cellsForSegment returns every cell the segment's bounding span
// crosses, inclusive of both endpoint cells.
func cellsForSegment(s canvas.Segment, cellSize int) []cellKey {
	x1, y1 := cellFor(s.StartX, s.StartY, cellSize), cellFor(s.EndX, s.EndY, cellSize)
	cx0, cx1 := x1.cx, y1.cx
	cy0, cy1 := x1.cy, y1.cy
	if cx0 > cx1 {
		cx0, cx1 = cx1, cx0
	}
	if cy0 > cy1 {
		cy0, cy1 = cy1, cy0
	}
	cells := make([]cellKey, 0, (cx1-cx0+1)*(cy1-cy0+1))
	for cx := cx0; cx <= cx1; cx++ {
		for cy := cy0; cy <= cy1; cy++ {
			cells = append(cells, cellKey{cx, cy})
		}
	}
	return cells
}

// rasterize walks integer points along an axis-aligned segment for
// DenseView; diagonal segments contribute only their two endpoints.
func rasterize(s canvas.Segment) []canvas.Point {
	if s.StartX == s.EndX {
		lo, hi := s.StartY, s.EndY
		if lo > hi {
			lo, hi = hi, lo
		}
		out := make([]canvas.Point, 0, hi-lo+1)
		for y := lo; y <= hi; y++ {
			out = append(out, canvas.Point{X: s.StartX, Y: y})
		}
		return out
	}
	if s.StartY == s.EndY {
		lo, hi := s.StartX, s.EndX
		if lo > hi {
			lo, hi = hi, lo
		}
		out := make([]canvas.Point, 0, hi-lo+1)
		for x := lo; x <= hi; x++ {
			out = append(out, canvas.Point{X: x, Y: s.StartY})
		}
		return out
	}
	return []canvas.Point{s.Start(), s.End()}
}
