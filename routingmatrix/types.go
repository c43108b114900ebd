package routingmatrix

import "github.com/katalvlaran/schemcore/canvas"

// DefaultCellSize is the side length, in grid units, of one occupancy
// cell. Segments are rasterised into every cell their bounding path
// crosses at this granularity.
const DefaultCellSize = 10

// cellKey identifies one occupancy bucket.
type cellKey struct{ cx, cy int }

// segKey canonicalises a segment's two endpoints (orientation-independent)
// so that "the same segment added twice" and "the same segment added in
// either direction" collide to one registration key, matching the
// byte-equal-either-orientation de-duplication rule used elsewhere in the
// engine (§4.3 step 4).
type segKey struct {
	x1, y1, x2, y2 int
}

func newSegKey(s canvas.Segment) segKey {
	if s.StartX < s.EndX || (s.StartX == s.EndX && s.StartY <= s.EndY) {
		return segKey{s.StartX, s.StartY, s.EndX, s.EndY}
	}
	return segKey{s.EndX, s.EndY, s.StartX, s.StartY}
}

// entryKey identifies one (connector, segment) registration.
type entryKey struct {
	conn *canvas.Connector
	seg  segKey
}

// Entry is one occupant returned by a spatial query.
type Entry struct {
	Connector *canvas.Connector
	Segment   canvas.Segment
}
