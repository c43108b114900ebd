package canvas

// Shape names the kind of a drawn Object. The shape-specific hit-testers
// and the visual-attribute validator are external collaborators (out of
// scope for this module, per the system specification); canvas only
// stores the tag and bounding coordinates.
type Shape string

// Supported shapes. Additional shapes may be added by callers; canvas
// does not validate shape-specific geometry beyond the bounding box.
const (
	ShapeRect    Shape = "RECT"
	ShapeLine    Shape = "LINE"
	ShapeEllipse Shape = "ELLIPSE"
)

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// VisAttr holds caller-defined visual attributes (color, line style, …).
// Validation of its contents is the job of the external visual-attribute
// validator; canvas treats it as an opaque, copyable bag of properties.
type VisAttr struct {
	Props map[string]string
}

// Clone returns a deep copy of a, or nil if a is nil.
func (a *VisAttr) Clone() *VisAttr {
	if a == nil {
		return nil
	}
	out := &VisAttr{Props: make(map[string]string, len(a.Props))}
	for k, v := range a.Props {
		out.Props[k] = v
	}
	return out
}

// Segment is a straight line segment belonging to exactly one Connector.
// The engine does not require orthogonality at the data-model level —
// the router produces orthogonal segments, but arbitrary geometry may be
// fed in via the non-interactive drawConnector entry point.
type Segment struct {
	StartX, StartY int
	EndX, EndY     int
	VAttr          *VisAttr
}

// Start returns the segment's start point.
func (s Segment) Start() Point { return Point{s.StartX, s.StartY} }

// End returns the segment's end point.
func (s Segment) End() Point { return Point{s.EndX, s.EndY} }

// SameCoords reports whether s and o connect the same two endpoints,
// regardless of direction (byte-equal-either-orientation per §4.3).
func (s Segment) SameCoords(o Segment) bool {
	if s.StartX == o.StartX && s.StartY == o.StartY && s.EndX == o.EndX && s.EndY == o.EndY {
		return true
	}
	return s.StartX == o.EndX && s.StartY == o.EndY && s.EndX == o.StartX && s.EndY == o.StartY
}

// Object is a drawn shape on the canvas.
type Object struct {
	ID     int
	Shape  Shape
	StartX int
	StartY int
	EndX   int
	EndY   int
	Group  *Group
	Ports  []*Port
	Order  int
}

// Port is an attachment point on exactly one Object, and a terminal of
// zero or more Connectors.
type Port struct {
	ID   string
	X, Y int
	Obj  *Object
	Conn []*Connector
}

// HasConnector reports whether c is linked from p.
func (p *Port) HasConnector(c *Connector) bool {
	for _, pc := range p.Conn {
		if pc == c {
			return true
		}
	}
	return false
}

// Connector is a wire net: a set of segments, the ports it terminates on,
// and the junction coordinates where ≥3 of its segment-endpoints meet.
type Connector struct {
	ID        string
	Order     int
	Segments  []Segment
	Ports     []*Port
	Junctions []Point
	VAttr     *VisAttr
}

// HasPort reports whether p is linked from c.
func (c *Connector) HasPort(p *Port) bool {
	for _, cp := range c.Ports {
		if cp == p {
			return true
		}
	}
	return false
}

// IsZeroSegment reports whether c is the special zero-segment,
// two-overlapping-ports connector described in §4.1.
func (c *Connector) IsZeroSegment() bool {
	return len(c.Segments) == 0
}

// Endpoints returns every segment endpoint coordinate of c, with
// duplicates (one entry per occurrence, not deduplicated — callers that
// need a multiset, such as junction regeneration, rely on this).
func (c *Connector) Endpoints() []Point {
	pts := make([]Point, 0, len(c.Segments)*2)
	for _, s := range c.Segments {
		pts = append(pts, s.Start(), s.End())
	}
	return pts
}

// Group is a lightweight named set of Objects moved together. Grouping
// is glue, not part of the connector geometry core, but is carried
// through moveObj so a dragged group relocates as one unit.
type Group struct {
	ID      string
	Members []*Object
}

// ItemKind discriminates the two kinds of z-order entries.
type ItemKind int

// Kinds of z-order entries.
const (
	KindObject ItemKind = iota
	KindConnector
)

// OrderItem is one entry of the global z-order sequence. Exactly one of
// ObjectID/ConnectorID is meaningful, selected by Kind.
type OrderItem struct {
	Kind        ItemKind
	ObjectID    int
	ConnectorID string
}
