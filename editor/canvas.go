package editor

import (
	"github.com/katalvlaran/schemcore/canvas"
	"github.com/katalvlaran/schemcore/connector"
	"github.com/katalvlaran/schemcore/hooks"
	"github.com/katalvlaran/schemcore/routingmatrix"
)

// Canvas is the interactive surface over a canvas.Drawn model: it owns
// the routing matrix, the reconciliation Engine, the hook registry, and
// the op stack driving the §5 interactive state machine.
type Canvas struct {
	Drawn  *canvas.Drawn
	Matrix *routingmatrix.Matrix
	Engine *connector.Engine
	Hooks  *hooks.Registry

	opStack []*Op
}

// NewCanvas assembles a Canvas from its functional options.
func NewCanvas(opts ...CanvasOption) *Canvas {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	d := canvas.NewDrawn()
	m := routingmatrix.New(cfg.cellSize)
	eng := connector.NewEngine(d, m, cfg.gridX, cfg.gridY, cfg.snapGrid)
	eng.DragRouter = cfg.dragRouter
	eng.FinalRouter = cfg.finalRouter

	return &Canvas{Drawn: d, Matrix: m, Engine: eng, Hooks: hooks.NewRegistry()}
}

// AddObject creates an object at the given (pre-snap) bounds.
func (c *Canvas) AddObject(shape canvas.Shape, sx, sy, ex, ey int) *canvas.Object {
	sx, sy = c.Engine.Snap(sx, sy)
	ex, ey = c.Engine.Snap(ex, ey)
	return c.Drawn.AddObject(shape, sx, sy, ex, ey)
}

// AddPort creates a port on obj at (x,y), snapping first, then
// reconciles it against any connector already occupying that coordinate
// (testcase 5: adding a port mid-wire forces a split) and against any
// other port now sharing the same coordinate.
func (c *Canvas) AddPort(obj *canvas.Object, x, y int) (*canvas.Port, error) {
	if obj == nil {
		return nil, ErrNilObject
	}
	x, y = c.Engine.Snap(x, y)
	p := c.Drawn.AddPort(obj, x, y)

	if err := c.Engine.ConnectOverlapPortsToConnector(nil, []*canvas.Port{p}); err != nil {
		return p, err
	}
	c.Engine.ConnectOverlapPorts(c.Drawn.Ports())
	return p, nil
}

// GroupObjects collects objs into a fresh Group so a later MoveObj on any
// member relocates the whole set together (§4.9, supplemented feature).
func (c *Canvas) GroupObjects(objs []*canvas.Object) *canvas.Group {
	g := c.Drawn.NewGroup()
	for _, o := range objs {
		if o.Group != nil {
			c.removeFromGroup(o.Group, o)
		}
		o.Group = g
		g.Members = append(g.Members, o)
	}
	return g
}

// Ungroup dissolves g, clearing every member's Group back-reference.
func (c *Canvas) Ungroup(g *canvas.Group) {
	if g == nil {
		return
	}
	for _, o := range g.Members {
		if o.Group == g {
			o.Group = nil
		}
	}
	g.Members = nil
}

func (c *Canvas) removeFromGroup(g *canvas.Group, o *canvas.Object) {
	for i, m := range g.Members {
		if m == o {
			g.Members = append(g.Members[:i], g.Members[i+1:]...)
			return
		}
	}
}

// MoveObj translates obj (and every co-member of its Group, if any) by
// (dx,dy) and moves its ports to their snapped new coordinates. In each
// connector linked to a moved port, only the segment endpoints sitting at
// the port's old coordinate follow it; the rest of the connector stays in
// place and is not re-routed. It then assimilates the affected connectors
// (§4.7, the MOVE_OBJ op).
func (c *Canvas) MoveObj(obj *canvas.Object, dx, dy int) ([]*canvas.Connector, error) {
	if obj == nil {
		return nil, ErrNilObject
	}

	objs := []*canvas.Object{obj}
	if obj.Group != nil {
		objs = obj.Group.Members
	}

	affected := make(map[*canvas.Connector]bool)
	for _, o := range objs {
		o.StartX += dx
		o.StartY += dy
		o.EndX += dx
		o.EndY += dy
		for _, p := range o.Ports {
			oldPt := canvas.Point{X: p.X, Y: p.Y}
			newX, newY := c.Engine.Snap(p.X+dx, p.Y+dy)

			for _, cn := range p.Conn {
				affected[cn] = true
				for i, s := range cn.Segments {
					changed := false
					if s.Start() == oldPt {
						s.StartX, s.StartY = newX, newY
						changed = true
					}
					if s.End() == oldPt {
						s.EndX, s.EndY = newX, newY
						changed = true
					}
					if changed {
						c.Matrix.RemoveSegment(cn, cn.Segments[i])
						cn.Segments[i] = s
						_ = c.Matrix.AddSegment(cn, s)
					}
				}
			}

			p.X, p.Y = newX, newY
		}
	}

	var connList []*canvas.Connector
	for cn := range affected {
		connList = append(connList, cn)
	}
	if len(connList) == 0 {
		return nil, nil
	}

	op := c.BeginOp(OpMoveObj, connList)
	return op.Finish(true)
}
