package connector

import (
	"github.com/katalvlaran/schemcore/canvas"
	"github.com/katalvlaran/schemcore/geom"
)

// ConnectOverlapPorts is the port-to-port variant of §4.5: for every pair
// of ports sharing an exact coordinate that are not already linked by a
// common connector, it creates a zero-segment connector (§4.1) joining
// them and registers it with drawn.conn and the order array.
func (e *Engine) ConnectOverlapPorts(ports []*canvas.Port) {
	groups := make(map[canvas.Point][]*canvas.Port)
	for _, p := range ports {
		pt := canvas.Point{X: p.X, Y: p.Y}
		groups[pt] = append(groups[pt], p)
	}
	for _, grp := range groups {
		for i := 0; i < len(grp); i++ {
			for j := i + 1; j < len(grp); j++ {
				p, q := grp[i], grp[j]
				if shareConnector(p, q) {
					continue
				}
				nc := &canvas.Connector{Ports: []*canvas.Port{p, q}}
				e.Drawn.AddConnector(nc)
				linkPort(p, nc)
				linkPort(q, nc)
			}
		}
	}
}

func shareConnector(p, q *canvas.Port) bool {
	for _, pc := range p.Conn {
		if q.HasConnector(pc) {
			return true
		}
	}
	return false
}

func linkPort(p *canvas.Port, k *canvas.Connector) {
	if !k.HasPort(p) {
		k.Ports = append(k.Ports, p)
	}
	addConnIfAbsent(p, k)
}

func detachPort(p *canvas.Port, k *canvas.Connector) {
	removeConnFrom(p, k)
	for i, kp := range k.Ports {
		if kp == p {
			k.Ports = append(k.Ports[:i], k.Ports[i+1:]...)
			return
		}
	}
}

func touchesPoint(k *canvas.Connector, x, y int) bool {
	if k.IsZeroSegment() {
		return false
	}
	for _, s := range k.Segments {
		if geom.PointOnSegment(s.StartX, s.StartY, s.EndX, s.EndY, x, y) {
			return true
		}
	}
	return false
}

// ConnectOverlapPortsToConnector is the ports-to-connector variant of
// §4.5. For each port in ports, it finds every segment-connector touching
// the port's coordinate (restricted to c if c is non-nil; any connector,
// via the routing matrix, if c is nil), and either splits that connector
// at the port coordinate (when the port lands mid-segment or where ≥2 of
// its segments touch) or simply links the port to it (when
// the port sits on a dangling endpoint already). Connectors produced by
// an in-progress split are tracked so later ports in the same call can
// still reach them.
func (e *Engine) ConnectOverlapPortsToConnector(c *canvas.Connector, ports []*canvas.Port) error {
	if c != nil && c.IsZeroSegment() {
		return nil
	}

	var splitCollection []*canvas.Connector

	for _, p := range ports {
		seen := make(map[*canvas.Connector]bool)
		var candidates []*canvas.Connector
		add := func(conn *canvas.Connector) {
			if conn == nil || seen[conn] {
				return
			}
			seen[conn] = true
			candidates = append(candidates, conn)
		}

		if c != nil {
			if touchesPoint(c, p.X, p.Y) {
				add(c)
			}
		} else {
			for _, k := range e.connectorsAt(p.X, p.Y) {
				if !k.IsZeroSegment() {
					add(k)
				}
			}
		}
		for _, k := range splitCollection {
			if touchesPoint(k, p.X, p.Y) {
				add(k)
			}
		}

		for _, k := range candidates {
			detachPort(p, k)

			touchIdx := segmentsThrough(k, p.X, p.Y)
			requiresSplit := false
			switch {
			case len(touchIdx) > 1:
				requiresSplit = true
			case len(touchIdx) == 1:
				s := k.Segments[touchIdx[0]]
				if s.Start() != (canvas.Point{X: p.X, Y: p.Y}) && s.End() != (canvas.Point{X: p.X, Y: p.Y}) {
					requiresSplit = true
				}
			}

			if !requiresSplit {
				if len(touchIdx) == 1 {
					linkPort(p, k)
				}
				continue
			}

			pos := e.Drawn.ConnectorIndex(k)
			parts, err := e.SplitConnectorAtCoor(k, p.X, p.Y)
			if err != nil {
				return err
			}
			e.Drawn.RemoveConnector(k)
			for i, part := range parts {
				e.Drawn.InsertConnectorAt(part, pos+i)
			}
			for _, part := range parts {
				if touchesPoint(part, p.X, p.Y) {
					linkPort(p, part)
				}
			}
			splitCollection = append(splitCollection, parts...)
			e.Drawn.FixOrder()
		}
	}

	return nil
}
