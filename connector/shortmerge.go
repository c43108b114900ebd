package connector

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/schemcore/canvas"
)

// idNum extracts the monotonic numeric suffix of a "C<n>" connector ID,
// used as the stable notion of "index in drawn.conn" from §4.3 (lower
// numeric suffix == created earlier == lower index), since IDs are
// never reused. Unparseable IDs sort last.
func idNum(id string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, "C"))
	if err != nil {
		return 1<<31 - 1
	}
	return n
}

// ShortAndMergeConnector fuses every connector touching any segment
// endpoint (or, for zero-segment connectors, any port coordinate) of c
// into one connector (§4.3). It returns the resulting master and the
// full list of merged connector IDs with the master last. If c shares no
// coordinate with any other connector, master==c and merged==[c.ID].
func (e *Engine) ShortAndMergeConnector(c *canvas.Connector) (*canvas.Connector, []string, error) {
	if c == nil {
		return nil, nil, ErrNilConnector
	}

	coor := coordsOf(c)
	touched := map[*canvas.Connector]struct{}{c: {}}
	for _, pt := range coor {
		for _, other := range e.connectorsAt(pt.X, pt.Y) {
			touched[other] = struct{}{}
		}
	}

	if len(touched) == 1 {
		return c, []string{c.ID}, nil
	}

	var group []*canvas.Connector
	for conn := range touched {
		group = append(group, conn)
	}
	sort.Slice(group, func(i, j int) bool { return idNum(group[i].ID) < idNum(group[j].ID) })
	master := group[0]
	others := group[1:]
	sort.Slice(others, func(i, j int) bool { return idNum(others[i].ID) > idNum(others[j].ID) }) // descending

	origOrders := make([]int, 0, len(group))
	for _, conn := range group {
		origOrders = append(origOrders, e.Drawn.ConnectorIndex(conn))
	}
	maxOrder := origOrders[0]
	for _, o := range origOrders[1:] {
		if o > maxOrder {
			maxOrder = o
		}
	}

	mergedIDs := make([]string, 0, len(group))
	for _, k := range others {
		e.absorb(master, k)
		mergedIDs = append(mergedIDs, k.ID)
		e.Drawn.RemoveConnector(k)
	}
	mergedIDs = append(mergedIDs, master.ID)

	pos := maxOrder - (len(group) - 1)
	if pos < 0 {
		pos = 0
	}
	e.Drawn.MoveConnectorToMaxOrder(master, pos)

	return master, mergedIDs, nil
}

// absorb merges k into master: segments (de-duplicated), ports
// (de-duplicated, with back-reference migration), junctions, and vattr
// fallback (§4.3 step 4).
func (e *Engine) absorb(master, k *canvas.Connector) {
	for _, s := range k.Segments {
		dup := false
		for _, ms := range master.Segments {
			if ms.SameCoords(s) {
				dup = true
				break
			}
		}
		e.removeSeg(k, s)
		if dup {
			continue
		}
		master.Segments = append(master.Segments, s)
		e.addSeg(master, s)
	}

	for _, p := range k.Ports {
		if !master.HasPort(p) {
			master.Ports = append(master.Ports, p)
		}
		addConnIfAbsent(p, master)
		removeConnFrom(p, k)
	}

	for _, j := range k.Junctions {
		found := false
		for _, mj := range master.Junctions {
			if mj == j {
				found = true
				break
			}
		}
		if !found {
			master.Junctions = append(master.Junctions, j)
		}
	}

	if master.VAttr == nil && k.VAttr != nil {
		master.VAttr = k.VAttr.Clone()
	}
}

func addConnIfAbsent(p *canvas.Port, c *canvas.Connector) {
	if !p.HasConnector(c) {
		p.Conn = append(p.Conn, c)
	}
}

func removeConnFrom(p *canvas.Port, c *canvas.Connector) {
	for i, pc := range p.Conn {
		if pc == c {
			p.Conn = append(p.Conn[:i], p.Conn[i+1:]...)
			return
		}
	}
}

// coordsOf returns every coordinate c can be "touched" at: its segment
// endpoints, plus (for the §4.1 zero-segment special case, and
// defensively for any connector with linked ports) its ports'
// coordinates.
func coordsOf(c *canvas.Connector) []canvas.Point {
	pts := c.Endpoints()
	for _, p := range c.Ports {
		pts = append(pts, canvas.Point{X: p.X, Y: p.Y})
	}
	return pts
}

// ShortAndMergeConnectors drives ShortAndMergeConnector to a fixpoint
// for every connector in list (skipping any already absorbed by an
// earlier list entry's merge), then calls RepairSegAndJunc once per
// final master (§4.3 caller contract).
func (e *Engine) ShortAndMergeConnectors(list []*canvas.Connector) ([]*canvas.Connector, error) {
	absorbed := make(map[string]bool)
	var masters []*canvas.Connector

	for _, c := range list {
		if absorbed[c.ID] {
			continue
		}
		cur := c
		for {
			master, merged, err := e.ShortAndMergeConnector(cur)
			if err != nil {
				return nil, err
			}
			for _, id := range merged {
				if id != master.ID {
					absorbed[id] = true
				}
			}
			if len(merged) == 1 {
				break
			}
			cur = master
		}
		if err := e.RepairSegAndJunc(cur, true); err != nil {
			return nil, err
		}
		masters = append(masters, cur)
	}

	return masters, nil
}
