package canvas

import (
	"sync"

	"github.com/katalvlaran/schemcore/internal/idgen"
)

// Drawn is the canvas root: it exclusively owns every Object, Port and
// Connector, plus the global z-order sequence. Separate locks guard
// objects/ports (muObj) and connectors/order (muConn), mirroring
// core.Graph's muVert/muEdgeAdj split (github.com/katalvlaran/lvlath/core).
//
// Drawn's own methods keep invariants 5 and 7 (port/connector linkage,
// order density) locally consistent for the single mutation they
// perform; the higher-level invariants (1-4, 6, 8) are the
// responsibility of the connector package's reconciliation passes, which
// call back into Drawn's primitives.
type Drawn struct {
	muObj  sync.RWMutex
	muConn sync.RWMutex

	objects    map[int]*Object
	ports      map[string]*Port
	connectors map[string]*Connector
	order      []OrderItem

	objIDs  idgen.Counter
	portIDs idgen.Counter
	connIDs idgen.Counter
	grpIDs  idgen.Counter
}

// NewDrawn returns an empty canvas model.
func NewDrawn() *Drawn {
	return &Drawn{
		objects:    make(map[int]*Object),
		ports:      make(map[string]*Port),
		connectors: make(map[string]*Connector),
		order:      make([]OrderItem, 0, 16),
	}
}

// AddObject creates and inserts a new Object at the given bounds,
// appending it to the z-order. Complexity: O(1) amortized.
func (d *Drawn) AddObject(shape Shape, sx, sy, ex, ey int) *Object {
	d.muObj.Lock()
	id := int(d.objIDs.Next())
	obj := &Object{ID: id, Shape: shape, StartX: sx, StartY: sy, EndX: ex, EndY: ey}
	d.objects[id] = obj
	d.muObj.Unlock()

	d.muConn.Lock()
	obj.Order = len(d.order)
	d.order = append(d.order, OrderItem{Kind: KindObject, ObjectID: id})
	d.muConn.Unlock()

	return obj
}

// AddPort creates a new Port owned by obj at the already-snapped
// coordinate (x,y) and appends it to obj.Ports. The caller is
// responsible for grid-snapping x,y beforehand (§6 Grid contract).
func (d *Drawn) AddPort(obj *Object, x, y int) *Port {
	d.muObj.Lock()
	defer d.muObj.Unlock()

	id := d.portIDs.NextPrefixed("P")
	p := &Port{ID: id, X: x, Y: y, Obj: obj}
	d.ports[id] = p
	obj.Ports = append(obj.Ports, p)

	return p
}

// NewGroup allocates an unpopulated Group with a fresh ID.
func (d *Drawn) NewGroup() *Group {
	return &Group{ID: d.grpIDs.NextPrefixed("G")}
}

// AddConnector inserts an already-constructed Connector into the model
// at the end of the z-order, assigning it a fresh ID if it has none.
// Used by reconciliation passes that build a Connector value before
// registering it (e.g. zero-segment port-to-port connectors, split
// partitions).
func (d *Drawn) AddConnector(c *Connector) {
	d.muConn.Lock()
	defer d.muConn.Unlock()

	if c.ID == "" {
		c.ID = d.connIDs.NextPrefixed("C")
	}
	d.connectors[c.ID] = c
	c.Order = len(d.order)
	d.order = append(d.order, OrderItem{Kind: KindConnector, ConnectorID: c.ID})
}

// InsertConnectorAt inserts c into the order array at index pos
// (shifting later entries right) instead of appending. Used by
// split-at-coordinate reconciliation, which must preserve a removed
// connector's former z-position across its replacement partitions.
func (d *Drawn) InsertConnectorAt(c *Connector, pos int) {
	d.muConn.Lock()
	defer d.muConn.Unlock()

	if c.ID == "" {
		c.ID = d.connIDs.NextPrefixed("C")
	}
	d.connectors[c.ID] = c

	if pos < 0 {
		pos = 0
	}
	if pos > len(d.order) {
		pos = len(d.order)
	}
	item := OrderItem{Kind: KindConnector, ConnectorID: c.ID}
	d.order = append(d.order, OrderItem{})
	copy(d.order[pos+1:], d.order[pos:])
	d.order[pos] = item
	d.fixOrderLocked()
}

// RemoveConnector deletes c from the model and its order entry.
// Complexity: O(len(order)) for the order-array compaction and relabel.
func (d *Drawn) RemoveConnector(c *Connector) {
	d.muConn.Lock()
	defer d.muConn.Unlock()

	delete(d.connectors, c.ID)
	d.removeOrderEntryLocked(KindConnector, c.ID)
}

// removeOrderEntryLocked deletes the single order entry matching kind/id
// and relabels every subsequent item's Order field. Caller holds muConn.
func (d *Drawn) removeOrderEntryLocked(kind ItemKind, id string) {
	idx := -1
	for i, it := range d.order {
		if it.Kind == kind && ((kind == KindConnector && it.ConnectorID == id)) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	d.order = append(d.order[:idx], d.order[idx+1:]...)
	d.fixOrderLocked()
}

// RemoveObjectOrder deletes obj's order entry only (the object map entry
// is left to the caller, which may still need to walk obj.Ports).
func (d *Drawn) RemoveObjectOrder(obj *Object) {
	d.muConn.Lock()
	defer d.muConn.Unlock()

	idx := -1
	for i, it := range d.order {
		if it.Kind == KindObject && it.ObjectID == obj.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	d.order = append(d.order[:idx], d.order[idx+1:]...)
	d.fixOrderLocked()
}

// FixOrder re-establishes invariant 7 (Order[i.Order].item == i) across
// the whole order array. Complexity: O(len(order)).
func (d *Drawn) FixOrder() {
	d.muConn.Lock()
	defer d.muConn.Unlock()
	d.fixOrderLocked()
}

// SetOrder replaces the z-order array wholesale and relabels every
// item's Order field. Used by the editor's interactive-operation
// cancellation path to restore a begin-time backup (§5).
func (d *Drawn) SetOrder(items []OrderItem) {
	d.muConn.Lock()
	defer d.muConn.Unlock()
	d.order = append([]OrderItem{}, items...)
	d.fixOrderLocked()
}

func (d *Drawn) fixOrderLocked() {
	for i, it := range d.order {
		switch it.Kind {
		case KindObject:
			if o, ok := d.objects[it.ObjectID]; ok {
				o.Order = i
			}
		case KindConnector:
			if c, ok := d.connectors[it.ConnectorID]; ok {
				c.Order = i
			}
		}
	}
}

// MoveConnectorToMaxOrder relocates c's order entry so that c.Order
// equals pos, per §4.3 step 5: "reinsert M into the order array at
// maxOrder − (#merged − 1)". It removes c's current entry (if present)
// and reinserts at pos, then relabels.
func (d *Drawn) MoveConnectorToMaxOrder(c *Connector, pos int) {
	d.muConn.Lock()
	defer d.muConn.Unlock()

	for i, it := range d.order {
		if it.Kind == KindConnector && it.ConnectorID == c.ID {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(d.order) {
		pos = len(d.order)
	}
	item := OrderItem{Kind: KindConnector, ConnectorID: c.ID}
	d.order = append(d.order, OrderItem{})
	copy(d.order[pos+1:], d.order[pos:])
	d.order[pos] = item
	d.fixOrderLocked()
}

// Object returns the object with the given ID, or (nil, false).
func (d *Drawn) Object(id int) (*Object, bool) {
	d.muObj.RLock()
	defer d.muObj.RUnlock()
	o, ok := d.objects[id]
	return o, ok
}

// Port returns the port with the given ID, or (nil, false).
func (d *Drawn) Port(id string) (*Port, bool) {
	d.muObj.RLock()
	defer d.muObj.RUnlock()
	p, ok := d.ports[id]
	return p, ok
}

// Connector returns the connector with the given ID, or (nil, false).
func (d *Drawn) Connector(id string) (*Connector, bool) {
	d.muConn.RLock()
	defer d.muConn.RUnlock()
	c, ok := d.connectors[id]
	return c, ok
}

// Connectors returns a snapshot slice of every connector, ordered by map
// iteration (not z-order); callers needing z-order should walk Order().
func (d *Drawn) Connectors() []*Connector {
	d.muConn.RLock()
	defer d.muConn.RUnlock()
	out := make([]*Connector, 0, len(d.connectors))
	for _, c := range d.connectors {
		out = append(out, c)
	}
	return out
}

// Objects returns a snapshot slice of every object.
func (d *Drawn) Objects() []*Object {
	d.muObj.RLock()
	defer d.muObj.RUnlock()
	out := make([]*Object, 0, len(d.objects))
	for _, o := range d.objects {
		out = append(out, o)
	}
	return out
}

// Ports returns a snapshot slice of every port.
func (d *Drawn) Ports() []*Port {
	d.muObj.RLock()
	defer d.muObj.RUnlock()
	out := make([]*Port, 0, len(d.ports))
	for _, p := range d.ports {
		out = append(out, p)
	}
	return out
}

// Order returns a copy of the current z-order sequence.
func (d *Drawn) Order() []OrderItem {
	d.muConn.RLock()
	defer d.muConn.RUnlock()
	out := make([]OrderItem, len(d.order))
	copy(out, d.order)
	return out
}

// ConnectorIndex returns the index of c's order entry, or -1.
func (d *Drawn) ConnectorIndex(c *Connector) int {
	d.muConn.RLock()
	defer d.muConn.RUnlock()
	for i, it := range d.order {
		if it.Kind == KindConnector && it.ConnectorID == c.ID {
			return i
		}
	}
	return -1
}
