package editor

import (
	"github.com/katalvlaran/schemcore/canvas"
	"github.com/katalvlaran/schemcore/hooks"
)

// OpMode names one state of the interactive state machine, replacing the
// source's callback-stack reinstallation (§9 REDESIGN FLAGS) with an
// explicit state enum.
type OpMode int

// Interactive operation states.
const (
	OpIdle OpMode = iota
	OpDrawConn
	OpMoveConn
	OpDragSeg
	OpMoveObj
)

// Op is one entry of the Canvas op stack: a pending interactive operation
// that owns a z-order backup (taken at begin, for cancellation) and the
// connector list it will assimilate on a committing Finish.
type Op struct {
	Mode        OpMode
	canvas      *Canvas
	orderBackup []canvas.OrderItem
	connList    []*canvas.Connector
}

// BeginOp pushes a new operation onto the stack, firing MouseClickPre and
// snapshotting the current z-order for a possible cancellation restore.
// Only one interactive operation is active at a time, tracked as a stack
// so nested begin/end pairs correctly unwind (§5).
func (c *Canvas) BeginOp(mode OpMode, connList []*canvas.Connector) *Op {
	c.Hooks.Fire(hooks.MouseClickPre)
	op := &Op{Mode: mode, canvas: c, orderBackup: c.Drawn.Order(), connList: connList}
	c.opStack = append(c.opStack, op)
	return op
}

// Finish ends o: if commit is false (cancellation), it restores the
// begin-time z-order backup and skips assimilation; otherwise it calls
// Assimilate over o's connector list, the commit point (§5 ordering
// guarantees). Either way it pops o from the stack and fires
// MouseClickPost. Finish fails with ErrOpNotTop if o is not currently the
// top of its Canvas's op stack.
func (o *Op) Finish(commit bool) ([]*canvas.Connector, error) {
	c := o.canvas
	if len(c.opStack) == 0 {
		return nil, ErrNoActiveOp
	}
	if c.opStack[len(c.opStack)-1] != o {
		return nil, ErrOpNotTop
	}
	c.opStack = c.opStack[:len(c.opStack)-1]

	if !commit {
		c.Drawn.SetOrder(o.orderBackup)
		c.Hooks.Fire(hooks.MouseClickPost)
		return nil, nil
	}

	masters, err := c.Engine.Assimilate(o.connList)
	c.Hooks.Fire(hooks.MouseClickPost)
	return masters, err
}

// ActiveOp returns the op currently on top of the stack, or nil if idle.
func (c *Canvas) ActiveOp() *Op {
	if len(c.opStack) == 0 {
		return nil
	}
	return c.opStack[len(c.opStack)-1]
}
