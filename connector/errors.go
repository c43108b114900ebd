package connector

import "errors"

// Sentinel errors for the connector reconciliation engine. Per §7, these
// distinguish invalid-input, not-found and invariant-violation failures;
// all public Engine methods return (nil/zero, error) rather than panic.
var (
	// ErrNilConnector indicates a required *canvas.Connector argument was nil.
	ErrNilConnector = errors.New("connector: nil connector")

	// ErrCoordNotOnConnector indicates a requested split coordinate does
	// not lie on any segment or endpoint of the given connector.
	ErrCoordNotOnConnector = errors.New("connector: coordinate not on connector")

	// ErrMidSegmentTouch is an invariant-violation error: drawConnector's
	// non-interactive validation found an endpoint of one input segment
	// strictly interior to another segment of the same draw call; the
	// caller must pre-split before drawing (§4.7).
	ErrMidSegmentTouch = errors.New("connector: segment endpoint touches another segment's interior; pre-split required")

	// ErrNonIntegerCoordinate indicates a drawConnector input segment had
	// a non-integer coordinate after grid-snap.
	ErrNonIntegerCoordinate = errors.New("connector: non-integer coordinate after snap")

	// ErrEmptySegmentList indicates an operation that requires at least
	// one segment was given none.
	ErrEmptySegmentList = errors.New("connector: empty segment list")

	// ErrNoRouter indicates a drag or route operation was attempted
	// without a Router configured on the Engine.
	ErrNoRouter = errors.New("connector: no router configured")

	// ErrCycleDetected is the debug-only acyclicity assertion's failure:
	// a connector's segment-adjacency graph contains a cycle, which
	// invariants 2-4 forbid by construction. See DebugAcyclicityCheck.
	ErrCycleDetected = errors.New("connector: cycle detected in connector segment graph")
)
