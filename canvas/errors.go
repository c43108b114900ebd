package canvas

import "errors"

// Sentinel errors for the canvas data model.
var (
	// ErrNilDrawn indicates a nil *Drawn was passed where one is required.
	ErrNilDrawn = errors.New("canvas: drawn model is nil")

	// ErrObjectNotFound indicates a referenced object ID does not exist.
	ErrObjectNotFound = errors.New("canvas: object not found")

	// ErrPortNotFound indicates a referenced port ID does not exist.
	ErrPortNotFound = errors.New("canvas: port not found")

	// ErrConnectorNotFound indicates a referenced connector ID does not exist.
	ErrConnectorNotFound = errors.New("canvas: connector not found")

	// ErrInvalidShape indicates an unsupported Shape value.
	ErrInvalidShape = errors.New("canvas: invalid shape")

	// ErrOrderCorrupt indicates the z-order array and an item's Order field
	// have diverged (invariant 7 violated); this is an internal bug, never
	// a user-facing input error.
	ErrOrderCorrupt = errors.New("canvas: order array inconsistent with item order field")
)
