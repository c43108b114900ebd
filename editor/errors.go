package editor

import "errors"

// Sentinel errors for the editor surface.
var (
	// ErrNoActiveOp indicates Finish was called with no matching operation
	// on the op stack (already finished, or never begun).
	ErrNoActiveOp = errors.New("editor: no active operation")

	// ErrOpNotTop indicates Finish was called on an operation that is not
	// the top of the stack — nested begin/end pairs must close inward out.
	ErrOpNotTop = errors.New("editor: operation is not the top of the stack")

	// ErrNilObject indicates a required *canvas.Object argument was nil.
	ErrNilObject = errors.New("editor: nil object")
)
