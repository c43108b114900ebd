package routingmatrix

import "errors"

// ErrNilConnector indicates a nil *canvas.Connector was passed to
// AddSegment/RemoveSegment; the matrix always keys entries by owning
// connector, so this is a caller bug, not an absent-segment no-op.
var ErrNilConnector = errors.New("routingmatrix: nil connector")
