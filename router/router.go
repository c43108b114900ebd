package router

import (
	"github.com/katalvlaran/schemcore/canvas"
	"github.com/katalvlaran/schemcore/routingmatrix"
)

// JumpMode selects how (or whether) the router marks a "wire jump" where
// its path crosses an unrelated segment.
type JumpMode int

// Jump modes, per §6: 0=no jump markers; 1=jump-cross segments with a
// default visual attribute; 2=jump-cross segments with no special
// attribute.
const (
	JumpNone    JumpMode = 0
	JumpDefault JumpMode = 1
	JumpNoAttr  JumpMode = 2
)

// Router is the external orthogonal-segment-router contract (§6). A
// Router must register every segment it appends to outSegs with m before
// returning (routing-matrix coherence, invariant 8); the connector
// package never registers router output itself.
type Router interface {
	// GenerateSegments routes from (sx,sy) towards (ex,ey), appending the
	// produced segments to outSegs and returning the actual endpoint
	// reached (which may fall short of (ex,ey) if occupancy blocks a
	// complete route — see §7 router-failure handling).
	GenerateSegments(m *routingmatrix.Matrix, owner *canvas.Connector, sx, sy, ex, ey int, outSegs *[]canvas.Segment, jump JumpMode) (finX, finY int)
}
