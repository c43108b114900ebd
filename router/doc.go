// Package router implements the external orthogonal-routing contract
// (§6): generateSegments(cnv, sx, sy, ex, ey, outSegs, routerFn, jumpSeg)
// → (finX, finY), appending 1+ orthogonal segments that route from
// (sx,sy) to as close to (ex,ey) as current occupancy allows, and
// registering every produced segment with the routing matrix before
// returning.
//
// Orthogonal is a deterministic default implementation grounded on the
// bend-point-candidate-then-fallback shape used by other orthogonal
// routers in the examples pack: it tries the two canonical two-segment
// L-shaped routes between the endpoints, picking whichever is not
// blocked by an existing segment of another connector, and falls back
// to a three-segment Z-route offset by one routing lane when both are
// blocked. It is a direct heuristic, not a graph search — no priority
// queue, no shortest-path algorithm — trading optimality for the O(1)
// number of candidate routes a schematic editor actually needs per
// frame. connector/ depends only on the Router interface; Orthogonal
// lets the module run end-to-end without an embedder supplying their
// own router.
package router
