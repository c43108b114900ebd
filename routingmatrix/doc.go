// Package routingmatrix implements the routing matrix (§4.1): a spatial
// occupancy index mapping grid cells to the segments occupying them,
// consulted by the router for obstacle/occupancy queries and by the
// connector engine for its "query segments/connectors at (x,y)"
// primitives (§4.3 step 2, §4.5).
//
// The index is grounded on gridgraph.GridGraph
// (github.com/katalvlaran/lvlath/gridgraph): the same cell-keyed,
// neighbor-offset style used there to turn a 2-D field into queryable
// buckets, here storing segment occupancy instead of land values. Unlike
// GridGraph, the routing matrix is not immutable — AddSegment/RemoveSegment
// mutate it as the canvas model changes, and removal is idempotent and a
// no-op on an absent segment, per the §4.1 contract.
//
// Cell queries return *candidates*: entries sharing a cell with the
// queried point. Exact membership still requires geom.PointOnSegment or
// geom.PointNearSegment — the matrix's job is to keep that filter
// near-linear in the number of affected segments, not to replace it.
package routingmatrix
