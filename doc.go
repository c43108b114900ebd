// Package schemcore is an in-memory, grid-snapped 2-D schematic editor
// core: objects (rectangles, lines, ellipses), ports (attachment points)
// and connectors (orthogonal multi-segment wires joining ports).
//
// # What is schemcore?
//
//	A small, dependency-light engine that keeps a wiring graph consistent
//	under continuous interactive editing:
//
//	  - canvas/        — the data model: Object, Port, Connector, Segment
//	  - geom/          — coordinate-geometry primitives and grid snapping
//	  - routingmatrix/ — spatial occupancy index consulted by the router
//	  - router/        — orthogonal-routing contract + a default router
//	  - connector/     — the reconciliation engine (merge, split, repair)
//	  - hooks/         — named hook registry for interactive-op boundaries
//	  - editor/        — the public Canvas API and interactive state machine
//
// The hard part lives in connector/: a family of mutually recursive
// algorithms that, given an arbitrary edit (new connector drawn, segment
// dragged, object moved), re-establish global consistency of the
// connector/port graph — no connector crosses a port without terminating
// on it, no connector contains redundant or overlapping segments,
// T-junctions are always materialised, and connectors merge or split
// automatically as geometry changes.
//
// schemcore has no electrical semantics (no nets, no netlist extraction),
// no undo/redo, no multi-document concurrency, and no persistence format.
//
//	go get github.com/katalvlaran/schemcore
package schemcore
