// Package geom implements the coordinate-geometry contract (§6): exact
// and tolerant point-on-segment membership, and grid-snap helpers.
// These are specified as external collaborators of the connector engine
// — the engine never inlines its own geometry predicates, it calls these
// instead, so an embedder can swap in a faster or floating-point variant
// without touching connector/.
package geom
