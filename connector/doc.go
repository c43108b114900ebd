// Package connector implements the connector geometry engine: the
// mutually recursive reconciliation algorithms that re-establish global
// consistency of the canvas.Drawn connector/port graph after an edit.
//
// The entry point for every structural edit is Engine.Assimilate, which
// drives shortAndMerge → repairSegAndJunc → connectOverlapPorts to a
// fixpoint (§4.7). Lower-level primitives (RepairSegAndJunc,
// ShortAndMergeConnectors, SplitConnectorAtCoor, ConnectOverlapPorts) are
// exported for direct use by tests and by the editor package's public
// operations, but callers mutating the model directly should always
// finish with Assimilate.
//
// Complexity shares, from the system specification's budget table:
// shorting-and-merging ~20%, overlap-merge + split-and-junction repair
// ~25%, split-at-coordinate ~15%, port-overlap reconciliation ~12%,
// drag-node computation + regen ~15%, data model + routing matrix ~8%,
// edit orchestrators ~5%.
package connector
