// Package canvas defines the schematic data model: Object, Port,
// Connector, Segment and the Drawn root that owns them.
//
// Drawn exclusively owns objects, ports and connectors; ports are shared
// by reference between their owning object and the connectors that
// terminate on them (back-references only, never ownership). Entities
// are created only through Drawn's Add* methods; destruction happens
// when a connector is fully merged into another, a segment is coalesced
// away, or via RemoveConnector — never by direct slice surgery from
// outside this package.
//
// Invariants (must hold whenever a package connector edit operation
// returns — canvas itself only guarantees them moment-to-moment for the
// mutations it performs directly, e.g. AddPort's snap and Order's
// bookkeeping):
//
//  1. No segment passes through a port's (x,y) except at an endpoint.
//  2. No two segments of a connector share more than an endpoint on the
//     same line equation.
//  3. T-junctions are materialised: a coordinate that is an endpoint of
//     one segment and interior to another segment of the same connector
//     forces a split of the latter.
//  4. Connector.Junctions equals exactly the coordinates where ≥3
//     segment-endpoints of that connector meet.
//  5. p ∈ c.Ports iff c ∈ p.Conn (bidirectional port/connector linkage).
//  6. Connectors sharing any segment-endpoint coordinate are fused into
//     one, except a zero-segment connector representing two overlapping
//     ports.
//  7. For every i, Order[i.Order].item == i (order density).
//  8. Every segment currently in the model is present in the routing
//     matrix exactly once (enforced by the connector/routingmatrix
//     packages, not by canvas itself).
package canvas
