package connector

import "github.com/katalvlaran/schemcore/canvas"

// Assimilate is the single reconciliation entry point used after any
// structural edit (§4.7). It iterates connList, skipping any connector
// already absorbed into a previous iteration's merge, fuses each
// remaining one with ShortAndMergeConnectors (which itself calls
// RepairSegAndJunc on every resulting master), then reconciles port
// overlaps against the result.
func (e *Engine) Assimilate(connList []*canvas.Connector) ([]*canvas.Connector, error) {
	var masters []*canvas.Connector

	for _, c := range connList {
		if c == nil {
			continue
		}
		// A connector already absorbed by an earlier iteration's merge no
		// longer exists in the model; ShortAndMergeConnector removes
		// absorbed connectors via Drawn.RemoveConnector.
		if c.ID != "" {
			if _, ok := e.Drawn.Connector(c.ID); !ok {
				continue
			}
		}
		result, err := e.ShortAndMergeConnectors([]*canvas.Connector{c})
		if err != nil {
			return nil, err
		}
		masters = append(masters, result...)
	}

	for _, m := range masters {
		if err := e.reconcileConnectorPorts(m); err != nil {
			return nil, err
		}
	}

	return masters, nil
}

// reconcileConnectorPorts finds every port located at one of m's current
// segment endpoints (not just the ports m already knows about — a freshly
// drawn connector starts with none) and runs the ports-to-connector
// reconciliation (§4.5) against that candidate set.
func (e *Engine) reconcileConnectorPorts(m *canvas.Connector) error {
	if m.IsZeroSegment() {
		return nil
	}
	seen := make(map[*canvas.Port]bool)
	var candidates []*canvas.Port
	for _, s := range m.Segments {
		for _, pt := range []canvas.Point{s.Start(), s.End()} {
			for _, p := range e.portsAt(pt.X, pt.Y) {
				if !seen[p] {
					seen[p] = true
					candidates = append(candidates, p)
				}
			}
		}
	}
	return e.ConnectOverlapPortsToConnector(m, candidates)
}
