// Package idgen provides monotonic, human-readable identifier counters.
//
// Objects get decimal numeric IDs, ports get "P<n>" and connectors get
// "C<n>", all three monotonically increasing and never reused — mirroring
// core.Graph's nextEdgeID counter (github.com/katalvlaran/lvlath/core),
// one counter per collection.
package idgen

import (
	"strconv"
	"sync/atomic"
)

// Counter is a monotonic, concurrency-safe integer sequence starting at 1.
type Counter struct {
	next uint64
}

// Next returns the next integer in the sequence. Complexity: O(1).
func (c *Counter) Next() uint64 {
	return atomic.AddUint64(&c.next, 1)
}

// NextString returns Next() formatted in decimal.
func (c *Counter) NextString() string {
	return strconv.FormatUint(c.Next(), 10)
}

// NextPrefixed returns prefix + Next() in decimal, e.g. "P3", "C12".
func (c *Counter) NextPrefixed(prefix string) string {
	return prefix + strconv.FormatUint(c.Next(), 10)
}
