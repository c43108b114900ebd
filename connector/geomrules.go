package connector

import "math"

// lineEquation is the canonical "same line" fingerprint used by Phase A
// overlap coalescing (§4.2). Two segments satisfy the same-line-equation
// test iff their lineEquation values are equal.
type lineEquation struct {
	vertical bool
	x        int // meaningful only when vertical
	slope    int // floor(Δy/Δx * 100), meaningful only when !vertical
	intercept int // floor((y - slope·x) * 100), meaningful only when !vertical
}

// lineEquationOf computes the same-line-equation fingerprint for the
// segment (x1,y1)-(x2,y2), fixing the contract's 1/100 resolution: slope
// equality uses floor(Δy/Δx*100)/100 and y-intercepts are compared as
// floor((y−m·x)·100). Two lines are "the same equation" iff both
// comparisons agree — this is the contract, not an approximation of one.
func lineEquationOf(x1, y1, x2, y2 int) lineEquation {
	if x1 == x2 {
		return lineEquation{vertical: true, x: x1}
	}
	m := float64(y2-y1) / float64(x2-x1)
	slope100 := int(math.Floor(m * 100))
	intercept := float64(y1) - m*float64(x1)
	intercept100 := int(math.Floor(intercept * 100))
	return lineEquation{slope: slope100, intercept: intercept100}
}

// sameLine reports whether a and b satisfy the same-line-equation test.
func sameLine(a, b lineEquation) bool {
	if a.vertical != b.vertical {
		return false
	}
	if a.vertical {
		return a.x == b.x
	}
	return a.slope == b.slope && a.intercept == b.intercept
}
