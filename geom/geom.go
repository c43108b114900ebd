package geom

// PointOnSegment reports whether (x,y) lies exactly on the closed
// segment (x1,y1)-(x2,y2), using exact integer cross-product and bounds
// tests (zero tolerance). Complexity: O(1).
func PointOnSegment(x1, y1, x2, y2, x, y int) bool {
	// Cross product of (seg) x (seg-to-point) must be zero: collinearity.
	cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
	if cross != 0 {
		return false
	}
	return x >= min(x1, x2) && x <= max(x1, x2) && y >= min(y1, y2) && y <= max(y1, y2)
}

// PointNearSegment reports whether (x,y) lies within tolerance res of
// the closed segment (x1,y1)-(x2,y2). For an axis-aligned or single-point
// segment the tolerance is the L∞ distance. For any other segment the test
// is the bounding box grown by res plus a perpendicular (Euclidean)
// distance of at most res to the segment's line, which is not the L∞
// distance. res<=0 degenerates to PointOnSegment. Complexity: O(1).
func PointNearSegment(x1, y1, x2, y2, x, y, res int) bool {
	if res <= 0 {
		return PointOnSegment(x1, y1, x2, y2, x, y)
	}
	// Reject points outside the segment's bounding box grown by res, then
	// require the perpendicular distance to the segment's line to be at
	// most res.
	if x < min(x1, x2)-res || x > max(x1, x2)+res || y < min(y1, y2)-res || y > max(y1, y2)+res {
		return false
	}
	dx, dy := x2-x1, y2-y1
	if dx == 0 && dy == 0 {
		return absInt(x-x1) <= res && absInt(y-y1) <= res
	}
	// Distance from point to infinite line, scaled (avoids floating point):
	// |cross| / len <= res  <=>  cross*cross <= res*res*(dx*dx+dy*dy)
	cross := dx*(y-y1) - dy*(x-x1)
	lenSq := dx*dx + dy*dy
	return cross*cross <= res*res*lenSq
}

// SnapX snaps x to the nearest multiple of grid (grid<=0 is treated as 1,
// i.e. no snapping — matches the §6 "snapGrid false ⇒ effective grid
// (1,1)" contract).
func SnapX(x, grid int) int { return snap(x, grid) }

// SnapY snaps y to the nearest multiple of grid.
func SnapY(y, grid int) int { return snap(y, grid) }

func snap(v, grid int) int {
	if grid <= 1 {
		return v
	}
	half := grid / 2
	if v >= 0 {
		return ((v + half) / grid) * grid
	}
	return -((((-v) + half) / grid) * grid)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
