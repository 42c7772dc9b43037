package geom

// turnEps is the tolerance on cross products below which two consecutive
// edges count as collinear rather than as a turn.
const turnEps = 1e-10

// turnCounts walks every consecutive edge pair of the ring and counts
// left (positive cross) and right (negative cross) turns, treating crosses
// within turnEps of zero as straight continuations.
func (p Polygon) turnCounts() (left, right int) {
	n := len(p)
	for i := 0; i < n; i++ {
		a := p[i]
		b := p[(i+1)%n]
		c := p[(i+2)%n]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		switch {
		case cross > turnEps:
			left++
		case cross < -turnEps:
			right++
		}
	}

	return left, right
}

// IsConvex reports whether the ring is convex: every turn goes the same way.
// Collinear vertex runs are tolerated. Rings with fewer than 3 vertices, or
// with all vertices collinear, are not convex.
//
// Complexity: O(n).
func (p Polygon) IsConvex() bool {
	if len(p) < 3 {
		return false
	}
	left, right := p.turnCounts()

	return (left == 0) != (right == 0)
}

// Orientation reports the winding direction of a convex ring: +1 for
// counter-clockwise, −1 for clockwise, 0 when the ring is degenerate or the
// turns disagree (a concave or self-intersecting ring has no single
// orientation in this sense).
//
// Complexity: O(n).
func (p Polygon) Orientation() int {
	if len(p) < 3 {
		return 0
	}
	left, right := p.turnCounts()
	switch {
	case left > 0 && right == 0:
		return 1
	case right > 0 && left == 0:
		return -1
	default:
		return 0
	}
}
