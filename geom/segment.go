package geom

import "fmt"

// Segment is a straight cut through a polygon, stored as its two endpoints.
// The partitioning algorithms only ever build vertical segments (both
// endpoints share one x-coordinate) with Bottom geometrically below Top;
// that ordering is an invariant maintained by the sweep, not enforced here.
type Segment struct {
	Bottom, Top Point
}

// Seg returns the segment from bottom to top.
func Seg(bottom, top Point) Segment {
	return Segment{Bottom: bottom, Top: top}
}

// X is the reference-axis coordinate of the segment, read from its bottom
// endpoint. For the vertical segments produced by the sweep both endpoints
// agree on it.
func (s Segment) X() float64 {
	return s.Bottom.X
}

// Span is the vertical extent Top.Y − Bottom.Y. Non-negative whenever the
// Bottom-below-Top invariant holds; zero for the degenerate apex segment a
// sweep emits when a polygon ends in a single point.
func (s Segment) Span() float64 {
	return s.Top.Y - s.Bottom.Y
}

// Midpoint returns the point halfway between the two endpoints.
func (s Segment) Midpoint() Point {
	return Point{
		X: 0.5 * (s.Bottom.X + s.Top.X),
		Y: 0.5 * (s.Bottom.Y + s.Top.Y),
	}
}

// String renders the segment as "bottom─top".
func (s Segment) String() string {
	return fmt.Sprintf("%v─%v", s.Bottom, s.Top)
}

// TrapezoidArea is the area of the trapezoid bounded by two parallel vertical
// segments:
//
//	(left.Span() + right.Span()) · (right.X − left.X) / 2
//
// Contract: left must sit at an x-coordinate ≤ right's; a misordered pair
// yields a negative area. Degenerate trapezoids (equal x, or two zero spans)
// yield zero.
//
// Complexity: O(1).
func TrapezoidArea(left, right Segment) float64 {
	return (left.Span() + right.Span()) * (right.Bottom.X - left.Bottom.X) / 2
}
