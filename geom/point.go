package geom

import "fmt"

// Point is a location in the plane. It is a plain value: two points with the
// same coordinates are the same point.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String renders the point as "(x, y)" with compact float formatting.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Lerp linearly interpolates between p and o: t=0 yields p, t=1 yields o.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X: p.X + (o.X-p.X)*t,
		Y: p.Y + (o.Y-p.Y)*t,
	}
}

// PointAtX returns the point on the line through a and b whose x-coordinate
// is x, by linear interpolation:
//
//	y = (b.Y−a.Y)/(b.X−a.X)·(x−a.X) + a.Y
//
// Contract: a.X ≠ b.X. On a vertical carrier the slope is undefined and the
// result is ±Inf or NaN; callers (the sweep in particular) must arrange their
// invariants so that never happens. PointAtX(a, b, a.X) == a exactly;
// PointAtX(a, b, b.X) equals b up to one rounding of the slope.
//
// Complexity: O(1).
func PointAtX(a, b Point, x float64) Point {
	return Point{
		X: x,
		Y: (b.Y-a.Y)/(b.X-a.X)*(x-a.X) + a.Y,
	}
}
