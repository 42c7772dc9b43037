// Package geom provides the plane-geometry primitives shared by every
// eqslice package: points, vertical segments, polygons, and the two area
// evaluators (shoelace for polygons, parallel-side average for trapezoids)
// that the equal-area partitioner is built on.
//
// 🚀 What lives here?
//
//	Point    — an immutable (x, y) pair; no identity beyond its coordinates
//	Segment  — an ordered (Bottom, Top) pair of points, read as a vertical cut
//	Polygon  — a counter-clockwise ring of vertices, indexed cyclically
//
// ✨ Design rules:
//
//   - Values, not pointers: every type is a small value; methods return new
//     values and never mutate the receiver (Clone is the explicit copy)
//   - Total functions: no errors in this package — every operation is
//     defined on its documented domain, and preconditions are the caller's
//     contract (PointAtX must not see a vertical carrier segment)
//   - Tolerant predicates: convexity and orientation use an ε on cross
//     products, so collinear vertex runs do not flip verdicts
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/eqslice/geom"
//
//	square := geom.Polygon{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4), geom.Pt(0, 4)}
//	a := square.Area()          // 16
//	ok := square.IsConvex()     // true
//	mid := geom.PointAtX(geom.Pt(0, 0), geom.Pt(4, 2), 2) // (2, 1)
//
// The partition package consumes these primitives; see its documentation for
// the canonical orientation a polygon must be in before it is swept.
package geom
