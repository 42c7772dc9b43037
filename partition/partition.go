package partition

import (
	"math"

	"github.com/katalvlaran/eqslice/geom"
)

// Partition — equal-area division with parallel cuts
//
// Description:
//
//	Partition divides a canonical convex polygon into n regions of equal
//	area and returns the n−1 vertical cuts between them, ordered left to
//	right. Equality is judged against Options.Tolerance as a fraction of
//	the total area.
//
// Algorithm Outline:
//  1. Decompose the polygon into its rail sequence (see Decompose) and set
//     target = Area/n, tolArea = Area·Tolerance.
//  2. Walk the rails with a running left boundary (initially the reference
//     edge) and an accumulated area. For each rail compute the trapezoid
//     area it closes and the remaining deficit toward the target:
//     – deficit >  tolArea: the trapezoid is too small to finish a region;
//     absorb it and move on to the next rail;
//     – deficit < −tolArea: the trapezoid overshoots; place a cut inside it
//     at the closed-form x (see below), reset the accumulator, and revisit
//     the same rail with the cut as the new left boundary;
//     – |deficit| ≤ tolArea: the rail itself closes the region exactly.
//  3. Stop after n−1 cuts or when the rails are exhausted.
//
// Interior cut:
//
//	With left span a, right span b, trapezoid area S and required area A,
//	the cut's relative position λ solves the similar-trapezoid equation.
//	When |a−b| ≤ SpanTol the rails are parallel and λ = A/(S−A); otherwise
//	c = √(a² + (A/S)·(b²−a²)) is the span at the cut and λ = (c−a)/(b−c).
//	The cut sits at x* = (x_left + λ·x_right)/(1+λ), with both endpoints
//	interpolated on the trapezoid's chain edges at x*.
//
//	The cut branch runs only when A < S − tolArea, so S−A and b−c stay away
//	from zero and both formulas are well defined.
//
// Special cases:
//   - n == 1 returns no cuts (the polygon itself is the single region).
//   - A zero-span rail (apex) participates like any other: its trapezoid is
//     the triangular tip it closes.
//
// Complexity:
//
//	Time   = O(n + k)   for k regions (each step consumes a rail or emits a cut)
//	Memory = O(n + k)
//
// Errors:
//   - ErrRegions  — n ≤ 0.
//   - ErrTooFew, ErrZeroArea, ErrNotConvex, ErrOption — as in Decompose.
//
// Example:
//
//	cuts, err := partition.Partition(square, 4, nil)
//	// cuts at x = w/4, w/2, 3w/4
func Partition(p geom.Polygon, n int, opts *Options) ([]geom.Segment, error) {
	if n <= 0 {
		return nil, ErrRegions
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	area, err := validatePolygon(p, o)
	if err != nil {
		return nil, err
	}
	rails, err := sweep(p)
	if err != nil {
		return nil, err
	}

	// target is the desired area per region, tolArea the absolute tolerance,
	// left the running left boundary (it starts on the reference edge), and
	// accum the area collected toward the current region so far.
	var (
		cuts    = make([]geom.Segment, 0, n-1)
		target  = area / float64(n)
		tolArea = area * o.Tolerance
		left    = geom.Seg(p[0], p.Vertex(-1))
		accum   float64
		i       int
	)

	for i < len(rails) && len(cuts) < n-1 {
		right := rails[i]
		trap := geom.TrapezoidArea(left, right)
		deficit := target - (trap + accum)

		switch {
		case deficit > tolArea:
			// Too small: absorb the whole trapezoid into the region.
			left = right
			accum += trap
			i++
		case deficit < -tolArea:
			// Overshoot: cut inside this trapezoid. The rail index stays
			// put; the remainder of the trapezoid opens the next region.
			x := cutAt(left, right, target-accum, o.SpanTol)
			cut := geom.Seg(
				geom.PointAtX(left.Bottom, right.Bottom, x),
				geom.PointAtX(left.Top, right.Top, x),
			)
			cuts = append(cuts, cut)
			left = cut
			accum = 0
		default:
			// Within tolerance: the rail itself closes the region.
			cuts = append(cuts, right)
			left = right
			accum = 0
			i++
		}
	}

	return cuts, nil
}

// cutAt solves for the x coordinate that splits the trapezoid between left
// and right so that the part adjoining left has area need.
//
// Contract: 0 < need < TrapezoidArea(left, right), guaranteed by the cut
// branch of Partition.
//
// Complexity: O(1).
func cutAt(left, right geom.Segment, need, spanTol float64) float64 {
	a := left.Span()
	b := right.Span()
	s := geom.TrapezoidArea(left, right)

	var lambda float64
	if math.Abs(a-b) <= spanTol {
		// Parallel rails: the area grows linearly in x.
		lambda = need / (s - need)
	} else {
		// General trapezoid: the span at the cut interpolates between a and
		// b, and the area condition becomes quadratic in the position.
		c := math.Sqrt(a*a + (need/s)*(b*b-a*a))
		lambda = (c - a) / (b - c)
	}

	return (left.X() + lambda*right.X()) / (1 + lambda)
}
