// SPDX-License-Identifier: MIT
// Package: eqslice/builder
//
// impl_regular.go — Regular n-gon constructor.
//
// Canonical model:
//   • Vertices on the circle of the given radius centred at the origin,
//     counterclockwise, with the polygon rotated so that one edge is vertical
//     at minimum x: that edge runs from the last vertex down to the first and
//     serves as the reference edge for partitioning.
//   • The vertex at angle π+(2j+1)π/n pairs with its mirror at index n−1−j;
//     mirrored vertices are assigned from one cosine/sine evaluation, so both
//     share the exact same x and exactly opposite y. Sweep tie events then
//     compare equal instead of differing by an ulp.
//
// Contract:
//   • n ≥ MinVertices (else ErrTooFewVertices).
//   • radius > 0 (else ErrBadDimension; NaN fails the positivity test).
//   • Returns only sentinel errors; never panics.
//
// Complexity: O(n) time, O(n) space.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eqslice/geom"
)

// Regular returns the canonical regular n-gon inscribed in a circle of the
// given radius.
func Regular(n int, radius float64) (geom.Polygon, error) {
	// 1) Parameter validation (fail fast; zero side-effects on invalid input).
	if n < MinVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodRegular, n, MinVertices, ErrTooFewVertices)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("%s: radius=%g: %w", MethodRegular, radius, ErrBadDimension)
	}

	// 2) Place the lower half and mirror it onto the upper half. For odd n
	//    the middle index is its own mirror: the rightmost apex near (r, 0).
	p := make(geom.Polygon, n)
	for j := 0; j <= (n-1)/2; j++ {
		theta := math.Pi + (2*float64(j)+1)*math.Pi/float64(n)
		x := radius * math.Cos(theta)
		y := radius * math.Sin(theta)
		p[j] = geom.Pt(x, y)
		p[n-1-j] = geom.Pt(x, -y)
	}

	return p, nil
}
