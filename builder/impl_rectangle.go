// SPDX-License-Identifier: MIT
// Package: eqslice/builder
//
// impl_rectangle.go — Rectangle and Square constructors.
//
// Canonical model:
//   • Vertices counterclockwise from the origin: (0,0) → (w,0) → (w,h) → (0,h).
//   • The reference edge (0,h)→(0,0) lies on the y-axis at minimum x, so the
//     result feeds partition.Decompose / partition.Partition directly.
//
// Contract:
//   • w > 0 and h > 0 (else ErrBadDimension; NaN fails the positivity test).
//   • Returns only sentinel errors; never panics.
//
// Complexity: O(1) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eqslice/geom"
)

// Rectangle returns the canonical axis-aligned w×h rectangle.
func Rectangle(w, h float64) (geom.Polygon, error) {
	// Positivity gate; the negated form also rejects NaN dimensions.
	if !(w > 0 && h > 0) {
		return nil, fmt.Errorf("%s: %g×%g: %w", MethodRectangle, w, h, ErrBadDimension)
	}

	return geom.Polygon{
		geom.Pt(0, 0), geom.Pt(w, 0), geom.Pt(w, h), geom.Pt(0, h),
	}, nil
}

// Square returns the canonical side×side square.
func Square(side float64) (geom.Polygon, error) {
	if !(side > 0) {
		return nil, fmt.Errorf("%s: side=%g: %w", MethodSquare, side, ErrBadDimension)
	}

	return Rectangle(side, side)
}
