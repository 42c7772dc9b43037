// Package partition - input validation shared by Decompose and Partition.
//
// This file contains the small, deterministic helpers that:
//  1. Resolve a caller-supplied *Options against defaults.
//  2. Validate Options field ranges.
//  3. Validate the polygon (shape, area, and optionally canonical form).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) worst-case where n is the vertex count; no hidden allocations.
package partition

import (
	"fmt"

	"github.com/katalvlaran/eqslice/geom"
)

// resolveOptions fills defaults for a nil or partially zero Options value and
// checks field ranges.
//
// Contract:
//   - nil opts ⇒ DefaultOptions().
//   - Zero Tolerance/SpanTol fields fall back to their package defaults.
//
// Complexity: O(1).
func resolveOptions(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if o.Tolerance == 0 {
			o.Tolerance = DefaultTolerance
		}
		if o.SpanTol == 0 {
			o.SpanTol = DefaultSpanTol
		}
	}
	if err := validateOptions(o); err != nil {
		return Options{}, err
	}

	return o, nil
}

// validateOptions checks internal consistency of Options without referencing
// the polygon.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	// Tolerance is a fraction of total area; 1 or more would close every
	// region on the first rail, negative inverts the comparison logic.
	if o.Tolerance < 0 || o.Tolerance >= 1 {
		return fmt.Errorf("%w: Tolerance must be in [0, 1), got %g", ErrOption, o.Tolerance)
	}
	// SpanTol is an absolute length difference; negative is meaningless.
	if o.SpanTol < 0 {
		return fmt.Errorf("%w: SpanTol must be non-negative, got %g", ErrOption, o.SpanTol)
	}

	return nil
}

// validatePolygon verifies the polygon and returns its area on success.
//
// Contract:
//   - Stage 1 (shape) and Stage 2 (area) always run.
//   - Stage 3 (orientation + convexity) runs only when o.Validate is set;
//     it is the O(n) pass that Options.Validate toggles.
//
// Complexity: O(n) time, O(1) extra space.
func validatePolygon(p geom.Polygon, o Options) (float64, error) {
	// Stage 1: shape.
	if len(p) < 3 {
		return 0, ErrTooFew
	}

	// Stage 2: area. A zero area means collinear or repeated vertices; no
	// cut placement is meaningful on such input.
	area := p.Area()
	if area == 0 {
		return 0, ErrZeroArea
	}

	// Stage 3: canonical form.
	if o.Validate {
		if !p.IsConvex() {
			return 0, fmt.Errorf("%w: reflex turn in vertex chain", ErrNotConvex)
		}
		if p.Orientation() < 0 {
			return 0, fmt.Errorf("%w: clockwise winding", ErrNotConvex)
		}
	}

	return area, nil
}
