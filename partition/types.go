package partition

import "errors"

// Sentinel errors returned by Decompose and Partition.
var (
	// ErrRegions indicates that the requested number of regions is zero or
	// negative.
	ErrRegions = errors.New("partition: number of regions must be positive")

	// ErrTooFew indicates that the polygon has fewer than three vertices.
	ErrTooFew = errors.New("partition: polygon needs at least 3 vertices")

	// ErrZeroArea indicates a degenerate polygon whose area evaluates to zero.
	ErrZeroArea = errors.New("partition: polygon area is zero")

	// ErrNotConvex indicates a structural violation of the canonical form:
	// a reflex vertex, clockwise winding, or a sweep that fails to terminate
	// within the vertex budget. Wrapped with detail via fmt.Errorf("%w: ...").
	ErrNotConvex = errors.New("partition: polygon is not convex in canonical form")

	// ErrOption indicates an Options field outside its documented range.
	ErrOption = errors.New("partition: invalid option value")
)

// Default tolerances applied when the corresponding Options field is zero.
const (
	// DefaultTolerance is the equal-area tolerance, expressed as a fraction
	// of the total polygon area.
	DefaultTolerance = 1e-12

	// DefaultSpanTol is the absolute tolerance under which the two rails of
	// a trapezoid count as parallel, selecting the linear cut formula over
	// the quadratic one.
	DefaultSpanTol = 1e-9
)

// Options configures Decompose and Partition.
//
// Tolerance — equal-area tolerance as a fraction of total polygon area.
// A region closes when its accumulated area is within Tolerance·Area of the
// target. Must be in [0, 1); zero means DefaultTolerance.
//
// SpanTol — absolute span difference below which a trapezoid's rails count
// as parallel. The parallel case uses the exact linear solution, avoiding
// the quadratic formula's instability as the rails approach equal length.
// Must be ≥ 0; zero means DefaultSpanTol.
//
// Validate — run the O(n) orientation and convexity pass before sweeping.
// Leave it on unless the input is known canonical; the cheap shape and area
// checks run regardless. A disabled pass never hangs: the sweep is bounded
// by the vertex count and reports ErrNotConvex when the budget is exceeded.
//
// Start from DefaultOptions and override fields as needed; passing a nil
// *Options to Decompose or Partition is equivalent to DefaultOptions().
type Options struct {
	Tolerance float64 // equal-area tolerance, fraction of total area
	SpanTol   float64 // parallel-rail span tolerance (absolute)
	Validate  bool    // run the orientation/convexity pass
}

// DefaultOptions returns the recommended configuration:
//
//   - Tolerance: DefaultTolerance (1e-12 of total area)
//   - SpanTol:   DefaultSpanTol (1e-9)
//   - Validate:  true
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		SpanTol:   DefaultSpanTol,
		Validate:  true,
	}
}
