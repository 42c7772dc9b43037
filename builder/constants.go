// Package builder defines shared constants used by polygon constructors,
// ensuring consistent defaults and validation across all fixtures.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRectangle is the canonical name for the Rectangle constructor.
	MethodRectangle = "Rectangle"
	// MethodSquare is the canonical name for the Square constructor.
	MethodSquare = "Square"
	// MethodRegular is the canonical name for the Regular constructor.
	MethodRegular = "Regular"
	// MethodRandomConvex is the canonical name for the RandomConvex constructor.
	MethodRandomConvex = "RandomConvex"
)

//-----------------------------------------------------------------------------
// Minimum Vertex Counts
//-----------------------------------------------------------------------------

// MinVertices is the smallest meaningful vertex count for a polygon.
// Fewer than 3 vertices cannot enclose any area.
const MinVertices = 3

//-----------------------------------------------------------------------------
// Stochastic Construction Bounds
//-----------------------------------------------------------------------------

// MinAngleGap is the smallest angular separation (radians) RandomConvex
// accepts between neighbouring vertices. Gaps below it would produce
// near-duplicate points and degenerate, numerically hostile edges.
const MinAngleGap = 1e-6

// MaxConstructAttempts bounds the resampling retries of stochastic
// constructors before they give up with ErrConstructFailed.
const MaxConstructAttempts = 16
