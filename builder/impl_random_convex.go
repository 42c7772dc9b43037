// SPDX-License-Identifier: MIT
// Package: eqslice/builder
//
// impl_random_convex.go — RandomConvex constructor.
//
// Canonical model:
//   • n angles drawn uniformly from [0, 2π), sorted ascending, and placed on
//     the circle of the given radius: sorted points on a circle always form a
//     counterclockwise convex polygon.
//   • Angle sets with a neighbouring gap below MinAngleGap (including the
//     wrap-around gap) are rejected and redrawn, up to MaxConstructAttempts;
//     then ErrConstructFailed.
//
// Contract:
//   • n ≥ MinVertices (else ErrTooFewVertices).
//   • radius > 0 (else ErrBadDimension).
//   • rng must be non-nil (else ErrNeedRandSource); output is deterministic
//     per seed.
//   • The result is convex and CCW but NOT canonical: rotate it with package
//     frame before partitioning.
//
// Complexity:
//   • Per attempt O(n log n) for the sort; attempts are constant-bounded.

package builder

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/eqslice/geom"
)

// RandomConvex returns a random convex polygon with n vertices on a circle
// of the given radius, centred at the origin.
func RandomConvex(n int, radius float64, rng *rand.Rand) (geom.Polygon, error) {
	// 1) Parameter validation (fail fast; zero side-effects on invalid input).
	if n < MinVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomConvex, n, MinVertices, ErrTooFewVertices)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("%s: radius=%g: %w", MethodRandomConvex, radius, ErrBadDimension)
	}

	// 2) RNG is mandatory (no global-rand fallback); output is deterministic
	//    per seed.
	if rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", MethodRandomConvex, ErrNeedRandSource)
	}

	// 3) Bounded resampling until every neighbouring gap is wide enough.
	angles := make([]float64, n)
	for attempt := 1; attempt <= MaxConstructAttempts; attempt++ {
		for i := range angles {
			angles[i] = rng.Float64() * 2 * math.Pi
		}
		sort.Float64s(angles)
		if minAngularGap(angles) < MinAngleGap {
			continue // near-duplicate vertices; redraw
		}

		// 4) Place the points counterclockwise.
		p := make(geom.Polygon, n)
		for i, a := range angles {
			p[i] = geom.Pt(radius*math.Cos(a), radius*math.Sin(a))
		}

		return p, nil
	}

	// 5) All attempts produced colliding angles → construction failure.
	return nil, fmt.Errorf("%s: no valid angle set after %d attempts: %w",
		MethodRandomConvex, MaxConstructAttempts, ErrConstructFailed)
}

// minAngularGap returns the smallest separation between neighbouring sorted
// angles, including the wrap-around gap between the last and the first.
func minAngularGap(sorted []float64) float64 {
	gap := 2*math.Pi - sorted[len(sorted)-1] + sorted[0]
	for i := 1; i < len(sorted); i++ {
		if g := sorted[i] - sorted[i-1]; g < gap {
			gap = g
		}
	}

	return gap
}
