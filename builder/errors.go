// SPDX-License-Identifier: MIT
// Package: eqslice/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Constructors attach context using `%w` wrapping.
//   • Constructors MUST NOT panic on user input.

package builder

import "errors"

// ErrTooFewVertices indicates that a requested vertex count is below the
// minimum of three for a polygon.
// Classification: Validation error (parameters).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: vertex count too small")

// ErrBadDimension indicates that a length parameter (width, height, side,
// radius) is zero, negative, or otherwise meaningless for the constructor.
// Usage: if errors.Is(err, ErrBadDimension) { /* fix the dimension */ }.
var ErrBadDimension = errors.New("builder: dimension must be positive")

// ErrNeedRandSource indicates that a stochastic constructor received a nil
// *rand.Rand. Callers must seed their own source; the package never falls
// back to global randomness.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its bounded retry
// budget without producing a polygon that meets its invariants (e.g. random
// angles kept colliding). Retrying with a different seed usually succeeds.
// Usage: if errors.Is(err, ErrConstructFailed) { /* retry with new seed */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
