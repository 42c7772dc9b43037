// Package builder provides ready-made polygon fixtures for tests, examples,
// benchmarks and the demo tooling. It lives alongside geom and partition to
// centralize construction and validation of well-formed convex input, keeping
// callers DRY and deterministic.
//
// The package offers the following constructors:
//
//   - Fixed shapes (canonical orientation, ready for partitioning):
//     – Rectangle(w, h):   axis-aligned, reference edge on the y-axis.
//     – Square(side):      Rectangle with equal sides.
//     – Regular(n, r):     regular n-gon with a vertical reference edge at
//     minimum x, mirror-symmetric about the x-axis.
//   - Stochastic shapes (general position, canonicalize with package frame):
//     – RandomConvex(n, r, rng): n points at sorted random angles on a
//     circle of radius r, counterclockwise.
//
// Guarantees:
//
//   - Every constructor returns a counterclockwise convex polygon or a
//     sentinel error; never both, never a panic.
//   - Deterministic output for fixed arguments; RandomConvex is deterministic
//     per *rand.Rand seed.
//   - Structured sentinel errors (ErrTooFewVertices, ErrBadDimension,
//     ErrNeedRandSource, ErrConstructFailed) matched via errors.Is.
//
// See individual constructor documentation for contracts and complexity.
package builder
