// Package partition slices a convex polygon into regions of equal area with
// straight cuts parallel to a chosen reference edge.
//
// 🚀 What is partition?
//
//	Given a convex polygon in canonical position — vertices counterclockwise,
//	the edge from the last vertex back to the first vertex vertical and at the
//	minimum x — Partition returns the n−1 vertical segments that divide the
//	polygon into n regions of equal area.  Typical uses:
//	  • Splitting a field or parcel into equal shares
//	  • Balancing spatial workload across workers
//	  • Striping a convex footprint for scan planning
//
// ✨ Key features:
//   - closed-form cuts: one sweep plus a quadratic solve per region, no
//     iterative refinement
//   - Decompose exposes the intermediate trapezoid rails for callers that
//     want the sweep itself
//   - tolerance-driven comparison (Options.Tolerance, a fraction of total
//     area) instead of brittle exact equality
//   - structural validation on by default; disable via Options.Validate
//     for inputs known to be canonical
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/eqslice/partition"
//
//	p := geom.Polygon{
//	  geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4), geom.Pt(0, 4),
//	}
//	cuts, err := partition.Partition(p, 2, nil) // nil ⇒ DefaultOptions
//	// cuts == [ (2,0)─(2,4) ]
//
// Performance:
//
//   - Time:   O(n) for the sweep, O(n + k) overall for k regions
//   - Memory: O(n) for the rail sequence
//
// Polygons that are not already in canonical position can be rotated into it
// with package frame and the results mapped back afterwards.
//
// See examples in example_test.go.
package partition
