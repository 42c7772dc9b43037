// Package eqslice divides convex polygons into regions of equal area with
// straight, mutually parallel cuts — from raw geometry primitives to a
// ready-to-use command line tool.
//
// 🚀 What is eqslice?
//
//	A small, deterministic computational-geometry library that answers one
//	question exactly: where do you cut a convex polygon so that every piece
//	has the same area and every cut is parallel to an edge you chose?
//	Typical uses:
//	  • Splitting land parcels into equal-area lots along a street frontage
//	  • Balancing irrigation / seeding zones inside a field boundary
//	  • Dividing a convex panel into strips of equal material
//	  • Teaching sweeps: the algorithm is one pass and closed-form
//
// ✨ Why choose eqslice?
//
//   - Exact: one monotone sweep plus a closed-form solve per cut — no
//     iterative refinement, no approximation loops
//   - Safe: validated inputs, sentinel errors, bounded sweeps — malformed
//     polygons fail fast instead of spinning forever
//   - Tunable: area tolerance is an explicit option, never a hidden constant
//   - Pure: no I/O, no globals, no locks — every call is independent and
//     safe to run concurrently
//
// Under the hood, everything is organized into focused subpackages:
//
//	geom/      — Point, Segment, Polygon, shoelace & trapezoid areas, convexity
//	partition/ — the sweep decomposer and the equal-area partitioner
//	frame/     — rotate/reindex any polygon into the canonical cutting frame
//	builder/   — rectangles, regular n-gons and random convex test polygons
//	geojson/   — GeoJSON import/export built on github.com/paulmach/orb
//	cmd/       — the eqslice CLI (split GeoJSON files from your terminal)
//
// Quick ASCII example — a square cut into three equal strips:
//
//	┌───┬───┬───┐
//	│   │   │   │        Partition(square, 3) →
//	│   │   │   │        two vertical cuts at x = w/3 and x = 2w/3
//	└───┴───┴───┘
//
// The polygon enters in canonical orientation (chosen edge vertical, at the
// minimum x, vertices counter-clockwise); frame.ToCanonical puts any convex
// polygon there and frame.FromCanonical maps the cuts back.
//
//	go get github.com/katalvlaran/eqslice
package eqslice
