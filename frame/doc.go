// Package frame rotates polygons into the canonical position expected by
// package partition and maps the resulting cuts back.
//
// 🚀 What is frame?
//
//	Partition cuts parallel to the reference edge — the edge from the last
//	vertex back to the first.  To cut parallel to any other edge, ToCanonical
//	reindexes the ring so the chosen edge becomes the reference edge and
//	rotates the plane so that edge points straight down.  The returned
//	Transform maps canonical coordinates back into the caller's frame, so
//	cuts can be reported in the coordinates the polygon arrived in.
//
// ✨ Key features:
//   - edge indexing matches geom.Polygon.Edge: edge i runs from vertex i to
//     vertex i+1, cyclically
//   - the rotation is solved algebraically from the edge direction, so a
//     polygon that is already canonical round-trips bit-exactly
//   - ownership is explicit: the default clones, Options.InPlace rewrites
//     the caller's vertex slice
//
// ⚙️ Usage:
//
//	q, t, err := frame.ToCanonical(p, 0, nil) // cut parallel to edge 0
//	cuts, err := partition.Partition(q, 3, nil)
//	back := frame.FromCanonical(cuts, t)      // cuts in p's frame
//
// Rotation never changes areas, so the equal-area guarantee of partition
// carries over to the mapped-back segments unchanged.
//
// See examples in example_test.go.
package frame
