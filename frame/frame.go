package frame

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eqslice/geom"
)

// ToCanonical reindexes and rotates p so that the chosen edge becomes the
// vertical reference edge of the canonical position: the ring starts at
// vertex edge+1, ends at vertex edge, and the closing edge between them
// points in −y. For a counter-clockwise convex polygon this places the
// reference edge at the minimum-x extreme, which is exactly the position
// partition.Decompose and partition.Partition sweep from.
//
// The returned Transform maps canonical coordinates back into the frame the
// polygon arrived in; feed it to FromCanonical together with the cuts.
//
// Contract:
//   - edge must be in [0, len(p)); edge i is the directed edge from
//     Vertex(i) to Vertex(i+1), as in geom.Polygon.Edge.
//   - The chosen edge must have nonzero length (ErrZeroEdge otherwise).
//   - nil opts ⇒ DefaultOptions(). The default clones; Options.InPlace
//     rewrites p's backing array and returns a polygon aliasing it.
//   - Winding is preserved, not checked. A clockwise input stays clockwise
//     and is rejected later by the partitioner's validation.
//
// Complexity: O(n) time; O(n) extra space unless InPlace.
func ToCanonical(p geom.Polygon, edge int, opts *Options) (geom.Polygon, Transform, error) {
	o := resolveOptions(opts)
	if len(p) < 3 {
		return nil, Transform{}, ErrTooFew
	}
	if edge < 0 || edge >= len(p) {
		return nil, Transform{}, fmt.Errorf("%w: edge %d of %d", ErrEdgeIndex, edge, len(p))
	}

	// Direction of the chosen edge in the caller's frame. The rotation that
	// sends the unit direction (dx, dy)/h onto (0, −1) has
	// cos φ = −dy/h, sin φ = −dx/h; no trigonometric calls needed.
	a, b := p.Edge(edge)
	dx, dy := b.X-a.X, b.Y-a.Y
	h := math.Hypot(dx, dy)
	if h == 0 {
		return nil, Transform{}, fmt.Errorf("%w: vertices %d and %d coincide", ErrZeroEdge, edge, (edge+1)%len(p))
	}
	c, s := -dy/h, -dx/h
	if c == 0 {
		c = 0 // drop IEEE negative zero
	}
	if s == 0 {
		s = 0
	}
	fwd := Transform{Cos: c, Sin: s}

	q := p
	if !o.InPlace {
		q = p.Clone()
	}
	rotateLeft(q, (edge+1)%len(q))
	for i := range q {
		q[i] = fwd.Apply(q[i])
	}

	return q, fwd.Invert(), nil
}

// FromCanonical maps segments produced in the canonical frame back into the
// frame of the original polygon by applying t to both endpoints. Endpoint
// names keep their canonical roles: Bottom and Top refer to the canonical
// orientation, not to the y order after mapping.
//
// The result is always fresh storage; segs is never mutated.
func FromCanonical(segs []geom.Segment, t Transform) []geom.Segment {
	out := make([]geom.Segment, len(segs))
	for i, s := range segs {
		out[i] = geom.Seg(t.Apply(s.Bottom), t.Apply(s.Top))
	}

	return out
}

// rotateLeft shifts the vertices of p left by k positions in place, so the
// vertex at index k lands at index 0. Implemented as three reversals to stay
// allocation free for the InPlace path.
func rotateLeft(p geom.Polygon, k int) {
	if k == 0 {
		return
	}
	reverse(p[:k])
	reverse(p[k:])
	reverse(p)
}

// reverse flips a vertex run in place. The exported geom.Polygon.Reverse
// copies; this one must not.
func reverse(p geom.Polygon) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
