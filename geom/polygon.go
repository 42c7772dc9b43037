package geom

import "math"

// Polygon is an ordered ring of vertices, conventionally counter-clockwise.
// Indexing is cyclic: Vertex(-1) is the last vertex, Vertex(len) the first.
// A Polygon is just a slice; use Clone when you need an independent copy.
type Polygon []Point

// Vertex returns the i-th vertex with cyclic wraparound, so callers can walk
// chains past either end without index bookkeeping.
func (p Polygon) Vertex(i int) Point {
	n := len(p)
	return p[((i%n)+n)%n]
}

// Edge returns the directed edge from Vertex(i) to Vertex(i+1).
func (p Polygon) Edge(i int) (Point, Point) {
	return p.Vertex(i), p.Vertex(i + 1)
}

// Clone returns a deep copy of the polygon. Mutating the clone never touches
// the original backing array.
func (p Polygon) Clone() Polygon {
	c := make(Polygon, len(p))
	copy(c, p)

	return c
}

// Reverse returns a copy of the polygon with the vertex order flipped,
// turning clockwise rings counter-clockwise and vice versa.
func (p Polygon) Reverse() Polygon {
	n := len(p)
	r := make(Polygon, n)
	for i, v := range p {
		r[n-1-i] = v
	}

	return r
}

// EnsureCCW returns the polygon in counter-clockwise order: the receiver
// itself when it already is, otherwise a reversed copy.
func (p Polygon) EnsureCCW() Polygon {
	if p.SignedArea() < 0 {
		return p.Reverse()
	}

	return p
}

// SignedArea computes the polygon's area by the shoelace formula, keeping the
// sign: positive for counter-clockwise winding, negative for clockwise, zero
// for degenerate (collinear or too-short) rings.
//
// Complexity: O(n).
func (p Polygon) SignedArea() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p[i].X*p[j].Y - p[j].X*p[i].Y
	}

	return area / 2
}

// Area computes the polygon's unsigned area with the shoelace formula in its
// pairwise form:
//
//	|Σ (x_{i−1}+x_i)·(y_{i−1}−y_i)| / 2
//
// Always non-negative; exactly zero only for degenerate input. For the
// triangle (0,0),(4,0),(0,3) the result is exactly 6.
//
// Complexity: O(n).
func (p Polygon) Area() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	area := 0.0
	j := n - 1
	for i := 0; i < n; i++ {
		area += (p[j].X + p[i].X) * (p[j].Y - p[i].Y)
		j = i
	}

	return math.Abs(area / 2)
}
