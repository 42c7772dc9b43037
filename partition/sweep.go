package partition

import (
	"fmt"

	"github.com/katalvlaran/eqslice/geom"
)

// Decompose — monotone sweep decomposition
//
// Description:
//
//	Decompose walks a canonical convex polygon left to right and returns the
//	vertical rail at every sweep event, so that consecutive rails (together
//	with the reference edge on the far left) bound trapezoids that tile the
//	polygon. Partition consumes these rails; callers that want the trapezoid
//	sequence itself can use Decompose directly.
//
// Algorithm Outline:
//  1. Two cursors start on the reference edge: t on the upper chain at the
//     last vertex, b on the lower chain at the first vertex.
//  2. Each step looks one vertex ahead on both chains and handles the one
//     with the smaller x:
//     – upper ahead is closer: its vertex becomes the rail top and the rail
//     bottom is interpolated on the current lower edge at that x;
//     – lower ahead is closer: symmetric, interpolating on the upper edge;
//     – equal x: both cursors advance and no interpolation is needed.
//  3. The sweep ends when the prospective rail has its top below its bottom:
//     the chains have crossed past the right extremity. That rail is
//     discarded. A zero-span rail (top equals bottom, the apex of a
//     triangle-like tip) is a valid final rail and is kept.
//  4. Each step advances at least one cursor, so a canonical polygon
//     terminates within len(p) steps. Exceeding that budget, or producing a
//     rail left of its predecessor, reports ErrNotConvex instead of looping
//     or returning garbage.
//
// The reference edge itself is not part of the result; the first rail is the
// first sweep event to its right.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n) for the returned rails
//
// Errors:
//   - ErrTooFew, ErrZeroArea — structural checks (always run).
//   - ErrNotConvex           — canonical-form violation, from the optional
//     validation pass or from the sweep bound.
//   - ErrOption              — invalid Options values.
func Decompose(p geom.Polygon, opts *Options) ([]geom.Segment, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if _, err = validatePolygon(p, o); err != nil {
		return nil, err
	}

	return sweep(p)
}

// sweep performs the two-cursor walk on an already validated polygon.
//
// The interpolation anchors lt/lb are the previous rail's endpoints rather
// than the cursor vertices; both lie on the same chain edge, and anchoring at
// the previous rail keeps each projection local to the current trapezoid.
func sweep(p geom.Polygon) ([]geom.Segment, error) {
	n := len(p)

	// Cursor t walks the upper chain backward from the last vertex, b walks
	// the lower chain forward from the first. The previous rail (lt, lb)
	// starts as the reference edge; (rt, rb) is the prospective rail and
	// prevX the x of the last accepted one.
	var (
		t     = -1
		b     = 0
		lt    = p.Vertex(t)
		lb    = p[b]
		rt    geom.Point
		rb    geom.Point
		prevX = lb.X
		rails = make([]geom.Segment, 0, n-2)
	)

	for step := 0; ; step++ {
		// Budget: each step consumes at least one vertex, and a canonical
		// polygon crosses its chains before running out of them.
		if step >= n {
			return nil, fmt.Errorf("%w: sweep exceeded the vertex budget (%d steps)", ErrNotConvex, n)
		}

		nt := p.Vertex(t - 1) // next vertex up the upper chain
		nb := p.Vertex(b + 1) // next vertex along the lower chain

		switch {
		case nt.X < nb.X:
			// Upper chain turns first: take its vertex, project the lower edge.
			rt = nt
			rb = geom.PointAtX(lb, nb, nt.X)
			t--
		case nt.X > nb.X:
			// Lower chain turns first: take its vertex, project the upper edge.
			rt = geom.PointAtX(lt, nt, nb.X)
			rb = nb
			b++
		default:
			// Both chains turn at the same x; no projection needed.
			rt = nt
			rb = nb
			t--
			b++
		}

		if rt.Y < rb.Y {
			// The chains crossed: this rail lies past the right extremity.
			break
		}
		if rb.X < prevX {
			return nil, fmt.Errorf("%w: rail at x=%g left of previous rail at x=%g", ErrNotConvex, rb.X, prevX)
		}

		rails = append(rails, geom.Seg(rb, rt))
		lt, lb, prevX = rt, rb, rb.X
	}

	return rails, nil
}
