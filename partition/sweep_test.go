package partition_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqslice/geom"
	"github.com/katalvlaran/eqslice/partition"
)

// approx treats float64 values within 1e-9 as equal in cmp.Diff comparisons.
var approx = cmpopts.EquateApprox(0, 1e-9)

// square returns the canonical 4×4 square.
func square() geom.Polygon {
	return geom.Polygon{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4), geom.Pt(0, 4)}
}

// rightTriangle returns a canonical right triangle with area 6.
func rightTriangle() geom.Polygon {
	return geom.Polygon{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(0, 3)}
}

// nonagon returns a canonical 9-vertex convex polygon with area 14.375,
// mixing interpolated sweep events with tie events on both chains.
func nonagon() geom.Polygon {
	return geom.Polygon{
		geom.Pt(0, 0), geom.Pt(0.5, -1), geom.Pt(1.5, -1.5), geom.Pt(2.5, -1.5),
		geom.Pt(3.5, -1), geom.Pt(3.5, 3), geom.Pt(2.5, 3.5), geom.Pt(1, 3), geom.Pt(0, 1),
	}
}

// TestDecompose_Square expects a single rail on the square's right edge:
// both chains reach x=4 in one tie step.
func TestDecompose_Square(t *testing.T) {
	rails, err := partition.Decompose(square(), nil)
	require.NoError(t, err)

	want := []geom.Segment{geom.Seg(geom.Pt(4, 0), geom.Pt(4, 4))}
	assert.Equal(t, want, rails, "the square collapses to one trapezoid")
}

// TestDecompose_Triangle keeps the zero-span rail at the apex.
func TestDecompose_Triangle(t *testing.T) {
	rails, err := partition.Decompose(rightTriangle(), nil)
	require.NoError(t, err)

	want := []geom.Segment{geom.Seg(geom.Pt(4, 0), geom.Pt(4, 0))}
	assert.Equal(t, want, rails, "the apex must survive as a degenerate rail")
}

// TestDecompose_Nonagon walks the mixed event sequence: lower vertex, upper
// vertex, lower vertex, then two ties.
func TestDecompose_Nonagon(t *testing.T) {
	rails, err := partition.Decompose(nonagon(), nil)
	require.NoError(t, err)
	require.Len(t, rails, 5, "one rail per sweep event")

	want := []geom.Segment{
		geom.Seg(geom.Pt(0.5, -1), geom.Pt(0.5, 2)),
		geom.Seg(geom.Pt(1, -1.25), geom.Pt(1, 3)),
		geom.Seg(geom.Pt(1.5, -1.5), geom.Pt(1.5, 3+1.0/6)),
		geom.Seg(geom.Pt(2.5, -1.5), geom.Pt(2.5, 3.5)),
		geom.Seg(geom.Pt(3.5, -1), geom.Pt(3.5, 3)),
	}
	assert.Empty(t, cmp.Diff(want, rails, approx))
}

// TestDecompose_OrderedAndSpanned asserts the structural rail invariants on
// the nonagon: strictly increasing x, non-negative span.
func TestDecompose_OrderedAndSpanned(t *testing.T) {
	rails, err := partition.Decompose(nonagon(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, rails)

	prev := nonagon()[0].X
	for i, r := range rails {
		assert.Greater(t, r.X(), prev, "rail %d out of order", i)
		assert.GreaterOrEqual(t, r.Span(), 0.0, "rail %d has negative span", i)
		prev = r.X()
	}
}

// TestDecompose_TooFewVertices rejects anything below a triangle.
func TestDecompose_TooFewVertices(t *testing.T) {
	_, err := partition.Decompose(geom.Polygon{geom.Pt(0, 0), geom.Pt(1, 1)}, nil)
	assert.ErrorIs(t, err, partition.ErrTooFew)
}

// TestDecompose_ZeroArea rejects collinear input before any sweep work.
func TestDecompose_ZeroArea(t *testing.T) {
	flat := geom.Polygon{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0)}
	_, err := partition.Decompose(flat, nil)
	assert.ErrorIs(t, err, partition.ErrZeroArea)
}

// TestDecompose_Concave rejects a reflex vertex under default validation.
func TestDecompose_Concave(t *testing.T) {
	chevron := geom.Polygon{
		geom.Pt(0, 0), geom.Pt(2, 1), geom.Pt(4, 0), geom.Pt(4, 3), geom.Pt(0, 3),
	}
	_, err := partition.Decompose(chevron, nil)
	assert.ErrorIs(t, err, partition.ErrNotConvex)
}

// TestDecompose_Clockwise rejects reversed winding under default validation.
func TestDecompose_Clockwise(t *testing.T) {
	_, err := partition.Decompose(square().Reverse(), nil)
	assert.ErrorIs(t, err, partition.ErrNotConvex)
}

// TestDecompose_NoValidate_MonotoneGuard disables the validation pass and
// checks that the sweep itself still refuses a chain that doubles back.
func TestDecompose_NoValidate_MonotoneGuard(t *testing.T) {
	folded := geom.Polygon{
		geom.Pt(0, 0), geom.Pt(4, 1), geom.Pt(2, 2), geom.Pt(4, 5), geom.Pt(0, 4),
	}
	_, err := partition.Decompose(folded, &partition.Options{Validate: false})
	assert.ErrorIs(t, err, partition.ErrNotConvex, "the monotonicity guard must fire without the validation pass")
}

// TestDecompose_NoValidate_CanonicalInput still sweeps correctly when the
// caller vouches for the input.
func TestDecompose_NoValidate_CanonicalInput(t *testing.T) {
	rails, err := partition.Decompose(square(), &partition.Options{Validate: false})
	require.NoError(t, err)
	assert.Len(t, rails, 1)
}

// TestDecompose_BadOptions surfaces option violations before touching the
// polygon.
func TestDecompose_BadOptions(t *testing.T) {
	_, err := partition.Decompose(square(), &partition.Options{Tolerance: 1.5})
	assert.ErrorIs(t, err, partition.ErrOption, "Tolerance above 1 is rejected")

	_, err = partition.Decompose(square(), &partition.Options{Tolerance: -0.1})
	assert.ErrorIs(t, err, partition.ErrOption, "negative Tolerance is rejected")

	_, err = partition.Decompose(square(), &partition.Options{SpanTol: -1})
	assert.ErrorIs(t, err, partition.ErrOption, "negative SpanTol is rejected")
}
