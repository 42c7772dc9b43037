package partition_test

import (
	"fmt"

	"github.com/katalvlaran/eqslice/geom"
	"github.com/katalvlaran/eqslice/partition"
)

// ExamplePartition divides a 4×4 square into four equal vertical strips.
// Playground-friendly: no setup beyond the vertex list.
func ExamplePartition() {
	// 1. A canonical polygon: CCW, reference edge vertical at minimum x.
	p := geom.Polygon{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4), geom.Pt(0, 4)}

	// 2. Ask for 4 regions; nil options mean DefaultOptions().
	cuts, err := partition.Partition(p, 4, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Three cuts, ordered left to right.
	fmt.Println(cuts)
	// Output: [(1, 0)─(1, 4) (2, 0)─(2, 4) (3, 0)─(3, 4)]
}

// ExamplePartition_triangle shows an interior cut: halving a right triangle
// needs the quadratic form, because the strip narrows toward the apex.
func ExamplePartition_triangle() {
	tri := geom.Polygon{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(0, 3)}

	cuts, err := partition.Partition(tri, 2, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// The equal-area bisector of this triangle sits at x = 4−2√2.
	fmt.Printf("x=%.4f\n", cuts[0].X())
	// Output: x=1.1716
}

// ExampleDecompose exposes the rail sequence that Partition consumes. The
// redundant mid-edge vertices show up as an extra rail.
func ExampleDecompose() {
	p := geom.Polygon{
		geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(4, 0),
		geom.Pt(4, 4), geom.Pt(2, 4), geom.Pt(0, 4),
	}

	rails, err := partition.Decompose(p, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(rails)
	// Output: [(2, 0)─(2, 4) (4, 0)─(4, 4)]
}
