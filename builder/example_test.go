package builder_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/eqslice/builder"
)

// ExampleRectangle builds the canonical 4×2 rectangle, ready for
// partitioning without any reorientation.
func ExampleRectangle() {
	p, err := builder.Rectangle(4, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p)
	// Output: [(0, 0) (4, 0) (4, 2) (0, 2)]
}

// ExampleRegular inscribes a square (a regular 4-gon) in the unit circle;
// its area is 2r².
func ExampleRegular() {
	p, err := builder.Regular(4, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("vertices=%d area=%.2f\n", len(p), p.Area())
	// Output: vertices=4 area=2.00
}

// ExampleRandomConvex draws a reproducible convex polygon from a seeded
// source.
func ExampleRandomConvex() {
	rng := rand.New(rand.NewSource(42))

	p, err := builder.RandomConvex(8, 1, rng)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(p), p.IsConvex())
	// Output: 8 true
}
