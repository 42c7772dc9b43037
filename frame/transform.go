package frame

import (
	"math"

	"github.com/katalvlaran/eqslice/geom"
)

// Transform is a rotation about the origin, stored as the (cos, sin) pair of
// its angle. ToCanonical returns the transform that maps canonical
// coordinates back into the frame of the original polygon; Invert flips the
// direction.
//
// The zero value is not the identity; use Rotation(0) for that.
type Transform struct {
	Cos float64
	Sin float64
}

// Rotation returns the transform that rotates points counter-clockwise by
// angle radians about the origin.
func Rotation(angle float64) Transform {
	return Transform{Cos: math.Cos(angle), Sin: math.Sin(angle)}
}

// Apply rotates pt about the origin.
func (t Transform) Apply(pt geom.Point) geom.Point {
	return geom.Pt(t.Cos*pt.X-t.Sin*pt.Y, t.Sin*pt.X+t.Cos*pt.Y)
}

// Invert returns the inverse rotation, so that for any point p,
// t.Invert().Apply(t.Apply(p)) recovers p up to rounding.
func (t Transform) Invert() Transform {
	return Transform{Cos: t.Cos, Sin: -t.Sin}
}

// Angle reports the rotation angle in radians, in (−π, π].
func (t Transform) Angle() float64 {
	return math.Atan2(t.Sin, t.Cos)
}
