package geometry

import (
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

func FromF64(p f64.Vec2) Vector2D {
	return Vector2D{X: p[0], Y: p[1]}
}

func (v Vector2D) F64() f64.Vec2 {
	return f64.Vec2{v.X, v.Y}
}

// FromFixed converts a 26.6 fixed-point point as used by x/image/font.
func FromFixed(p fixed.Point26_6) Vector2D {
	return Vector2D{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

// Fixed rounds v to the nearest 1/64 in each component.
func (v Vector2D) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(v.X * 64)),
		Y: fixed.Int26_6(math.Round(v.Y * 64)),
	}
}

// TransformAffine applies m, laid out row major as [a b tx c d ty].
// The linear part is the same as LinearTransform(a, b, c, d).
func (v Vector2D) TransformAffine(m f64.Aff3) Vector2D {
	return v.LinearTransform(m[0], m[1], m[3], m[4]).Add(Vector2D{m[2], m[5]})
}
