package geometry

import (
	"fmt"
	"log/slog"
	"math"
)

// Vector2D is a 2D Cartesian vector. The zero value is the zero vector.
// Degenerate inputs (division by zero, normalizing the zero vector) follow
// IEEE-754 and produce NaN or infinite components rather than errors.
type Vector2D struct {
	X float64
	Y float64
}

func New(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

func Zero() Vector2D {
	return Vector2D{}
}

// FromPolar builds a vector of length r pointing at theta radians.
func FromPolar(r, theta float64) Vector2D {
	return Vector2D{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

func (v *Vector2D) Set(x, y float64) {
	v.X = x
	v.Y = y
}

func (v *Vector2D) Clear() {
	v.Set(0, 0)
}

func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{v.X * factor, v.Y * factor}
}

// Div divides both components by scalar. A zero scalar gives ±Inf or NaN.
func (v Vector2D) Div(scalar float64) Vector2D {
	return Vector2D{v.X / scalar, v.Y / scalar}
}

func (v Vector2D) Neg() Vector2D {
	return Vector2D{-v.X, -v.Y}
}

// AddInPlace adds other to v and returns v so calls can be chained.
func (v *Vector2D) AddInPlace(other Vector2D) *Vector2D {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v *Vector2D) SubInPlace(other Vector2D) *Vector2D {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v *Vector2D) ScaleInPlace(factor float64) *Vector2D {
	v.X *= factor
	v.Y *= factor
	return v
}

func (v *Vector2D) DivInPlace(scalar float64) *Vector2D {
	v.X /= scalar
	v.Y /= scalar
	return v
}

// Dot calculates the dot product of two vectors
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product, i.e. the determinant
// of the 2x2 matrix [v other]. Positive when other is counter-clockwise of v.
func (v Vector2D) Cross(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

func (v Vector2D) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector2D) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// Angle is the direction of v in radians, in (-π, π]. The zero vector has angle 0.
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Unit returns v scaled to length 1. The zero vector yields NaN components;
// callers that need a fallback should check IsZero first or use Normalize.
func (v Vector2D) Unit() Vector2D {
	return v.Div(v.Magnitude())
}

// Normalize is Unit with the zero vector mapped to itself.
func (v Vector2D) Normalize() Vector2D {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return Vector2D{0, 0}
	}
	return v.Div(magnitude)
}

// ProjectOnto returns the orthogonal projection of v onto other.
// Projecting onto the zero vector yields NaN components.
func (v Vector2D) ProjectOnto(other Vector2D) Vector2D {
	return other.Scale(v.Dot(other) / other.MagnitudeSquared())
}

// Perpendicular returns the unit vector obtained by rotating v a quarter turn
// counter-clockwise. Works for any non-zero v, including vectors on either axis.
func (v Vector2D) Perpendicular() Vector2D {
	return Vector2D{-v.Y, v.X}.Unit()
}

// LinearTransform applies the matrix [[a, b], [c, d]] to v.
func (v Vector2D) LinearTransform(a, b, c, d float64) Vector2D {
	return Vector2D{a*v.X + b*v.Y, c*v.X + d*v.Y}
}

func (v *Vector2D) LinearTransformInPlace(a, b, c, d float64) {
	v.Set(a*v.X+b*v.Y, c*v.X+d*v.Y)
}

// Rotate turns v counter-clockwise by theta radians.
func (v Vector2D) Rotate(theta float64) Vector2D {
	sin, cos := math.Sincos(theta)
	return v.LinearTransform(cos, -sin, sin, cos)
}

// reflected = incident - 2*(incident·normal)*normal
func (v Vector2D) Reflect(normal Vector2D) Vector2D {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// AngleTo calculates the unsigned angle between this vector and another vector in radians
func (v Vector2D) AngleTo(other Vector2D) float64 {
	magV := v.Magnitude()
	magOther := other.Magnitude()

	// Handle zero-length vectors
	if magV == 0 || magOther == 0 {
		return 0
	}

	// cos(θ) = (A · B) / (|A| * |B|)
	cosTheta := v.Dot(other) / (magV * magOther)

	// Clamp to [-1, 1] to handle floating point precision issues
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}

	return math.Acos(cosTheta)
}

func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Magnitude()
}

func (v Vector2D) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vector2D) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

func (v Vector2D) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// ApproxEqual reports whether each component of v is within tolerance of other's.
// NaN components never compare equal.
func (v Vector2D) ApproxEqual(other Vector2D, tolerance float64) bool {
	return math.Abs(v.X-other.X) <= tolerance && math.Abs(v.Y-other.Y) <= tolerance
}

func (v Vector2D) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func (v Vector2D) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("x", v.X),
		slog.Float64("y", v.Y),
	)
}
