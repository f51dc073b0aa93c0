// Package rotation provides immutable 3D vector and quaternion value types
// and the arithmetic used for spatial rotation math.
package rotation

import (
	"errors"
	"fmt"
	"math"
)

// Vector3 is a 3-dimensional Euclidean vector. Operations never mutate the
// receiver; each returns a new value, so a Vector3 is safe to share freely.
type Vector3 struct {
	X, Y, Z float64
}

// NormKind selects the norm computed by Vector3.Norm.
type NormKind int

const (
	NormL1  NormKind = 1 // sum of absolute components
	NormL2  NormKind = 2 // Euclidean length
	NormInf NormKind = 3 // maximum absolute component
)

// AngleUnit selects the unit Angle reports in.
type AngleUnit int

const (
	Radians AngleUnit = iota
	Degrees
)

var (
	ErrNormKind  = errors.New("norm kind must be NormL1, NormL2, or NormInf")
	ErrAngleUnit = errors.New("angle unit must be Radians or Degrees")
)

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Norm computes the norm of the given kind. Unknown kinds report an error
// wrapping ErrNormKind.
func (v Vector3) Norm(kind NormKind) (float64, error) {
	switch kind {
	case NormL1:
		return math.Abs(v.X) + math.Abs(v.Y) + math.Abs(v.Z), nil
	case NormL2:
		return v.Length(), nil
	case NormInf:
		return math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z))), nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrNormKind, kind)
	}
}

// Length is the Euclidean norm.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Scale multiplies every component by factor.
func (v Vector3) Scale(factor float64) Vector3 {
	return Vector3{X: v.X * factor, Y: v.Y * factor, Z: v.Z * factor}
}

// Normalize scales the vector to unit length. The zero vector has no
// direction: its components come out NaN per IEEE-754, callers must guard.
func (v Vector3) Normalize() Vector3 {
	return v.Scale(1 / v.Length())
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Neg flips the sign of every component.
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot is the standard inner product.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross is the right-hand-rule cross product; Cross(a, b) == Cross(b, a).Neg().
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Angle is the angle between v and other, in the requested unit. The acos
// argument is not clamped: a zero-length operand, or rounding pushing it
// outside [-1, 1], yields NaN. Unknown units report an error wrapping
// ErrAngleUnit.
func (v Vector3) Angle(other Vector3, unit AngleUnit) (float64, error) {
	rad := math.Acos(v.Dot(other) / (v.Length() * other.Length()))
	switch unit {
	case Radians:
		return rad, nil
	case Degrees:
		return rad * 180 / math.Pi, nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrAngleUnit, unit)
	}
}

// Copy returns an independent equal-valued vector.
func (v Vector3) Copy() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// Get extracts the components.
func (v Vector3) Get() (x, y, z float64) {
	return v.X, v.Y, v.Z
}

// Equal reports component-wise equality with other. Exact comparison: NaN
// components compare unequal per IEEE-754.
func (v Vector3) Equal(other Vector3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// FromPlane returns the non-normalized normal of the plane through three
// points, the cross product of the edges p2-p1 and p3-p1. Collinear points
// give the zero vector.
func FromPlane(p1, p2, p3 [3]float64) Vector3 {
	v12 := Vector3{X: p2[0] - p1[0], Y: p2[1] - p1[1], Z: p2[2] - p1[2]}
	v13 := Vector3{X: p3[0] - p1[0], Y: p3[1] - p1[1], Z: p3[2] - p1[2]}
	return v12.Cross(v13)
}

// Dot is the free-function form of Vector3.Dot.
func Dot(a, b Vector3) float64 {
	return a.Dot(b)
}

// Cross is the free-function form of Vector3.Cross.
func Cross(a, b Vector3) Vector3 {
	return a.Cross(b)
}

// Angle is the free-function form of Vector3.Angle.
func Angle(a, b Vector3, unit AngleUnit) (float64, error) {
	return a.Angle(b, unit)
}

// StringFixed renders the vector at the given decimal precision, each
// trailing component with an explicit sign and basis suffix, e.g.
// "1.00e_x - 2.00e_y + 3.00e_z".
func (v Vector3) StringFixed(precision int) string {
	return fmt.Sprintf("%.*fe_x", precision, v.X) +
		formatComponent(v.Y, "e_y", precision) +
		formatComponent(v.Z, "e_z", precision)
}

// String renders at the default precision of 2.
func (v Vector3) String() string {
	return v.StringFixed(2)
}

func formatComponent(value float64, suffix string, precision int) string {
	sign := "+"
	if value < 0 {
		sign = "-"
	}
	return fmt.Sprintf(" %s %.*f%s", sign, precision, math.Abs(value), suffix)
}
