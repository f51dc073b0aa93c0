package rotation

import (
	"fmt"
	"math"
)

// Quaternion is the hypercomplex number w + xi + yj + zk. W is the scalar
// part, (X, Y, Z) the vector part. Like Vector3 it is an immutable value
// type; non-unit quaternions are valid everywhere, including Inverse.
type Quaternion struct {
	W, X, Y, Z float64
}

func NewQuaternion(w, x, y, z float64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// Identity returns the multiplicative identity (1, 0, 0, 0).
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// FromAxisAngle encodes a rotation of angle radians about axis. The axis is
// normalized first unless it is already unit length.
func FromAxisAngle(axis Vector3, angle float64) Quaternion {
	if axis.Length() != 1 {
		axis = axis.Normalize()
	}
	half := angle / 2
	s := math.Sin(half)
	return Quaternion{W: math.Cos(half), X: s * axis.X, Y: s * axis.Y, Z: s * axis.Z}
}

// Norm is the Euclidean norm over all four components.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Scale multiplies every component by factor.
func (q Quaternion) Scale(factor float64) Quaternion {
	return Quaternion{W: q.W * factor, X: q.X * factor, Y: q.Y * factor, Z: q.Z * factor}
}

// Div divides every component by s.
func (q Quaternion) Div(s float64) Quaternion {
	return q.Scale(1 / s)
}

// Normalize scales the quaternion to unit norm. NaN components for the zero
// quaternion, as with Vector3.Normalize.
func (q Quaternion) Normalize() Quaternion {
	return q.Scale(1 / q.Norm())
}

func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{W: q.W + other.W, X: q.X + other.X, Y: q.Y + other.Y, Z: q.Z + other.Z}
}

func (q Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion{W: q.W - other.W, X: q.X - other.X, Y: q.Y - other.Y, Z: q.Z - other.Z}
}

// Mul is the Hamilton product q*other. Not commutative: for the product in
// the other order, call other.Mul(q).
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
	}
}

// MulVec is the Hamilton product of q with v taken as the pure-imaginary
// quaternion (0, v.X, v.Y, v.Z).
func (q Quaternion) MulVec(v Vector3) Quaternion {
	return q.Mul(Quaternion{X: v.X, Y: v.Y, Z: v.Z})
}

// Conjugate negates the vector part.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Inverse is Conjugate scaled by 1/Norm()^2. Undefined (NaN) for the zero
// quaternion.
func (q Quaternion) Inverse() Quaternion {
	n := q.Norm()
	return q.Conjugate().Scale(1 / (n * n))
}

// Transform rotates v by q via the sandwich product. A non-unit quaternion
// rotates without scaling through the q*p*q^-1 path; for a unit quaternion
// the conjugate equals the inverse and the cheaper conjugate path is taken.
// The unit check compares Norm() to 1 exactly, so computed norms almost
// always take the inverse path; both paths agree up to rounding.
func (q Quaternion) Transform(v Vector3) Vector3 {
	p := Quaternion{X: v.X, Y: v.Y, Z: v.Z}

	var t Quaternion
	if q.Norm() != 1 {
		t = q.Mul(p).Mul(q.Inverse())
	} else {
		t = q.Mul(p).Mul(q.Conjugate())
	}

	return Vector3{X: t.X, Y: t.Y, Z: t.Z}
}

// Copy returns an independent equal-valued quaternion.
func (q Quaternion) Copy() Quaternion {
	return Quaternion{W: q.W, X: q.X, Y: q.Y, Z: q.Z}
}

// Get extracts the components, scalar part first.
func (q Quaternion) Get() (w, x, y, z float64) {
	return q.W, q.X, q.Y, q.Z
}

// Equal reports component-wise equality with other.
func (q Quaternion) Equal(other Quaternion) bool {
	return q.W == other.W && q.X == other.X && q.Y == other.Y && q.Z == other.Z
}

// ScalarPart is the real component w.
func (q Quaternion) ScalarPart() float64 {
	return q.W
}

// VectorPart is the imaginary components (x, y, z) as a Vector3.
func (q Quaternion) VectorPart() Vector3 {
	return Vector3{X: q.X, Y: q.Y, Z: q.Z}
}

// StringFixed renders the quaternion at the given decimal precision, the
// scalar part first and each imaginary component with an explicit sign and
// its basis suffix, e.g. "1.00 - 2.00i + 3.00j - 4.00k".
func (q Quaternion) StringFixed(precision int) string {
	return fmt.Sprintf("%.*f", precision, q.W) +
		formatComponent(q.X, "i", precision) +
		formatComponent(q.Y, "j", precision) +
		formatComponent(q.Z, "k", precision)
}

// String renders at the default precision of 2.
func (q Quaternion) String() string {
	return q.StringFixed(2)
}
