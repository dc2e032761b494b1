package gm

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Vector3 is a 3d vector of float64 values.
type Vector3 struct {
	X, Y, Z float64
}

var VecZero = Vector3{}

func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) r3() r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vector3) mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func vecOfR3(v r3.Vector) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func vecOfMgl(v mgl64.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func (v Vector3) Add(other Vector3) Vector3 {
	return vecOfR3(v.r3().Add(other.r3()))
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return vecOfR3(v.r3().Sub(other.r3()))
}

func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3) Mul(scalar float64) Vector3 {
	return vecOfR3(v.r3().Mul(scalar))
}

// Div divides each component by the given scalar. Dividing by zero
// returns ErrDivisionByZero.
func (v Vector3) Div(scalar float64) (Vector3, error) {
	if scalar == 0 {
		return Vector3{}, ErrDivisionByZero
	}

	return Vector3{X: v.X / scalar, Y: v.Y / scalar, Z: v.Z / scalar}, nil
}

func (v Vector3) Dot(other Vector3) float64 {
	return v.r3().Dot(other.r3())
}

func (v Vector3) Cross(other Vector3) Vector3 {
	return vecOfR3(v.r3().Cross(other.r3()))
}

// Length returns the euclidean norm of the vector.
func (v Vector3) Length() float64 {
	return v.r3().Norm()
}

func (v Vector3) LengthSqr() float64 {
	return v.r3().Norm2()
}

func (v Vector3) IsZero() bool {
	return v == VecZero
}

// Normalize returns the direction of this vector. A zero vector has no
// direction, in this case ErrArgument is returned.
func (v Vector3) Normalize() (UnitVector3, error) {
	return NewUnitVector3(v.X, v.Y, v.Z)
}

// Rotate rotates the vector about the given axis using the right hand rule.
func (v Vector3) Rotate(axis UnitVector3, angle Rad) Vector3 {
	axis.mustBeValid()

	q := mgl64.QuatRotate(angle.Radians(), axis.Vector().mgl())
	return vecOfMgl(q.Rotate(v.mgl()))
}

// AngleTo returns the angle between both vectors in the range [0, π].
// The angle is not defined if one of the vectors has zero length.
func (v Vector3) AngleTo(other Vector3) (Rad, error) {
	if v.IsZero() || other.IsZero() {
		return 0, fmt.Errorf("%w: angle to or from a zero vector", ErrArgument)
	}

	return radOf(v.r3().Angle(other.r3())), nil
}

// ApproxEqual reports whether each component differs by at most tolerance.
func (v Vector3) ApproxEqual(other Vector3, tolerance float64) bool {
	return math.Abs(v.X-other.X) <= tolerance &&
		math.Abs(v.Y-other.Y) <= tolerance &&
		math.Abs(v.Z-other.Z) <= tolerance
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
