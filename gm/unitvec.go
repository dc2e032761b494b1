package gm

import (
	"fmt"
	"math"
)

// UnitVector3 is a vector of length one. Use NewUnitVector3 or one of the
// axis values to get a UnitVector3.
//
// The zero value is not a valid direction.
type UnitVector3 struct {
	x, y, z float64
}

var (
	XAxis = UnitVector3{x: 1}
	YAxis = UnitVector3{y: 1}
	ZAxis = UnitVector3{z: 1}
)

// NewUnitVector3 normalizes the given vector. It returns
// ErrArgument if the vector has no length.
func NewUnitVector3(x, y, z float64) (UnitVector3, error) {
	length := math.Sqrt(x*x + y*y + z*z)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return UnitVector3{}, fmt.Errorf("%w: can not normalize vector (%v, %v, %v)", ErrArgument, x, y, z)
	}

	return UnitVector3{x: x / length, y: y / length, z: z / length}, nil
}

// MustUnitVector3 is like NewUnitVector3 but panics on error.
func MustUnitVector3(x, y, z float64) UnitVector3 {
	u, err := NewUnitVector3(x, y, z)
	if err != nil {
		panic(err)
	}

	return u
}

func (u UnitVector3) X() float64 { return u.x }
func (u UnitVector3) Y() float64 { return u.y }
func (u UnitVector3) Z() float64 { return u.z }

func (u UnitVector3) Vector() Vector3 {
	return Vector3{X: u.x, Y: u.y, Z: u.z}
}

func (u UnitVector3) Neg() UnitVector3 {
	return UnitVector3{x: -u.x, y: -u.y, z: -u.z}
}

func (u UnitVector3) Mul(scalar float64) Vector3 {
	return u.Vector().Mul(scalar)
}

func (u UnitVector3) Dot(other UnitVector3) float64 {
	return u.Vector().Dot(other.Vector())
}

func (u UnitVector3) Cross(other UnitVector3) Vector3 {
	return u.Vector().Cross(other.Vector())
}

func (u UnitVector3) AngleTo(other UnitVector3) (Rad, error) {
	return u.Vector().AngleTo(other.Vector())
}

// IsParallelTo reports whether both directions are parallel or anti parallel.
func (u UnitVector3) IsParallelTo(other UnitVector3, tolerance float64) bool {
	return u.Cross(other).Length() <= tolerance
}

func (u UnitVector3) String() string {
	return u.Vector().String()
}

func (u UnitVector3) mustBeValid() {
	if u == (UnitVector3{}) {
		panic("gm: zero UnitVector3 is not a valid direction")
	}
}
