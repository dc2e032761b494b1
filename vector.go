package spatial

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/spatial/gm"
	"github.com/oliverbestmann/spatial/units"
)

// Vec is a free vector with components of kind K.
//
// The zero value is the zero vector. Two vectors are equal, using == or Equal, if their
// components measured in the base unit of K are exactly equal.
type Vec[K units.Kind] struct {
	canonical gm.Vector3
}

var _ slog.LogValuer = Vec[units.LengthKind]{}

// VecOf creates a vector from three quantities.
func VecOf[K units.Kind](x, y, z units.Quantity[K]) Vec[K] {
	return Vec[K]{canonical: canonicalOf(x, y, z)}
}

// VecFrom creates a vector from three values measured in unit.
func VecFrom[K units.Kind](x, y, z float64, unit units.Unit[K]) Vec[K] {
	return VecFromVector(gm.Vec3(x, y, z), unit)
}

// VecFromVector interprets the components of a unitless vector as values measured in unit.
func VecFromVector[K units.Kind](v gm.Vector3, unit units.Unit[K]) Vec[K] {
	return Vec[K]{canonical: canonicalFrom(v, unit)}
}

// VecAlong creates a vector pointing into direction with the given magnitude.
func VecAlong[K units.Kind](direction gm.UnitVector3, magnitude units.Quantity[K]) Vec[K] {
	return VecOf(
		magnitude.Mul(direction.X()),
		magnitude.Mul(direction.Y()),
		magnitude.Mul(direction.Z()),
	)
}

// VecScaled multiplies a dimensionless vector with a quantity. This is the
// inverse of Vec.Ratio.
func VecScaled[K units.Kind](v gm.Vector3, q units.Quantity[K]) Vec[K] {
	return VecOf(q.Mul(v.X), q.Mul(v.Y), q.Mul(v.Z))
}

// Sum adds all vectors. The sum of no vectors is the zero vector.
func Sum[K units.Kind](vectors ...Vec[K]) Vec[K] {
	var sum Vec[K]
	for _, v := range vectors {
		sum = sum.Add(v)
	}

	return sum
}

// Freeze returns the components of the vector measured in unit.
func (v Vec[K]) Freeze(unit units.Unit[K]) gm.Vector3 {
	return freeze(v.canonical, unit)
}

func (v Vec[K]) base() gm.Vector3 {
	return v.Freeze(units.BaseUnit[K]())
}

func (v Vec[K]) wrap(canonical gm.Vector3) Vec[K] {
	return Vec[K]{canonical: canonical}
}

func (v Vec[K]) X() units.Quantity[K] {
	return units.From(v.base().X, units.BaseUnit[K]())
}

func (v Vec[K]) Y() units.Quantity[K] {
	return units.From(v.base().Y, units.BaseUnit[K]())
}

func (v Vec[K]) Z() units.Quantity[K] {
	return units.From(v.base().Z, units.BaseUnit[K]())
}

// Magnitude returns the euclidean length of the vector.
func (v Vec[K]) Magnitude() units.Quantity[K] {
	return units.From(v.base().Length(), units.BaseUnit[K]())
}

func (v Vec[K]) IsZero() bool {
	return v.base().IsZero()
}

// Equal compares both vectors exactly. To compare with a tolerance, freeze
// both vectors and use gm.Vector3.ApproxEqual.
func (v Vec[K]) Equal(other Vec[K]) bool {
	return v.base() == other.base()
}

// Hash returns a hash of the vector. Equal vectors have equal hashes within one process.
func (v Vec[K]) Hash() uint64 {
	return hashOf(v.base())
}

func (v Vec[K]) Add(other Vec[K]) Vec[K] {
	return v.wrap(v.base().Add(other.base()))
}

func (v Vec[K]) Sub(other Vec[K]) Vec[K] {
	return v.wrap(v.base().Sub(other.base()))
}

func (v Vec[K]) Neg() Vec[K] {
	return v.wrap(v.base().Neg())
}

// Mul scales the vector by a dimensionless scalar.
func (v Vec[K]) Mul(scalar float64) Vec[K] {
	return v.wrap(v.base().Mul(scalar))
}

// Div divides the vector by a dimensionless scalar. Dividing
// by zero returns gm.ErrDivisionByZero.
func (v Vec[K]) Div(scalar float64) (Vec[K], error) {
	res, err := v.base().Div(scalar)
	if err != nil {
		return Vec[K]{}, err
	}

	return v.wrap(res), nil
}

// Ratio divides the vector by a quantity of the same kind, resulting in a
// dimensionless vector. Dividing by a zero quantity returns gm.ErrDivisionByZero.
func (v Vec[K]) Ratio(q units.Quantity[K]) (gm.Vector3, error) {
	return v.base().Div(q.As(units.BaseUnit[K]()))
}

// Rotate rotates the vector about the axis by the given angle using the right hand rule.
func (v Vec[K]) Rotate(axis gm.UnitVector3, angle gm.Rad) Vec[K] {
	return v.wrap(v.base().Rotate(axis, angle))
}

// TransformBy applies the rotation and scale of the transformation to the vector.
// The translation is ignored.
func (v Vec[K]) TransformBy(tr gm.Affine) Vec[K] {
	return v.wrap(tr.TransformVec(v.base()))
}

// AngleTo returns the angle between both vectors in the range [0, π]. If one of the
// vectors is the zero vector, gm.ErrArgument is returned.
func (v Vec[K]) AngleTo(other Vec[K]) (gm.Rad, error) {
	return v.base().AngleTo(other.base())
}

// AngleToDirection returns the angle between the vector and the direction.
func (v Vec[K]) AngleToDirection(direction gm.UnitVector3) (gm.Rad, error) {
	return v.base().AngleTo(direction.Vector())
}

// Direction returns the direction of the vector. The zero vector has no
// direction and gm.ErrArgument is returned.
func (v Vec[K]) Direction() (gm.UnitVector3, error) {
	return v.base().Normalize()
}

// NormalizeTo returns the direction of the vector after measuring it in unit.
func (v Vec[K]) NormalizeTo(unit units.Unit[K]) (gm.UnitVector3, error) {
	return v.Freeze(unit).Normalize()
}

func (v Vec[K]) String() string {
	return fmt.Sprintf("%s %s", v.base(), units.BaseUnit[K]().Symbol())
}

func (v Vec[K]) LogValue() slog.Value {
	return logValueOf[K](v.base())
}
