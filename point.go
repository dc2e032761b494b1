package spatial

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/spatial/gm"
	"github.com/oliverbestmann/spatial/units"
)

// Point is a location relative to a fixed origin, with coordinates of kind K.
//
// A Point can be moved by a Vec of the same kind, and the difference of two points is
// a Vec. Adding two points is not defined. The zero value is the origin.
type Point[K units.Kind] struct {
	canonical gm.Vector3
}

var _ slog.LogValuer = Point[units.LengthKind]{}

// PointOf creates a point from three coordinates.
func PointOf[K units.Kind](x, y, z units.Quantity[K]) Point[K] {
	return Point[K]{canonical: canonicalOf(x, y, z)}
}

// PointFrom creates a point from three coordinates measured in unit.
func PointFrom[K units.Kind](x, y, z float64, unit units.Unit[K]) Point[K] {
	return PointFromPoint(gm.Pt3(x, y, z), unit)
}

// PointFromPoint interprets the coordinates of a unitless point as values measured in unit.
func PointFromPoint[K units.Kind](p gm.Point3, unit units.Unit[K]) Point[K] {
	return Point[K]{canonical: canonicalFrom(p.Vector(), unit)}
}

// PointAlong returns the point at distance from the origin in the given direction.
func PointAlong[K units.Kind](direction gm.UnitVector3, distance units.Quantity[K]) Point[K] {
	var origin Point[K]
	return origin.Add(VecAlong(direction, distance))
}

// Centroid returns the arithmetic mean of the points. At least one point is required,
// otherwise gm.ErrArgument is returned.
func Centroid[K units.Kind](points ...Point[K]) (Point[K], error) {
	frozen := make([]gm.Point3, 0, len(points))
	for _, p := range points {
		frozen = append(frozen, p.Freeze(units.BaseUnit[K]()))
	}

	centroid, err := gm.Centroid(frozen...)
	if err != nil {
		return Point[K]{}, err
	}

	return Point[K]{canonical: centroid.Vector()}, nil
}

// Freeze returns the coordinates of the point measured in unit.
func (p Point[K]) Freeze(unit units.Unit[K]) gm.Point3 {
	v := freeze(p.canonical, unit)
	return gm.Pt3(v.X, v.Y, v.Z)
}

func (p Point[K]) base() gm.Point3 {
	return p.Freeze(units.BaseUnit[K]())
}

func (p Point[K]) wrap(canonical gm.Point3) Point[K] {
	return Point[K]{canonical: canonical.Vector()}
}

func (p Point[K]) X() units.Quantity[K] {
	return units.From(p.base().X, units.BaseUnit[K]())
}

func (p Point[K]) Y() units.Quantity[K] {
	return units.From(p.base().Y, units.BaseUnit[K]())
}

func (p Point[K]) Z() units.Quantity[K] {
	return units.From(p.base().Z, units.BaseUnit[K]())
}

func (p Point[K]) IsOrigin() bool {
	return p.base() == gm.Origin
}

// Equal compares both points exactly.
func (p Point[K]) Equal(other Point[K]) bool {
	return p.base() == other.base()
}

// Hash returns a hash of the point. Equal points have equal hashes within one process.
func (p Point[K]) Hash() uint64 {
	return hashOf(p.base().Vector())
}

// Add moves the point by the given displacement.
func (p Point[K]) Add(d Vec[K]) Point[K] {
	return p.wrap(p.base().Add(d.base()))
}

// SubDisplacement moves the point by the negated displacement.
func (p Point[K]) SubDisplacement(d Vec[K]) Point[K] {
	return p.wrap(p.base().SubVector(d.base()))
}

// Sub returns the displacement from other to p, that means other.Add(p.Sub(other)) == p.
func (p Point[K]) Sub(other Point[K]) Vec[K] {
	return Vec[K]{canonical: p.base().Sub(other.base())}
}

// DisplacementTo returns the displacement from p to other. This is other.Sub(p).
func (p Point[K]) DisplacementTo(other Point[K]) Vec[K] {
	return other.Sub(p)
}

// DisplacementFromOrigin returns the displacement from the origin to p.
func (p Point[K]) DisplacementFromOrigin() Vec[K] {
	var origin Point[K]
	return p.Sub(origin)
}

// DistanceTo returns the euclidean distance between both points.
func (p Point[K]) DistanceTo(other Point[K]) units.Quantity[K] {
	return p.DisplacementTo(other).Magnitude()
}

// TransformBy applies the transformation to the point. The translation of the
// transformation is measured in unit.
func (p Point[K]) TransformBy(tr gm.Affine, unit units.Unit[K]) Point[K] {
	return PointFromPoint(tr.Transform(p.Freeze(unit)), unit)
}

func (p Point[K]) String() string {
	return fmt.Sprintf("%s %s", p.base(), units.BaseUnit[K]().Symbol())
}

func (p Point[K]) LogValue() slog.Value {
	return logValueOf[K](p.base().Vector())
}
