package gm

import (
	"fmt"
	"math"
)

// parallelTolerance is used to decide if two directions are parallel.
const parallelTolerance = 1e-12

// Plane is the set of all points x with Normal·x = Offset.
type Plane struct {
	normal UnitVector3
	offset float64
}

// NewPlane returns the plane with the given normal containing the given point.
func NewPlane(normal UnitVector3, through Point3) Plane {
	normal.mustBeValid()

	return Plane{
		normal: normal,
		offset: normal.Vector().Dot(through.Vector()),
	}
}

// PlaneFromCoefficients returns the plane a*x + b*y + c*z + d = 0.
func PlaneFromCoefficients(a, b, c, d float64) (Plane, error) {
	normal, err := NewUnitVector3(a, b, c)
	if err != nil {
		return Plane{}, err
	}

	length := math.Sqrt(a*a + b*b + c*c)
	return Plane{normal: normal, offset: -d / length}, nil
}

func (p Plane) Normal() UnitVector3 {
	return p.normal
}

// Offset returns the signed distance of the plane from the origin along its normal.
func (p Plane) Offset() float64 {
	return p.offset
}

// RootPoint returns the point of the plane closest to the origin.
func (p Plane) RootPoint() Point3 {
	return pointOf(p.normal.Mul(p.offset))
}

// SignedDistanceTo returns the distance of the point to the plane. The value is
// positive if the point lies on the side the normal points to.
func (p Plane) SignedDistanceTo(point Point3) float64 {
	return p.normal.Vector().Dot(point.Vector()) - p.offset
}

// Project returns the orthogonal projection of the point onto the plane.
func (p Plane) Project(point Point3) Point3 {
	return point.SubVector(p.normal.Mul(p.SignedDistanceTo(point)))
}

// IntersectionWith returns the line where both planes intersect.
// Parallel planes do not intersect in a line and ErrArgument is returned.
func (p Plane) IntersectionWith(other Plane) (Ray3, error) {
	direction := p.normal.Cross(other.normal)
	if direction.Length() <= parallelTolerance {
		return Ray3{}, fmt.Errorf("%w: planes are parallel", ErrArgument)
	}

	n1 := p.normal.Vector()
	n2 := other.normal.Vector()

	root := n2.Cross(direction).Mul(p.offset).
		Add(direction.Cross(n1).Mul(other.offset)).
		Mul(1 / direction.LengthSqr())

	// direction is not parallel to zero, so normalization can not fail
	dir, _ := direction.Normalize()

	return Ray3{Origin: pointOf(root), Direction: dir}, nil
}

// IntersectionWithRay returns the point where the ray passes through the plane.
// The ray is treated as an infinite line.
func (p Plane) IntersectionWithRay(ray Ray3) (Point3, error) {
	denom := p.normal.Dot(ray.Direction)
	if math.Abs(denom) <= parallelTolerance {
		return Point3{}, fmt.Errorf("%w: ray is parallel to plane", ErrArgument)
	}

	t := (p.offset - p.normal.Vector().Dot(ray.Origin.Vector())) / denom
	return ray.PointAt(t), nil
}

// IntersectPlanes returns the single point shared by all three planes.
func IntersectPlanes(a, b, c Plane) (Point3, error) {
	n1, n2, n3 := a.normal.Vector(), b.normal.Vector(), c.normal.Vector()

	det := n1.Dot(n2.Cross(n3))
	if math.Abs(det) <= parallelTolerance {
		return Point3{}, fmt.Errorf("%w: planes do not intersect in a single point", ErrArgument)
	}

	sum := n2.Cross(n3).Mul(a.offset).
		Add(n3.Cross(n1).Mul(b.offset)).
		Add(n1.Cross(n2).Mul(c.offset))

	return pointOf(sum.Mul(1 / det)), nil
}

func (p Plane) String() string {
	return fmt.Sprintf("plane(normal=%s, offset=%v)", p.normal, p.offset)
}
