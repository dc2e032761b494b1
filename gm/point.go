package gm

import (
	"fmt"
	"math"
)

// Point3 is a location in 3d space.
type Point3 struct {
	X, Y, Z float64
}

var Origin = Point3{}

func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Vector returns the vector from the origin to this point.
func (p Point3) Vector() Vector3 {
	return Vector3{X: p.X, Y: p.Y, Z: p.Z}
}

func pointOf(v Vector3) Point3 {
	return Point3{X: v.X, Y: v.Y, Z: v.Z}
}

// Add translates the point by the given vector.
func (p Point3) Add(v Vector3) Point3 {
	return pointOf(p.Vector().Add(v))
}

// SubVector translates the point by the negated vector.
func (p Point3) SubVector(v Vector3) Point3 {
	return pointOf(p.Vector().Sub(v))
}

// Sub returns the vector pointing from other to p.
func (p Point3) Sub(other Point3) Vector3 {
	return p.Vector().Sub(other.Vector())
}

// VectorTo returns the vector pointing from p to other.
func (p Point3) VectorTo(other Point3) Vector3 {
	return other.Sub(p)
}

func (p Point3) DistanceTo(other Point3) float64 {
	return p.VectorTo(other).Length()
}

// Rotate rotates the point about an axis through the origin.
func (p Point3) Rotate(axis UnitVector3, angle Rad) Point3 {
	return pointOf(p.Vector().Rotate(axis, angle))
}

// ProjectOn returns the orthogonal projection of p onto the plane.
func (p Point3) ProjectOn(plane Plane) Point3 {
	return plane.Project(p)
}

// MirrorAbout returns the reflection of p on the plane.
func (p Point3) MirrorAbout(plane Plane) Point3 {
	distance := plane.SignedDistanceTo(p)
	return p.SubVector(plane.Normal().Mul(2 * distance))
}

func (p Point3) ApproxEqual(other Point3, tolerance float64) bool {
	return p.Vector().ApproxEqual(other.Vector(), tolerance)
}

func (p Point3) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z)
}

func (p Point3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", p.X, p.Y, p.Z)
}

func MidPoint(a, b Point3) Point3 {
	return a.Add(a.VectorTo(b).Mul(0.5))
}

// Centroid returns the arithmetic mean of all points. At least one point is required.
func Centroid(points ...Point3) (Point3, error) {
	if len(points) == 0 {
		return Point3{}, fmt.Errorf("%w: centroid of no points", ErrArgument)
	}

	var sum Vector3
	for _, p := range points {
		sum = sum.Add(p.Vector())
	}

	return pointOf(sum.Mul(1 / float64(len(points)))), nil
}
