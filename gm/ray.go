package gm

import "fmt"

// Ray3 is a half line starting at Origin going into Direction.
type Ray3 struct {
	Origin    Point3
	Direction UnitVector3
}

func (r Ray3) PointAt(t float64) Point3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ClosestPointTo returns the point on the line through the ray
// that is closest to the given point.
func (r Ray3) ClosestPointTo(p Point3) Point3 {
	t := r.Direction.Vector().Dot(r.Origin.VectorTo(p))
	return r.PointAt(t)
}

func (r Ray3) String() string {
	return fmt.Sprintf("ray(origin=%s, direction=%s)", r.Origin, r.Direction)
}
