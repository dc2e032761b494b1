package gm

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Affine represents an affine transformation in homogeneous coordinates.
// It describes rotation, scale and translation.
//
// Use IdentityAffine to build a new identity transformation.
type Affine struct {
	m mgl64.Mat4
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{m: mgl64.Ident4()}
}

func (a Affine) Rotate(axis UnitVector3, angle Rad) Affine {
	axis.mustBeValid()

	rot := Affine{m: mgl64.HomogRotate3D(angle.Radians(), axis.Vector().mgl())}
	return a.Mul(rot)
}

func (a Affine) Scale(scale Vector3) Affine {
	rot := Affine{m: mgl64.Scale3D(scale.X, scale.Y, scale.Z)}
	return a.Mul(rot)
}

func (a Affine) Translate(translate Vector3) Affine {
	rot := Affine{m: mgl64.Translate3D(translate.X, translate.Y, translate.Z)}
	return a.Mul(rot)
}

// Transform applies the affine transform to the given point and returns
// the transformed point.
func (a Affine) Transform(point Point3) Point3 {
	v := a.m.Mul4x1(point.Vector().mgl().Vec4(1))
	return Point3{X: v[0], Y: v[1], Z: v[2]}
}

// TransformVec applies the transform to a vector. This is different from transforming
// a point in that it will not apply the translation component of the Affine transform.
// The vector will only be rotated and scaled.
func (a Affine) TransformVec(vec Vector3) Vector3 {
	v := a.m.Mul4x1(vec.mgl().Vec4(0))
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Translation returns the translation part of the transformation.
func (a Affine) Translation() Vector3 {
	col := a.m.Col(3)
	return Vector3{X: col[0], Y: col[1], Z: col[2]}
}

// Mul multiplies the affine transformation with another transformation.
// The effect of the resulting transformation is the same as transforming a
// point first by other and then by a.
func (a Affine) Mul(other Affine) Affine {
	return Affine{m: a.m.Mul4(other.m)}
}

// Inverse returns the inverse of the Affine transformation.
// This method will panic if an inverse can not be calculated.
func (a Affine) Inverse() Affine {
	inverse, ok := a.TryInverse()
	if !ok {
		panic("gm: affine transformation is not invertible")
	}

	return inverse
}

// TryInverse returns the inverse of the Affine transformation if possible.
func (a Affine) TryInverse() (inverse Affine, ok bool) {
	det := a.m.Det()
	if det == 0 || math.IsNaN(det) {
		return Affine{}, false
	}

	return Affine{m: a.m.Inv()}, true
}

// ApproxEqual reports whether all matrix entries differ by at most tolerance.
func (a Affine) ApproxEqual(other Affine, tolerance float64) bool {
	return a.m.ApproxEqualThreshold(other.m, tolerance)
}
