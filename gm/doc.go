// Package gm (stands for geometry math) provides unitless 3d geometry primitives.
//
// It includes a 3d vector type called Vector3, a direction type UnitVector3, a point
// type Point3 and an affine transform named Affine. Planes and rays are described by
// Plane and Ray3.
//
// There is also a type named Rad to represent angle values in radian.
//
// Values of this package are immutable; all operations return new values.
package gm
