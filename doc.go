// Package spatial provides 3d geometry values that carry a physical unit.
//
// All types are instantiations of two generic types parameterized by a units.Kind:
// Vec is a free vector and Point is a location. Displacement and ForceVector are
// vectors of length and force, Position is a point measured in length.
//
//	a := spatial.PositionFromMeters(1, 1, 1)
//	b := spatial.PositionFrom(4, 3, 2, units.Kilometer)
//	d := a.DisplacementTo(b)
//	fmt.Println(d.Magnitude().As(units.Mile))
//
// Values are stored in the base unit of their kind and are only read through Freeze,
// which converts them into a unitless gm value of the requested unit. Because every
// kind is its own type parameter, combining a Displacement with a ForceVector, or
// adding two positions, does not compile.
//
// Values are immutable and can be shared between goroutines freely.
package spatial
