package spatial

import (
	"hash/maphash"
	"log/slog"

	"github.com/oliverbestmann/spatial/gm"
	"github.com/oliverbestmann/spatial/units"
)

var hashSeed = maphash.MakeSeed()

// canonicalOf converts three quantities into a triple measured in the base unit.
func canonicalOf[K units.Kind](x, y, z units.Quantity[K]) gm.Vector3 {
	base := units.BaseUnit[K]()
	return gm.Vector3{X: x.As(base), Y: y.As(base), Z: z.As(base)}
}

// canonicalFrom converts a triple measured in unit into a triple measured in the base unit.
func canonicalFrom[K units.Kind](v gm.Vector3, unit units.Unit[K]) gm.Vector3 {
	return canonicalOf(units.From(v.X, unit), units.From(v.Y, unit), units.From(v.Z, unit))
}

// freeze converts a triple measured in the base unit into a triple measured in unit.
// All reads of the stored components go through this function.
func freeze[K units.Kind](canonical gm.Vector3, unit units.Unit[K]) gm.Vector3 {
	base := units.BaseUnit[K]()

	return gm.Vector3{
		X: units.From(canonical.X, base).As(unit),
		Y: units.From(canonical.Y, base).As(unit),
		Z: units.From(canonical.Z, base).As(unit),
	}
}

func hashOf(canonical gm.Vector3) uint64 {
	return maphash.Comparable(hashSeed, canonical)
}

func logValueOf[K units.Kind](canonical gm.Vector3) slog.Value {
	return slog.GroupValue(
		slog.Float64("x", canonical.X),
		slog.Float64("y", canonical.Y),
		slog.Float64("z", canonical.Z),
		slog.String("unit", units.BaseUnit[K]().Symbol()),
	)
}
