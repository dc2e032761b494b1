package spatial

import (
	"github.com/oliverbestmann/spatial/gm"
	"github.com/oliverbestmann/spatial/units"
)

// Position is a location in space. Its coordinates are lengths.
type Position = Point[units.LengthKind]

// Origin returns the position at (0, 0, 0).
func Origin() Position {
	return Position{}
}

func NewPosition(x, y, z units.Length) Position {
	return PointOf(x, y, z)
}

func PositionFrom(x, y, z float64, unit units.LengthUnit) Position {
	return PointFrom(x, y, z, unit)
}

func PositionFromMeters(x, y, z float64) Position {
	return PointFrom(x, y, z, units.Meter)
}

func PositionFromPoint(p gm.Point3, unit units.LengthUnit) Position {
	return PointFromPoint(p, unit)
}

func PositionAlong(direction gm.UnitVector3, distance units.Length) Position {
	return PointAlong(direction, distance)
}
