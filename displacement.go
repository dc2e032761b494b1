package spatial

import (
	"github.com/oliverbestmann/spatial/gm"
	"github.com/oliverbestmann/spatial/units"
)

// Displacement is an offset in space. Its components are lengths.
type Displacement = Vec[units.LengthKind]

func NewDisplacement(x, y, z units.Length) Displacement {
	return VecOf(x, y, z)
}

func DisplacementFrom(x, y, z float64, unit units.LengthUnit) Displacement {
	return VecFrom(x, y, z, unit)
}

func DisplacementFromMeters(x, y, z float64) Displacement {
	return VecFrom(x, y, z, units.Meter)
}

func DisplacementFromVector(v gm.Vector3, unit units.LengthUnit) Displacement {
	return VecFromVector(v, unit)
}

// DisplacementAlong returns a displacement of the given length into direction.
func DisplacementAlong(direction gm.UnitVector3, length units.Length) Displacement {
	return VecAlong(direction, length)
}
