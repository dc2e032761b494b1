package spatial

import (
	"github.com/oliverbestmann/spatial/gm"
	"github.com/oliverbestmann/spatial/units"
)

// ForceVector is a force acting into a direction. Its components are forces.
type ForceVector = Vec[units.ForceKind]

func NewForceVector(x, y, z units.Force) ForceVector {
	return VecOf(x, y, z)
}

func ForceVectorFrom(x, y, z float64, unit units.ForceUnit) ForceVector {
	return VecFrom(x, y, z, unit)
}

func ForceVectorFromNewtons(x, y, z float64) ForceVector {
	return VecFrom(x, y, z, units.Newton)
}

func ForceVectorFromVector(v gm.Vector3, unit units.ForceUnit) ForceVector {
	return VecFromVector(v, unit)
}

// ForceVectorAlong returns a force of the given magnitude into direction.
func ForceVectorAlong(direction gm.UnitVector3, magnitude units.Force) ForceVector {
	return VecAlong(direction, magnitude)
}

// NetForce returns the sum of all forces.
func NetForce(forces ...ForceVector) ForceVector {
	return Sum(forces...)
}
