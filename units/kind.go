package units

// Kind describes the dimension of a quantity. The set of kinds is closed,
// use LengthKind or ForceKind.
type Kind interface {
	comparable

	// catalog returns all known units of this kind. The first entry is the base unit.
	catalog() []unitDef
}

type unitDef struct {
	name   string
	plural string
	symbol string
	factor float64
}

// LengthKind is the kind of all Length quantities. Its base unit is the meter.
type LengthKind struct{}

// ForceKind is the kind of all Force quantities. Its base unit is the newton.
type ForceKind struct{}

func (LengthKind) catalog() []unitDef {
	return lengthUnits
}

func (ForceKind) catalog() []unitDef {
	return forceUnits
}

// KindName returns a human readable name of the kind K.
func KindName[K Kind]() string {
	var k K
	switch any(k).(type) {
	case LengthKind:
		return "length"
	case ForceKind:
		return "force"
	default:
		return "unknown"
	}
}
