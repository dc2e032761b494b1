package units

type Length = Quantity[LengthKind]

type LengthUnit = Unit[LengthKind]

var lengthUnits = []unitDef{
	{name: "meter", plural: "meters", symbol: "m", factor: 1},
	{name: "kilometer", plural: "kilometers", symbol: "km", factor: 1e3},
	{name: "decimeter", plural: "decimeters", symbol: "dm", factor: 1e-1},
	{name: "centimeter", plural: "centimeters", symbol: "cm", factor: 1e-2},
	{name: "millimeter", plural: "millimeters", symbol: "mm", factor: 1e-3},
	{name: "micrometer", plural: "micrometers", symbol: "µm", factor: 1e-6},
	{name: "nanometer", plural: "nanometers", symbol: "nm", factor: 1e-9},
	{name: "inch", plural: "inches", symbol: "in", factor: 0.0254},
	{name: "foot", plural: "feet", symbol: "ft", factor: 0.3048},
	{name: "yard", plural: "yards", symbol: "yd", factor: 0.9144},
	{name: "mile", plural: "miles", symbol: "mi", factor: 1609.344},
	{name: "nautical mile", plural: "nautical miles", symbol: "nmi", factor: 1852},
}

var (
	Meter        = unitOf[LengthKind](lengthUnits[0])
	Kilometer    = unitOf[LengthKind](lengthUnits[1])
	Decimeter    = unitOf[LengthKind](lengthUnits[2])
	Centimeter   = unitOf[LengthKind](lengthUnits[3])
	Millimeter   = unitOf[LengthKind](lengthUnits[4])
	Micrometer   = unitOf[LengthKind](lengthUnits[5])
	Nanometer    = unitOf[LengthKind](lengthUnits[6])
	Inch         = unitOf[LengthKind](lengthUnits[7])
	Foot         = unitOf[LengthKind](lengthUnits[8])
	Yard         = unitOf[LengthKind](lengthUnits[9])
	Mile         = unitOf[LengthKind](lengthUnits[10])
	NauticalMile = unitOf[LengthKind](lengthUnits[11])
)

func Meters(value float64) Length {
	return From(value, Meter)
}

func Kilometers(value float64) Length {
	return From(value, Kilometer)
}

func Feet(value float64) Length {
	return From(value, Foot)
}

func Miles(value float64) Length {
	return From(value, Mile)
}
