package units

type Force = Quantity[ForceKind]

type ForceUnit = Unit[ForceKind]

var forceUnits = []unitDef{
	{name: "newton", plural: "newtons", symbol: "N", factor: 1},
	{name: "kilonewton", plural: "kilonewtons", symbol: "kN", factor: 1e3},
	{name: "meganewton", plural: "meganewtons", symbol: "MN", factor: 1e6},
	{name: "dyne", plural: "dynes", symbol: "dyn", factor: 1e-5},
	{name: "kilogram-force", plural: "kilograms-force", symbol: "kgf", factor: 9.80665},
	{name: "pound-force", plural: "pounds-force", symbol: "lbf", factor: 4.4482216152605},
	{name: "kilopound-force", plural: "kilopounds-force", symbol: "kip", factor: 4448.2216152605},
	{name: "poundal", plural: "poundals", symbol: "pdl", factor: 0.138254954376},
}

var (
	Newton         = unitOf[ForceKind](forceUnits[0])
	Kilonewton     = unitOf[ForceKind](forceUnits[1])
	Meganewton     = unitOf[ForceKind](forceUnits[2])
	Dyne           = unitOf[ForceKind](forceUnits[3])
	KilogramForce  = unitOf[ForceKind](forceUnits[4])
	PoundForce     = unitOf[ForceKind](forceUnits[5])
	KilopoundForce = unitOf[ForceKind](forceUnits[6])
	Poundal        = unitOf[ForceKind](forceUnits[7])
)

func Newtons(value float64) Force {
	return From(value, Newton)
}

func PoundsForce(value float64) Force {
	return From(value, PoundForce)
}
