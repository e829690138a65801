package registry

// UnitID identifies a unit across the ABI boundary, where generic unit types
// are erased. Discriminants are stable: existing values never change, new
// units are appended.
type UnitID int32

const (
	Meter UnitID = iota
	Kilometer
	Second
	Minute
	Hour
	Day
	Radian
	Degree
	Arcminute
	Arcsecond
	Kilogram
	Gram
	Watt
	Kilowatt
	Unitless

	unitCount // sentinel, not a unit
)

// DimensionID identifies the dimension category of a unit at runtime.
type DimensionID int32

const (
	Length DimensionID = iota
	Time
	Angle
	Mass
	Power
	Dimensionless

	dimensionCount // sentinel, not a dimension
)

var unitNames = [...]string{
	Meter:     "m",
	Kilometer: "km",
	Second:    "s",
	Minute:    "min",
	Hour:      "h",
	Day:       "d",
	Radian:    "rad",
	Degree:    "deg",
	Arcminute: "arcmin",
	Arcsecond: "arcsec",
	Kilogram:  "kg",
	Gram:      "g",
	Watt:      "W",
	Kilowatt:  "kW",
	Unitless:  "",
}

var dimensionNames = [...]string{
	Length:        "length",
	Time:          "time",
	Angle:         "angle",
	Mass:          "mass",
	Power:         "power",
	Dimensionless: "dimensionless",
}

func (u UnitID) String() string {
	if u.IsValid() {
		return unitNames[u]
	}
	return "unknown"
}

// IsValid reports whether u is a registered discriminant.
func (u UnitID) IsValid() bool {
	return u >= 0 && u < unitCount
}

func (d DimensionID) String() string {
	if d.IsValid() {
		return dimensionNames[d]
	}
	return "unknown"
}

// IsValid reports whether d is a registered dimension.
func (d DimensionID) IsValid() bool {
	return d >= 0 && d < dimensionCount
}
