package unit

import (
	"math"

	"github.com/qttylib/qtty/registry"
)

//go:generate go run github.com/qttylib/qtty/internal/convgen -out convert_gen.go

// Concrete unit markers. Each is bound to its runtime discriminant via ID(),
// keeping the compile-time units and the registry table in lockstep; the
// binding is checked by tests against the registry metadata.

// Meter is the canonical length unit.
type Meter struct{}

// Kilometer is 1000 metres.
type Kilometer struct{}

// Second is the canonical time unit.
type Second struct{}

// Minute is 60 seconds.
type Minute struct{}

// Hour is 3600 seconds.
type Hour struct{}

// Day is 86400 seconds.
type Day struct{}

// Radian is the canonical angle unit.
type Radian struct{}

// Degree is pi/180 radians.
type Degree struct{}

// Arcminute is 1/60 degree.
type Arcminute struct{}

// Arcsecond is 1/3600 degree.
type Arcsecond struct{}

// Kilogram is the canonical mass unit.
type Kilogram struct{}

// Gram is 1/1000 kilogram.
type Gram struct{}

// Watt is the canonical power unit.
type Watt struct{}

// Kilowatt is 1000 watts.
type Kilowatt struct{}

// Unitless is the unit of dimensionless ratios; its symbol is empty and a
// unitless quantity formats as a bare number.
type Unitless struct{}

func (Meter) Ratio() float64      { return 1.0 }
func (Meter) Symbol() string      { return "m" }
func (Meter) Dim() Length         { return Length{} }
func (Meter) ID() registry.UnitID { return registry.Meter }

func (Kilometer) Ratio() float64      { return 1000.0 }
func (Kilometer) Symbol() string      { return "km" }
func (Kilometer) Dim() Length         { return Length{} }
func (Kilometer) ID() registry.UnitID { return registry.Kilometer }

func (Second) Ratio() float64      { return 1.0 }
func (Second) Symbol() string      { return "s" }
func (Second) Dim() Time           { return Time{} }
func (Second) ID() registry.UnitID { return registry.Second }

func (Minute) Ratio() float64      { return 60.0 }
func (Minute) Symbol() string      { return "min" }
func (Minute) Dim() Time           { return Time{} }
func (Minute) ID() registry.UnitID { return registry.Minute }

func (Hour) Ratio() float64      { return 3600.0 }
func (Hour) Symbol() string      { return "h" }
func (Hour) Dim() Time           { return Time{} }
func (Hour) ID() registry.UnitID { return registry.Hour }

func (Day) Ratio() float64      { return 86400.0 }
func (Day) Symbol() string      { return "d" }
func (Day) Dim() Time           { return Time{} }
func (Day) ID() registry.UnitID { return registry.Day }

func (Radian) Ratio() float64      { return 1.0 }
func (Radian) Symbol() string      { return "rad" }
func (Radian) Dim() Angle          { return Angle{} }
func (Radian) ID() registry.UnitID { return registry.Radian }

func (Degree) Ratio() float64      { return math.Pi / 180.0 }
func (Degree) Symbol() string      { return "deg" }
func (Degree) Dim() Angle          { return Angle{} }
func (Degree) ID() registry.UnitID { return registry.Degree }

func (Arcminute) Ratio() float64      { return math.Pi / 10800.0 }
func (Arcminute) Symbol() string      { return "arcmin" }
func (Arcminute) Dim() Angle          { return Angle{} }
func (Arcminute) ID() registry.UnitID { return registry.Arcminute }

func (Arcsecond) Ratio() float64      { return math.Pi / 648000.0 }
func (Arcsecond) Symbol() string      { return "arcsec" }
func (Arcsecond) Dim() Angle          { return Angle{} }
func (Arcsecond) ID() registry.UnitID { return registry.Arcsecond }

func (Kilogram) Ratio() float64      { return 1.0 }
func (Kilogram) Symbol() string      { return "kg" }
func (Kilogram) Dim() Mass           { return Mass{} }
func (Kilogram) ID() registry.UnitID { return registry.Kilogram }

func (Gram) Ratio() float64      { return 0.001 }
func (Gram) Symbol() string      { return "g" }
func (Gram) Dim() Mass           { return Mass{} }
func (Gram) ID() registry.UnitID { return registry.Gram }

func (Watt) Ratio() float64      { return 1.0 }
func (Watt) Symbol() string      { return "W" }
func (Watt) Dim() Power          { return Power{} }
func (Watt) ID() registry.UnitID { return registry.Watt }

func (Kilowatt) Ratio() float64      { return 1000.0 }
func (Kilowatt) Symbol() string      { return "kW" }
func (Kilowatt) Dim() Power          { return Power{} }
func (Kilowatt) ID() registry.UnitID { return registry.Kilowatt }

func (Unitless) Ratio() float64      { return 1.0 }
func (Unitless) Symbol() string      { return "" }
func (Unitless) Dim() Dimensionless  { return Dimensionless{} }
func (Unitless) ID() registry.UnitID { return registry.Unitless }

// Constructor helpers, one per concrete unit.

func Meters(v float64) Quantity[Length, Meter]         { return New[Length, Meter](v) }
func Kilometers(v float64) Quantity[Length, Kilometer] { return New[Length, Kilometer](v) }
func Seconds(v float64) Quantity[Time, Second]         { return New[Time, Second](v) }
func Minutes(v float64) Quantity[Time, Minute]         { return New[Time, Minute](v) }
func Hours(v float64) Quantity[Time, Hour]             { return New[Time, Hour](v) }
func Days(v float64) Quantity[Time, Day]               { return New[Time, Day](v) }
func Radians(v float64) Quantity[Angle, Radian]        { return New[Angle, Radian](v) }
func Degrees(v float64) Quantity[Angle, Degree]        { return New[Angle, Degree](v) }
func Arcminutes(v float64) Quantity[Angle, Arcminute]  { return New[Angle, Arcminute](v) }
func Arcseconds(v float64) Quantity[Angle, Arcsecond]  { return New[Angle, Arcsecond](v) }
func Kilograms(v float64) Quantity[Mass, Kilogram]     { return New[Mass, Kilogram](v) }
func Grams(v float64) Quantity[Mass, Gram]             { return New[Mass, Gram](v) }
func Watts(v float64) Quantity[Power, Watt]            { return New[Power, Watt](v) }
func Kilowatts(v float64) Quantity[Power, Kilowatt]    { return New[Power, Kilowatt](v) }

// Scalar wraps a bare number as a unitless quantity.
func Scalar(v float64) Quantity[Dimensionless, Unitless] {
	return New[Dimensionless, Unitless](v)
}
