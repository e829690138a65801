// Package unit implements strongly-typed physical quantities with
// compile-time dimensional analysis.
//
// A unit is a zero-sized marker type implementing Unit[D] for exactly one
// dimension D; a Quantity[D, U] is a single float64 tagged with that unit.
// Conversion and arithmetic are checked by the type system: converting
// between units of different dimensions, or adding quantities of different
// units, does not compile. The layer has no runtime failure modes; NaN and
// infinity flow through with ordinary IEEE-754 semantics.
//
// # Conversion
//
// Go methods cannot introduce type parameters, so conversion is a free
// function:
//
//	d := unit.Kilometers(1.5)
//	m := unit.To[unit.Meter](d) // 1500 m
//
// Each unit carries a ratio to its dimension's canonical unit (metre, second,
// radian, kilogram, watt) and every conversion is the single law
// value * U.Ratio() / V.Ratio().
//
// # Derived units
//
// Dividing two quantities yields a ratio-typed quantity:
//
//	speed := unit.Div(unit.Meters(10), unit.Seconds(2)) // Quantity[.., Per[..]]
//
// Per composes recursively. Simplify and SimplifyNested collapse ratios back
// to simpler forms without touching the numeric value.
//
// # Crossing the ABI boundary
//
// Generic unit types do not survive an ABI boundary. Erase and Restore
// convert between Quantity[D, U] and the registry package's tagged
// representation; Restore consults the runtime registry when the tags differ.
package unit
