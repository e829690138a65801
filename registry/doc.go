// Package registry provides the runtime counterpart of the typed unit system.
//
// Generic unit types cannot cross an ABI boundary, so the boundary carries a
// Quantity tagged with a UnitID discriminant instead. This package maps each
// UnitID to its metadata (dimension, scale to the dimension's canonical unit,
// display name) and performs table-driven conversion with the same law the
// typed layer uses:
//
//	converted = value * src.Scale / dst.Scale
//
// The metadata table is built once at compile time, is never mutated, and is
// safe to read concurrently without synchronization. All functions are pure;
// the only failure modes are an unregistered discriminant and a conversion
// between different dimensions.
//
// Exactly one unit per dimension has Scale == 1.0 (the canonical unit: metre,
// second, radian, kilogram, watt). The table is validated at package init.
package registry
