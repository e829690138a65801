// Package qtty provides strongly-typed physical quantities for Go, with a
// parallel runtime unit registry for crossing ABI boundaries where static
// types are erased.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	qtty/              Root package with the library version
//	├── unit/          Typed quantities: dimensions, units, arithmetic,
//	│                  derived ratio units, and the typed<->erased bridge
//	├── registry/      Runtime UnitID/DimensionID discriminants, the
//	│                  immutable unit-metadata table, table-driven conversion
//	├── errors/        Structured error types (phase/kind taxonomy)
//	├── capi/          C ABI (qtty_* symbols, built with -buildmode=c-shared)
//	└── cmd/qtty/      CLI and interactive TUI unit converter
//
// # Quick Start
//
// Typed quantities are checked at compile time; converting between
// dimensions or adding mismatched units does not build:
//
//	d := unit.Kilometers(5)
//	m := unit.To[unit.Meter](d)       // 5000 m
//	sum := m.Add(unit.Meters(20))     // 5020 m
//	speed := unit.Div(m, unit.Seconds(10))
//
// At an ABI boundary the static unit type is erased into a tagged value:
//
//	eq := unit.Erase(d)               // registry.Quantity{5, registry.Kilometer}
//	back, err := unit.Restore[unit.Length, unit.Meter](eq)
//
// The registry performs the same conversion law over its metadata table, so
// the typed and erased layers never disagree on a conversion result.
//
// # Thread Safety
//
// The entire library is stateless at the value level; the only persistent
// data is the unit-metadata table, which is immutable after process start and
// safe for unsynchronized concurrent reads. Every public operation is a pure
// function of its inputs.
package qtty
