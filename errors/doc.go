// Package errors provides structured error types for the qtty library.
//
// Errors are categorized by Phase (which layer raised the error) and Kind
// (error category). The Error type carries the unit identifiers involved and
// an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRegistry, errors.KindIncompatibleDimension).
//		Units("km", "deg").
//		Detail("length and angle do not convert").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownUnit(errors.PhaseRegistry, 42)
//	err := errors.IncompatibleDimension(errors.PhaseBridge, "km", "deg")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
