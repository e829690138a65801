package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/qttylib/qtty"
	"github.com/qttylib/qtty/registry"
)

// The functions in this file implement the boundary contract on plain Go
// pointers; the cgo wrappers in capi.go only translate C pointers and types.
// Keeping the contract cgo-free keeps it testable (cgo is not available in
// test files).
//
// Contract, shared by every entry point: output pointers are validated before
// any work, an erroring call leaves its outputs untouched, and no panic ever
// crosses the boundary.

// recoverStatus converts a panic into StatusInvalidValue. Deferred by every
// boundary function so the caller's stack is preserved no matter what.
func recoverStatus(status *registry.Status, fn string) {
	if r := recover(); r != nil {
		registry.Logger().Error("panic recovered at ABI boundary",
			zap.String("func", fn),
			zap.Any("panic", r))
		*status = registry.StatusInvalidValue
	}
}

func quantityMake(value float64, unit registry.UnitID, out *registry.Quantity) (status registry.Status) {
	defer recoverStatus(&status, "qtty_quantity_make")
	if out == nil {
		return registry.StatusNullOut
	}
	if !unit.IsValid() {
		return registry.StatusUnknownUnit
	}
	*out = registry.Quantity{Value: value, Unit: unit}
	return registry.StatusOK
}

func quantityConvert(in *registry.Quantity, dst registry.UnitID, out *registry.Quantity) (status registry.Status) {
	defer recoverStatus(&status, "qtty_quantity_convert")
	if in == nil || out == nil {
		return registry.StatusNullOut
	}
	res, err := registry.Convert(*in, dst)
	if err != nil {
		return registry.StatusOf(err)
	}
	*out = res
	return registry.StatusOK
}

func quantityConvertValue(value float64, src, dst registry.UnitID, out *float64) (status registry.Status) {
	defer recoverStatus(&status, "qtty_quantity_convert_value")
	if out == nil {
		return registry.StatusNullOut
	}
	v, err := registry.ConvertValue(value, src, dst)
	if err != nil {
		return registry.StatusOf(err)
	}
	*out = v
	return registry.StatusOK
}

func unitDimension(unit registry.UnitID, out *registry.DimensionID) (status registry.Status) {
	defer recoverStatus(&status, "qtty_unit_dimension")
	if out == nil {
		return registry.StatusNullOut
	}
	dim, ok := registry.Dimension(unit)
	if !ok {
		return registry.StatusUnknownUnit
	}
	*out = dim
	return registry.StatusOK
}

func unitIsValid(unit registry.UnitID) bool {
	return unit.IsValid()
}

func unitName(unit registry.UnitID) (string, bool) {
	meta, ok := registry.Lookup(unit)
	if !ok {
		return "", false
	}
	return meta.Name, true
}

func unitsCompatible(a, b registry.UnitID) bool {
	return registry.Compatible(a, b)
}

func ffiVersion() string {
	return fmt.Sprintf("qtty %s", qtty.Version)
}
