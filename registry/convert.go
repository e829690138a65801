package registry

import (
	stderrors "errors"

	"github.com/qttylib/qtty/errors"
)

// Quantity is the erased, ABI-safe value: a payload plus a unit discriminant.
// It is passed by plain value copy and carries no ownership semantics.
type Quantity struct {
	Value float64
	Unit  UnitID
}

// Status is the integer result code used at the C ABI boundary.
type Status int32

const (
	StatusOK                    Status = 0
	StatusUnknownUnit           Status = -1
	StatusIncompatibleDimension Status = -2
	StatusNullOut               Status = -3
	StatusInvalidValue          Status = -4 // reserved
)

// ConvertValue converts a value between two runtime-tagged units using the
// single conversion law value * src.Scale / dst.Scale. Non-finite values
// propagate untouched; only an unknown discriminant or a dimension mismatch
// fails.
func ConvertValue(value float64, src, dst UnitID) (float64, error) {
	srcMeta, ok := Lookup(src)
	if !ok {
		return 0, errors.UnknownUnit(errors.PhaseRegistry, int32(src))
	}
	dstMeta, ok := Lookup(dst)
	if !ok {
		return 0, errors.UnknownUnit(errors.PhaseRegistry, int32(dst))
	}
	if srcMeta.Dim != dstMeta.Dim {
		return 0, errors.New(errors.PhaseRegistry, errors.KindIncompatibleDimension).
			Units(srcMeta.Name, dstMeta.Name).
			Detail("%s and %s do not convert", srcMeta.Dim, dstMeta.Dim).
			Build()
	}
	if src == dst {
		// Identity is exact, no scaling round-trip.
		return value, nil
	}
	return value * (srcMeta.Scale / dstMeta.Scale), nil
}

// Convert converts a tagged quantity to a different unit.
func Convert(q Quantity, dst UnitID) (Quantity, error) {
	v, err := ConvertValue(q.Value, q.Unit, dst)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: dst}, nil
}

// Compatible reports whether both units resolve and share a dimension.
func Compatible(a, b UnitID) bool {
	am, ok := Lookup(a)
	if !ok {
		return false
	}
	bm, ok := Lookup(b)
	if !ok {
		return false
	}
	return am.Dim == bm.Dim
}

// StatusOf maps an error from this package to its boundary status code.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var e *errors.Error
	if stderrors.As(err, &e) {
		switch e.Kind {
		case errors.KindUnknownUnit:
			return StatusUnknownUnit
		case errors.KindIncompatibleDimension:
			return StatusIncompatibleDimension
		case errors.KindNullPointer:
			return StatusNullOut
		}
	}
	return StatusInvalidValue
}
