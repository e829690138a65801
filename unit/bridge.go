package unit

import (
	"github.com/qttylib/qtty/registry"
)

// Bound is the constraint satisfied by units that have a runtime discriminant
// and can therefore cross the ABI boundary. Derived Per units are not bound:
// the boundary carries only the closed set of registry units.
type Bound[D Dimension] interface {
	Unit[D]
	ID() registry.UnitID
}

// Erase converts a typed quantity into the erased boundary representation.
// It always succeeds: the tag is taken from the unit's binding and the value
// is copied as-is.
func Erase[D Dimension, U Bound[D]](q Quantity[D, U]) registry.Quantity {
	var u U
	return registry.Quantity{Value: q.v, Unit: u.ID()}
}

// Restore converts an erased quantity into unit type U. When the runtime tag
// already matches U the value is wrapped directly, avoiding an unnecessary
// floating-point round-trip; otherwise the registry performs the conversion.
// An unknown discriminant or a dimension mismatch surfaces as the registry's
// error, never a panic.
func Restore[D Dimension, U Bound[D]](rq registry.Quantity) (Quantity[D, U], error) {
	var u U
	if rq.Unit == u.ID() {
		return Quantity[D, U]{v: rq.Value}, nil
	}
	v, err := registry.ConvertValue(rq.Value, rq.Unit, u.ID())
	if err != nil {
		return Quantity[D, U]{}, err
	}
	return Quantity[D, U]{v: v}, nil
}
