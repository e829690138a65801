package unit

import (
	"encoding/json"
	"math"
	"strconv"
)

// Unit is the constraint satisfied by every unit marker of dimension D.
// Ratio is the multiplicative factor converting one instance of the unit into
// the dimension's canonical unit; it is finite and strictly positive. Unit
// types are zero-sized and stateless.
type Unit[D Dimension] interface {
	Ratio() float64
	Symbol() string
	Dim() D
}

// Quantity is a numeric value tagged with a unit type. It holds exactly one
// float64 and owns it by value. Any float64 is accepted, including NaN and
// infinities; no operation in this layer panics or returns an error.
type Quantity[D Dimension, U Unit[D]] struct {
	v float64
}

// New wraps a raw value in a quantity of unit U.
func New[D Dimension, U Unit[D]](value float64) Quantity[D, U] {
	return Quantity[D, U]{v: value}
}

// Value returns the raw payload.
func (q Quantity[D, U]) Value() float64 {
	return q.v
}

// Unit returns the zero-sized unit marker.
func (q Quantity[D, U]) Unit() U {
	var u U
	return u
}

// To converts q to unit V of the same dimension. Conversion between units of
// different dimensions does not compile. The result is
// value * U.Ratio() / V.Ratio(); converting to the same unit is exact.
func To[V Unit[D], D Dimension, U Unit[D]](q Quantity[D, U]) Quantity[D, V] {
	var u U
	var v V
	return Quantity[D, V]{v: q.v * (u.Ratio() / v.Ratio())}
}

// Add returns q + o. Both operands must have the identical unit type, not
// merely the same dimension: mixing metres and kilometres requires an
// explicit To first.
func (q Quantity[D, U]) Add(o Quantity[D, U]) Quantity[D, U] {
	return Quantity[D, U]{v: q.v + o.v}
}

// Sub returns q - o.
func (q Quantity[D, U]) Sub(o Quantity[D, U]) Quantity[D, U] {
	return Quantity[D, U]{v: q.v - o.v}
}

// Mul scales the payload by a bare scalar; the unit is unchanged.
func (q Quantity[D, U]) Mul(s float64) Quantity[D, U] {
	return Quantity[D, U]{v: q.v * s}
}

// Div divides the payload by a bare scalar; the unit is unchanged.
// For division by another quantity, see the package-level Div.
func (q Quantity[D, U]) Div(s float64) Quantity[D, U] {
	return Quantity[D, U]{v: q.v / s}
}

// Neg returns the negated quantity.
func (q Quantity[D, U]) Neg() Quantity[D, U] {
	return Quantity[D, U]{v: -q.v}
}

// Abs returns the quantity with an absolute-value payload.
func (q Quantity[D, U]) Abs() Quantity[D, U] {
	return Quantity[D, U]{v: math.Abs(q.v)}
}

// Equal reports q == o. NaN compares unequal to everything, as usual.
func (q Quantity[D, U]) Equal(o Quantity[D, U]) bool {
	return q.v == o.v
}

// Less reports q < o.
func (q Quantity[D, U]) Less(o Quantity[D, U]) bool {
	return q.v < o.v
}

// String formats the quantity as "value symbol"; a unit with an empty symbol
// yields the bare number.
func (q Quantity[D, U]) String() string {
	var u U
	s := strconv.FormatFloat(q.v, 'g', -1, 64)
	if sym := u.Symbol(); sym != "" {
		return s + " " + sym
	}
	return s
}

// MarshalJSON serializes the bare numeric value. Unit identity is not
// preserved: the caller is responsible for knowing which unit type to
// deserialize into.
func (q Quantity[D, U]) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.v)
}

// UnmarshalJSON reads a bare numeric value.
func (q *Quantity[D, U]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &q.v)
}
