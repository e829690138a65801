package unit

// Per is the derived unit N/D. It implements Unit[DivDim[DN, DD]], so nested
// division composes without bespoke code per pair of units.
type Per[DN Dimension, N Unit[DN], DD Dimension, D Unit[DD]] struct{}

func (Per[DN, N, DD, D]) Ratio() float64 {
	var n N
	var d D
	return n.Ratio() / d.Ratio()
}

func (Per[DN, N, DD, D]) Symbol() string {
	var n N
	var d D
	return n.Symbol() + "/" + d.Symbol()
}

func (Per[DN, N, DD, D]) Dim() DivDim[DN, DD] {
	return DivDim[DN, DD]{}
}

// Div divides two quantities, producing a ratio-typed quantity. Unlike
// addition, dimensional division is always legal and always representable.
func Div[DN Dimension, N Unit[DN], DD Dimension, D Unit[DD]](
	a Quantity[DN, N], b Quantity[DD, D],
) Quantity[DivDim[DN, DD], Per[DN, N, DD, D]] {
	return Quantity[DivDim[DN, DD], Per[DN, N, DD, D]]{v: a.v / b.v}
}

// Simplify collapses a same-unit ratio (U/U) to a unitless quantity. This is
// a type-level relabeling: the numeric value is carried over bit-identical,
// with no ratio scaling applied.
func Simplify[D Dimension, U Unit[D]](
	q Quantity[DivDim[D, D], Per[D, U, D, U]],
) Quantity[Dimensionless, Unitless] {
	return Quantity[Dimensionless, Unitless]{v: q.v}
}

// SimplifyNested cancels the shared numerator of a nested ratio,
// N / (N / D) -> D. Like Simplify, the value is unchanged.
func SimplifyNested[DN Dimension, N Unit[DN], DD Dimension, D Unit[DD]](
	q Quantity[DivDim[DN, DivDim[DN, DD]], Per[DN, N, DivDim[DN, DD], Per[DN, N, DD, D]]],
) Quantity[DD, D] {
	return Quantity[DD, D]{v: q.v}
}
