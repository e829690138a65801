package unit

// Dimension is the marker category distinguishing incompatible physical
// quantities. Dimensions are zero-sized and sealed: arithmetic between
// quantities type-checks only when their units share a dimension type.
type Dimension interface {
	dim()
}

// Length is the dimension of spatial extent.
type Length struct{}

// Time is the dimension of duration.
type Time struct{}

// Angle is the dimension of planar angle.
type Angle struct{}

// Mass is the dimension of mass.
type Mass struct{}

// Power is the dimension of energy per time.
type Power struct{}

// Dimensionless is the dimension of bare ratios.
type Dimensionless struct{}

// DivDim is the quotient of two dimensions. It exists purely to keep
// Length/Time distinct from Angle/Time at compile time.
type DivDim[N, D Dimension] struct{}

func (Length) dim()        {}
func (Time) dim()          {}
func (Angle) dim()         {}
func (Mass) dim()          {}
func (Power) dim()         {}
func (Dimensionless) dim() {}

func (DivDim[N, D]) dim() {}
