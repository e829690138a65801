package registry

import (
	"fmt"
	"math"
)

// UnitMeta is one row of the unit-metadata table.
type UnitMeta struct {
	Name  string
	Scale float64 // multiplicative factor to the dimension's canonical unit
	Dim   DimensionID
}

// unitMeta is indexed by UnitID. Scale factors follow the same convention as
// the typed layer's ratios: canonical units (metre, second, radian, kilogram,
// watt) have Scale == 1.0, everything else is expressed against them.
var unitMeta = [unitCount]UnitMeta{
	Meter:     {Name: "m", Scale: 1.0, Dim: Length},
	Kilometer: {Name: "km", Scale: 1000.0, Dim: Length},
	Second:    {Name: "s", Scale: 1.0, Dim: Time},
	Minute:    {Name: "min", Scale: 60.0, Dim: Time},
	Hour:      {Name: "h", Scale: 3600.0, Dim: Time},
	Day:       {Name: "d", Scale: 86400.0, Dim: Time},
	Radian:    {Name: "rad", Scale: 1.0, Dim: Angle},
	Degree:    {Name: "deg", Scale: math.Pi / 180.0, Dim: Angle},
	Arcminute: {Name: "arcmin", Scale: math.Pi / 10800.0, Dim: Angle},
	Arcsecond: {Name: "arcsec", Scale: math.Pi / 648000.0, Dim: Angle},
	Kilogram:  {Name: "kg", Scale: 1.0, Dim: Mass},
	Gram:      {Name: "g", Scale: 0.001, Dim: Mass},
	Watt:      {Name: "W", Scale: 1.0, Dim: Power},
	Kilowatt:  {Name: "kW", Scale: 1000.0, Dim: Power},
	Unitless:  {Name: "", Scale: 1.0, Dim: Dimensionless},
}

func init() {
	if err := validateTable(); err != nil {
		panic(err)
	}
}

// validateTable enforces the table invariants: finite positive scales, names
// matching the UnitID name table, and exactly one canonical unit (Scale == 1)
// per populated dimension.
func validateTable() error {
	canonical := make(map[DimensionID]UnitID, dimensionCount)
	for id := UnitID(0); id < unitCount; id++ {
		meta := unitMeta[id]
		if meta.Scale <= 0 || math.IsInf(meta.Scale, 0) || math.IsNaN(meta.Scale) {
			return fmt.Errorf("registry: unit %d (%s) has invalid scale %v", id, meta.Name, meta.Scale)
		}
		if !meta.Dim.IsValid() {
			return fmt.Errorf("registry: unit %d (%s) has invalid dimension %d", id, meta.Name, meta.Dim)
		}
		if meta.Name != unitNames[id] {
			return fmt.Errorf("registry: unit %d name mismatch: %q vs %q", id, meta.Name, unitNames[id])
		}
		if meta.Scale == 1.0 {
			if prev, ok := canonical[meta.Dim]; ok {
				return fmt.Errorf("registry: dimension %s has two canonical units: %s and %s",
					meta.Dim, unitMeta[prev].Name, meta.Name)
			}
			canonical[meta.Dim] = id
		}
	}
	for id := UnitID(0); id < unitCount; id++ {
		if _, ok := canonical[unitMeta[id].Dim]; !ok {
			return fmt.Errorf("registry: dimension %s has no canonical unit", unitMeta[id].Dim)
		}
	}
	return nil
}

// Lookup returns the metadata for a unit discriminant. The second return is
// false for discriminants outside the registered set, e.g. received from a
// mismatched library version.
func Lookup(u UnitID) (UnitMeta, bool) {
	if !u.IsValid() {
		return UnitMeta{}, false
	}
	return unitMeta[u], true
}

// Name returns the display name of a unit, or "" for an unknown discriminant.
func Name(u UnitID) string {
	meta, ok := Lookup(u)
	if !ok {
		return ""
	}
	return meta.Name
}

// Dimension returns the dimension of a unit.
func Dimension(u UnitID) (DimensionID, bool) {
	meta, ok := Lookup(u)
	if !ok {
		return 0, false
	}
	return meta.Dim, true
}

// Parse resolves a display name ("km", "arcsec") back to its UnitID.
// Unitless has the empty name and is not parseable.
func Parse(name string) (UnitID, bool) {
	if name == "" {
		return 0, false
	}
	for id := UnitID(0); id < unitCount; id++ {
		if unitMeta[id].Name == name {
			return id, true
		}
	}
	return 0, false
}

// Units returns all registered unit discriminants in table order.
func Units() []UnitID {
	ids := make([]UnitID, unitCount)
	for i := range ids {
		ids[i] = UnitID(i)
	}
	return ids
}
