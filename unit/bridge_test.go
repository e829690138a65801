package unit

import (
	stderrors "errors"
	"testing"

	"github.com/qttylib/qtty/errors"
	"github.com/qttylib/qtty/registry"
)

func TestErase(t *testing.T) {
	got := Erase(Kilometers(5))
	want := registry.Quantity{Value: 5, Unit: registry.Kilometer}
	if got != want {
		t.Errorf("Erase = %+v, want %+v", got, want)
	}
}

func TestRestore_SameUnitIsExact(t *testing.T) {
	v := 0.1 + 0.2 // not representable exactly; must survive untouched
	q, err := Restore[Angle, Degree](registry.Quantity{Value: v, Unit: registry.Degree})
	if err != nil {
		t.Fatalf("Restore error = %v", err)
	}
	if q.Value() != v {
		t.Errorf("same-unit restore drifted: %v -> %v", v, q.Value())
	}
}

func TestRestore_ConvertsThroughRegistry(t *testing.T) {
	q, err := Restore[Length, Meter](registry.Quantity{Value: 5, Unit: registry.Kilometer})
	if err != nil {
		t.Fatalf("Restore error = %v", err)
	}
	if q.Value() != 5000 {
		t.Errorf("Restore = %v m, want 5000", q.Value())
	}
}

func TestRestore_Errors(t *testing.T) {
	if _, err := Restore[Length, Meter](registry.Quantity{Value: 1, Unit: registry.UnitID(99)}); err == nil {
		t.Error("restoring an unknown discriminant should fail")
	} else {
		var e *errors.Error
		if !stderrors.As(err, &e) || e.Kind != errors.KindUnknownUnit {
			t.Errorf("error = %v, want kind %v", err, errors.KindUnknownUnit)
		}
	}

	if _, err := Restore[Length, Meter](registry.Quantity{Value: 1, Unit: registry.Second}); err == nil {
		t.Error("restoring across dimensions should fail")
	} else if got := registry.StatusOf(err); got != registry.StatusIncompatibleDimension {
		t.Errorf("StatusOf = %d, want %d", got, registry.StatusIncompatibleDimension)
	}
}

func TestRoundTripThroughBoundary(t *testing.T) {
	orig := Degrees(12.5)
	back, err := Restore[Angle, Degree](Erase(orig))
	if err != nil {
		t.Fatalf("Restore error = %v", err)
	}
	if back != orig {
		t.Errorf("boundary round trip changed the quantity: %v -> %v", orig, back)
	}
}

// The compile-time units and the registry table must agree on binding, scale,
// and display name; this is what keeps the two conversion laws identical.
func TestBindingsMatchRegistry(t *testing.T) {
	type marker interface {
		Ratio() float64
		Symbol() string
		ID() registry.UnitID
	}
	units := []marker{
		Meter{}, Kilometer{},
		Second{}, Minute{}, Hour{}, Day{},
		Radian{}, Degree{}, Arcminute{}, Arcsecond{},
		Kilogram{}, Gram{},
		Watt{}, Kilowatt{},
		Unitless{},
	}

	seen := make(map[registry.UnitID]bool)
	for _, u := range units {
		meta, ok := registry.Lookup(u.ID())
		if !ok {
			t.Errorf("%T is bound to unregistered id %d", u, u.ID())
			continue
		}
		if meta.Scale != u.Ratio() {
			t.Errorf("%T ratio %v disagrees with registry scale %v", u, u.Ratio(), meta.Scale)
		}
		if meta.Name != u.Symbol() {
			t.Errorf("%T symbol %q disagrees with registry name %q", u, u.Symbol(), meta.Name)
		}
		if seen[u.ID()] {
			t.Errorf("duplicate binding for id %d", u.ID())
		}
		seen[u.ID()] = true
	}
	if len(seen) != len(registry.Units()) {
		t.Errorf("bound %d units, registry has %d", len(seen), len(registry.Units()))
	}
}
