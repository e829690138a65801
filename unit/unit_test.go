package unit

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNewAndValue(t *testing.T) {
	q := New[Length, Meter](42.5)
	if got := q.Value(); got != 42.5 {
		t.Errorf("Value() = %v, want 42.5", got)
	}
	if got := Meters(42.5); got != q {
		t.Errorf("Meters(42.5) = %v, want %v", got, q)
	}
}

func TestTo_KnownConstants(t *testing.T) {
	if got := To[Meter](Kilometers(1)).Value(); got != 1000.0 {
		t.Errorf("1 km = %v m, want exactly 1000", got)
	}
	if got := To[Arcsecond](Degrees(1)).Value(); got != 3600.0 {
		t.Errorf("1 deg = %v arcsec, want exactly 3600", got)
	}
	if got := To[Radian](Degrees(180)).Value(); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("180 deg = %v rad, want pi within 1e-12", got)
	}
	if got := To[Second](Hours(2)).Value(); got != 7200.0 {
		t.Errorf("2 h = %v s, want exactly 7200", got)
	}
	if got := To[Gram](Kilograms(1.5)).Value(); got != 1500.0 {
		t.Errorf("1.5 kg = %v g, want exactly 1500", got)
	}
}

func TestTo_IdentityIsExact(t *testing.T) {
	values := []float64{0, 0.1 + 0.2, 1.0 / 3.0, -987.654, 1e-300}
	for _, v := range values {
		if got := To[Degree](Degrees(v)).Value(); got != v {
			t.Errorf("identity conversion drifted: %v -> %v", v, got)
		}
	}
}

func TestTo_RoundTrip(t *testing.T) {
	v := 12.345
	back := To[Degree](To[Arcminute](Degrees(v))).Value()
	if rel := math.Abs(back-v) / v; rel > 1e-9 {
		t.Errorf("deg -> arcmin -> deg: %v became %v", v, back)
	}
}

func TestArithmetic(t *testing.T) {
	a := Meters(10)
	b := Meters(4)

	if got := a.Add(b).Value(); got != 14 {
		t.Errorf("Add = %v, want 14", got)
	}
	if got := a.Sub(b).Value(); got != 6 {
		t.Errorf("Sub = %v, want 6", got)
	}
	if got := a.Mul(2.5).Value(); got != 25 {
		t.Errorf("Mul = %v, want 25", got)
	}
	if got := a.Div(4).Value(); got != 2.5 {
		t.Errorf("Div = %v, want 2.5", got)
	}
	if got := a.Neg().Value(); got != -10 {
		t.Errorf("Neg = %v, want -10", got)
	}
	if got := Meters(-3).Abs().Value(); got != 3 {
		t.Errorf("Abs = %v, want 3", got)
	}
}

func TestComparison(t *testing.T) {
	if !Seconds(1).Equal(Seconds(1)) {
		t.Error("equal quantities should compare equal")
	}
	if Seconds(1).Equal(Seconds(2)) {
		t.Error("unequal quantities should not compare equal")
	}
	if !Seconds(1).Less(Seconds(2)) {
		t.Error("1 s should be less than 2 s")
	}
	if Seconds(math.NaN()).Equal(Seconds(math.NaN())) {
		t.Error("NaN should not compare equal to itself")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"meters", Meters(5000).String(), "5000 m"},
		{"degrees", Degrees(1.5).String(), "1.5 deg"},
		{"unitless is bare", Scalar(2.5).String(), "2.5"},
		{"ratio unit", Div(Meters(10), Seconds(2)).String(), "5 m/s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	// Serialization carries only the bare value; unit identity is the
	// caller's responsibility.
	data, err := json.Marshal(Kilometers(1.5))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != "1.5" {
		t.Errorf("Marshal = %s, want 1.5", data)
	}

	var q Quantity[Length, Kilometer]
	if err := json.Unmarshal([]byte("2.25"), &q); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if q.Value() != 2.25 {
		t.Errorf("Unmarshal value = %v, want 2.25", q.Value())
	}
}

func TestNonFinitePropagation(t *testing.T) {
	if got := To[Meter](Kilometers(math.NaN())).Value(); !math.IsNaN(got) {
		t.Errorf("NaN conversion = %v, want NaN", got)
	}
	if got := To[Radian](Degrees(math.Inf(1))).Value(); !math.IsInf(got, 1) {
		t.Errorf("Inf conversion = %v, want +Inf", got)
	}
	if got := Meters(math.Inf(1)).Add(Meters(math.Inf(-1))).Value(); !math.IsNaN(got) {
		t.Errorf("Inf + -Inf = %v, want NaN", got)
	}
}

func TestUnitMarker(t *testing.T) {
	q := Kilometers(3)
	if got := q.Unit().Symbol(); got != "km" {
		t.Errorf("Unit().Symbol() = %q, want %q", got, "km")
	}
	if got := q.Unit().Ratio(); got != 1000.0 {
		t.Errorf("Unit().Ratio() = %v, want 1000", got)
	}
}
