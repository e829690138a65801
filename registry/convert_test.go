package registry

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/qttylib/qtty/errors"
)

func TestConvertValue_KnownConstants(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		src   UnitID
		dst   UnitID
		want  float64
		exact bool
	}{
		{"km to m", 5, Kilometer, Meter, 5000, true},
		{"m to km", 1500, Meter, Kilometer, 1.5, true},
		{"deg to arcsec", 1, Degree, Arcsecond, 3600, true},
		{"deg to rad", 180, Degree, Radian, math.Pi, false},
		{"hour to min", 1, Hour, Minute, 60, true},
		{"day to hour", 2, Day, Hour, 48, true},
		{"kg to g", 2, Kilogram, Gram, 2000, true},
		{"kW to W", 1, Kilowatt, Watt, 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertValue(tt.value, tt.src, tt.dst)
			if err != nil {
				t.Fatalf("ConvertValue() error = %v", err)
			}
			if tt.exact {
				if got != tt.want {
					t.Errorf("ConvertValue() = %v, want exactly %v", got, tt.want)
				}
			} else if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ConvertValue() = %v, want %v within 1e-12", got, tt.want)
			}
		})
	}
}

func TestConvertValue_Identity(t *testing.T) {
	values := []float64{0, 1, -1, 0.1 + 0.2, 1.0 / 3.0, 12345.6789, 1e-300, 1e300}
	for _, id := range Units() {
		for _, v := range values {
			got, err := ConvertValue(v, id, id)
			if err != nil {
				t.Fatalf("ConvertValue(%v, %v, %v) error = %v", v, id, id, err)
			}
			if got != v {
				t.Errorf("identity conversion of %v drifted to %v for unit %v", v, got, id)
			}
		}
	}
}

func TestConvertValue_RoundTrip(t *testing.T) {
	values := []float64{1.5, -273.15, 1e-9, 123456.789}
	for _, a := range Units() {
		for _, b := range Units() {
			if !Compatible(a, b) {
				continue
			}
			for _, v := range values {
				there, err := ConvertValue(v, a, b)
				if err != nil {
					t.Fatalf("ConvertValue(%v, %v, %v) error = %v", v, a, b, err)
				}
				back, err := ConvertValue(there, b, a)
				if err != nil {
					t.Fatalf("ConvertValue(%v, %v, %v) error = %v", there, b, a, err)
				}
				if rel := math.Abs(back-v) / math.Abs(v); rel > 1e-9 {
					t.Errorf("round trip %v -> %v: %v became %v (rel err %g)", a, b, v, back, rel)
				}
			}
		}
	}
}

func TestConvertValue_IncompatibleDimension(t *testing.T) {
	tests := []struct {
		name string
		src  UnitID
		dst  UnitID
	}{
		{"length to time", Kilometer, Second},
		{"angle to length", Degree, Meter},
		{"mass to power", Gram, Watt},
		{"time to dimensionless", Hour, Unitless},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertValue(1, tt.src, tt.dst)
			if err == nil {
				t.Fatal("ConvertValue() should fail across dimensions")
			}
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Kind != errors.KindIncompatibleDimension {
				t.Errorf("error = %v, want kind %v", err, errors.KindIncompatibleDimension)
			}
			if got := StatusOf(err); got != StatusIncompatibleDimension {
				t.Errorf("StatusOf() = %d, want %d", got, StatusIncompatibleDimension)
			}
		})
	}
}

func TestConvertValue_UnknownUnit(t *testing.T) {
	for _, tt := range []struct {
		name string
		src  UnitID
		dst  UnitID
	}{
		{"unknown src", UnitID(99), Meter},
		{"unknown dst", Meter, UnitID(-2)},
		{"both unknown", UnitID(50), UnitID(60)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertValue(1, tt.src, tt.dst)
			if err == nil {
				t.Fatal("ConvertValue() should fail for unknown discriminants")
			}
			if got := StatusOf(err); got != StatusUnknownUnit {
				t.Errorf("StatusOf() = %d, want %d", got, StatusUnknownUnit)
			}
		})
	}
}

func TestConvertValue_NonFinite(t *testing.T) {
	got, err := ConvertValue(math.NaN(), Kilometer, Meter)
	if err != nil {
		t.Fatalf("NaN conversion error = %v, want nil", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("NaN conversion = %v, want NaN", got)
	}

	got, err = ConvertValue(math.Inf(1), Degree, Radian)
	if err != nil {
		t.Fatalf("Inf conversion error = %v, want nil", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("Inf conversion = %v, want +Inf", got)
	}
}

func TestConvert(t *testing.T) {
	got, err := Convert(Quantity{Value: 5, Unit: Kilometer}, Meter)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	want := Quantity{Value: 5000, Unit: Meter}
	if got != want {
		t.Errorf("Convert() = %+v, want %+v", got, want)
	}

	if _, err := Convert(Quantity{Value: 1, Unit: Second}, Radian); err == nil {
		t.Error("Convert() across dimensions should fail")
	}
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		name string
		a, b UnitID
		want bool
	}{
		{"same unit", Meter, Meter, true},
		{"same dimension", Degree, Arcsecond, true},
		{"different dimension", Meter, Second, false},
		{"unknown a", UnitID(99), Meter, false},
		{"unknown b", Meter, UnitID(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compatible(tt.a, tt.b); got != tt.want {
				t.Errorf("Compatible(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestStatusCodes(t *testing.T) {
	// The boundary contract fixes these integers; they must never drift.
	if StatusOK != 0 || StatusUnknownUnit != -1 || StatusIncompatibleDimension != -2 ||
		StatusNullOut != -3 || StatusInvalidValue != -4 {
		t.Errorf("status codes changed: %d %d %d %d %d",
			StatusOK, StatusUnknownUnit, StatusIncompatibleDimension, StatusNullOut, StatusInvalidValue)
	}
}

func TestStatusOf(t *testing.T) {
	if got := StatusOf(nil); got != StatusOK {
		t.Errorf("StatusOf(nil) = %d, want %d", got, StatusOK)
	}
	if got := StatusOf(errors.NullPointer(errors.PhaseBoundary, "out")); got != StatusNullOut {
		t.Errorf("StatusOf(null pointer) = %d, want %d", got, StatusNullOut)
	}
	if got := StatusOf(stderrors.New("opaque")); got != StatusInvalidValue {
		t.Errorf("StatusOf(opaque error) = %d, want %d", got, StatusInvalidValue)
	}
}
