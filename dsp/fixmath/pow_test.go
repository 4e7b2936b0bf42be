package fixmath

import (
	"testing"

	"github.com/cwbudde/algo-drc/fixed"
	"github.com/cwbudde/algo-drc/internal/testutil"
)

// TestPowIdentity checks x^1 ~= x within the combined log/exp error.
func TestPowIdentity(t *testing.T) {
	one := fixed.ToQ30(1.0)
	for _, x := range testutil.LogSpace(0.1, 31.0, 100) {
		got := Pow(fixed.ToQ26(x), one)
		testutil.RequireQNearRel(t, int32(got), 20, x, 1e-4)
	}
}

// TestPowSquare checks x^2 with the largest representable Q2.30 exponent
// (2.0 saturates to one LSB short, a relative exponent error of ~1e-9).
func TestPowSquare(t *testing.T) {
	two := fixed.ToQ30(2.0)
	for _, x := range testutil.LogSpace(0.1, 31.0, 100) {
		if x*x >= 2047 {
			continue // outside the Q12.20 output range
		}
		got := Pow(fixed.ToQ26(x), two)
		testutil.RequireQNearRel(t, int32(got), 20, x*x, 1e-4)
	}
}

// TestPowSquareRoot checks x^0.5 and x^-0.5, the exponents the DRC uses for
// makeup-gain compensation.
func TestPowSquareRoot(t *testing.T) {
	tests := []struct {
		x, y, want float64
	}{
		{0.25, 0.5, 0.5},
		{1.0, 0.5, 1.0},
		{4.0, 0.5, 2.0},
		{9.0, 0.5, 3.0},
		{4.0, -0.5, 0.5},
		{16.0, -0.5, 0.25},
	}
	for _, tt := range tests {
		got := Pow(fixed.ToQ26(tt.x), fixed.ToQ30(tt.y))
		testutil.RequireQNearRel(t, int32(got), 20, tt.want, 1e-4)
	}
}

// TestPowZeroExponent pins x^0 == 1 exactly in Q12.20.
func TestPowZeroExponent(t *testing.T) {
	for _, x := range []float64{0.1, 1.0, 5.0, 31.0} {
		if got := Pow(fixed.ToQ26(x), 0); int32(got) != 1<<20 {
			t.Fatalf("Pow(%v, 0) = %d, want %d", x, got, 1<<20)
		}
	}
}
