package fixmath

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-drc/fixed"
	"github.com/cwbudde/algo-drc/internal/testutil"
)

// TestRexpMantissaRange verifies that the mantissa lands in [0.5, 1) and
// that mant * 2^e reconstructs the input relative to its declared format.
func TestRexpMantissaRange(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
	}{
		{"one q26", 1.0, 26},
		{"sixteen q26", 16.0, 26},
		{"near max q26", 31.9, 26},
		{"small q26", 0.001, 26},
		{"one q30", 1.0, 30},
		{"three quarters q30", 0.75, 30},
		{"single lsb q26", 1.0 / (1 << 26), 26},
		{"boundary exact q26", 0.5, 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := fixed.ConvertFloat(tt.value, uint(tt.precision))
			mant, e := Rexp(x, tt.precision)

			mf := testutil.QFloat(mant, 30)
			if mf < 0.5 || mf >= 1.0+1.0/(1<<30) {
				t.Fatalf("mantissa %v outside [0.5, 1)", mf)
			}

			want := testutil.QFloat(x, uint(tt.precision))
			got := math.Ldexp(mf, e)
			if rel := math.Abs(got-want) / want; rel > 1e-6 {
				t.Fatalf("reconstruction %v, want %v (rel %v)", got, want, rel)
			}
		})
	}
}

// TestRexpZeroFallthrough pins the documented out-of-contract behavior for a
// zero input: no set bit, mantissa 0, exponent -precision.
func TestRexpZeroFallthrough(t *testing.T) {
	mant, e := Rexp(0, 26)
	if mant != 0 || e != -26 {
		t.Fatalf("Rexp(0, 26) = (%d, %d), want (0, -26)", mant, e)
	}
}

// TestRexpKnownValues checks exact mantissa/exponent pairs.
func TestRexpKnownValues(t *testing.T) {
	tests := []struct {
		name      string
		x         int32
		precision int
		wantMant  int32
		wantExp   int
	}{
		{"16.0 q26", 1 << 30, 26, 1 << 29, 5},
		{"1.0 q26", 1 << 26, 26, 1 << 29, 1},
		{"0.5 q30", 1 << 29, 30, 1 << 29, 0},
		{"0.75 q30", 3 << 28, 30, 3 << 28, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mant, e := Rexp(tt.x, tt.precision)
			if mant != tt.wantMant || e != tt.wantExp {
				t.Fatalf("Rexp = (%d, %d), want (%d, %d)", mant, e, tt.wantMant, tt.wantExp)
			}
		})
	}
}
