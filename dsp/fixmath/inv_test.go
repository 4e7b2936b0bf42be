package fixmath

import (
	"testing"

	"github.com/cwbudde/algo-drc/fixed"
	"github.com/cwbudde/algo-drc/internal/testutil"
)

// TestInvAccuracy sweeps Q6.26 inputs whose reciprocal is representable in
// Q6.26 and compares against 1/x.
func TestInvAccuracy(t *testing.T) {
	for _, x := range testutil.LogSpace(0.04, 31.0, 300) {
		got := Inv(fixed.ConvertFloat(x, 26), 26, 26)
		testutil.RequireQNearRel(t, got, 26, 1/x, 2e-6)
	}
}

// TestInvMixedFormats exercises caller-chosen input/output precisions,
// including outputs that only fit because of the format change.
func TestInvMixedFormats(t *testing.T) {
	tests := []struct {
		name                     string
		x                        float64
		precisionX, precisionY   int
		want                     float64
	}{
		{"small input wide output", 0.002, 26, 21, 500.0},
		{"hundredth", 0.01, 26, 21, 100.0},
		{"q30 to q30", 0.75, 30, 30, 1.0 / 0.75},
		{"q30 in q26 out", 0.9, 30, 26, 1.0 / 0.9},
		{"q26 in q30 out", 1.25, 26, 30, 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Inv(fixed.ConvertFloat(tt.x, uint(tt.precisionX)), tt.precisionX, tt.precisionY)
			testutil.RequireQNearRel(t, got, uint(tt.precisionY), tt.want, 1e-5)
		})
	}
}

// TestInvRoundTrip verifies Inv(Inv(x)) recovers x within 1e-5 relative, the
// composed error of two reciprocal approximations.
func TestInvRoundTrip(t *testing.T) {
	tests := []struct {
		x         float64
		precision int
	}{
		{0.05, 26},
		{0.5, 26},
		{1.0, 26},
		{3.7, 26},
		{14.3, 26},
		{24.0, 26},
		{0.75, 30},
		{0.9, 30},
	}
	for _, tt := range tests {
		x := fixed.ConvertFloat(tt.x, uint(tt.precision))
		back := Inv(Inv(x, tt.precision, tt.precision), tt.precision, tt.precision)
		testutil.RequireQNearRel(t, back, uint(tt.precision), tt.x, 1e-5)
	}
}

// TestInvKnownValue pins the golden reciprocal of 2.0 in Q6.26.
func TestInvKnownValue(t *testing.T) {
	if got := Inv(fixed.ConvertFloat(2.0, 26), 26, 26); got != 33554408 {
		t.Fatalf("Inv(2.0) = %d, want 33554408", got)
	}
}

// TestInvSqrt2Paths covers both sides of the sqrt(2) extraction: a mantissa
// already in [1/sqrt(2), 1) takes the direct path, one below it takes the
// double multiplication.
func TestInvSqrt2Paths(t *testing.T) {
	// 0.75 normalizes to mantissa 0.75 > 1/sqrt(2): direct.
	testutil.RequireQNearRel(t, Inv(fixed.ConvertFloat(0.75, 26), 26, 26), 26, 1/0.75, 2e-6)
	// 0.6 normalizes to mantissa 0.6 < 1/sqrt(2): extracted.
	testutil.RequireQNearRel(t, Inv(fixed.ConvertFloat(0.6, 26), 26, 26), 26, 1/0.6, 2e-6)
}
