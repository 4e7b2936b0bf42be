package testutil

import (
	"math"
	"testing"
)

// QFloat converts a raw fixed-point value with frac fractional bits to float64.
func QFloat(raw int32, frac uint) float64 {
	return float64(raw) / float64(int64(1)<<frac)
}

// RequireQNear fails t if the fixed-point value raw (frac fractional bits)
// differs from want by more than eps (absolute).
func RequireQNear(t *testing.T, raw int32, frac uint, want, eps float64) {
	t.Helper()
	got := QFloat(raw, frac)
	if diff := math.Abs(got - want); diff > eps {
		t.Fatalf("got %v (raw %d, q%d), want %v (diff %v > eps %v)", got, raw, frac, want, diff, eps)
	}
}

// RequireQNearRel fails t if the fixed-point value raw (frac fractional bits)
// differs from want by more than relEps relative to want. want must be
// nonzero.
func RequireQNearRel(t *testing.T, raw int32, frac uint, want, relEps float64) {
	t.Helper()
	got := QFloat(raw, frac)
	if rel := math.Abs(got-want) / math.Abs(want); rel > relEps {
		t.Fatalf("got %v (raw %d, q%d), want %v (rel diff %v > eps %v)", got, raw, frac, want, rel, relEps)
	}
}

// RequireNonDecreasing fails t if values ever decreases from one element to
// the next.
func RequireNonDecreasing(t *testing.T, values []int32) {
	t.Helper()
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			t.Fatalf("index %d: %d < %d, sequence not non-decreasing", i, values[i], values[i-1])
		}
	}
}

// MaxAbsDiffQ returns the maximum absolute difference between fixed-point
// values (frac fractional bits) and their float references. Panics on length
// mismatch: test inputs are built in pairs.
func MaxAbsDiffQ(raw []int32, frac uint, want []float64) float64 {
	if len(raw) != len(want) {
		panic("testutil: length mismatch")
	}
	maxDiff := 0.0
	for i := range raw {
		d := math.Abs(QFloat(raw[i], frac) - want[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}
