package testutil

import "math"

// LogSpace returns n multiplicatively spaced values covering [from, to],
// from < to, both positive. Used for sweeping log-domain approximations.
func LogSpace(from, to float64, n int) []float64 {
	out := make([]float64, n)
	ratio := to / from
	for i := range out {
		out[i] = from * math.Pow(ratio, float64(i)/float64(n-1))
	}
	return out
}

// LinSpace returns n linearly spaced values covering [from, to].
func LinSpace(from, to float64, n int) []float64 {
	out := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range out {
		out[i] = from + step*float64(i)
	}
	return out
}
