//go:build fastmath

package dynamics

import "github.com/meko-christian/algo-approx"

// mathExp computes e^x using fast approximation. Coefficient updates are not
// in the audio path, but hosts sweeping attack/release from a UI thread still
// benefit.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}
