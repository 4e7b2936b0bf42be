package fixmath_test

import (
	"fmt"

	"github.com/cwbudde/algo-drc/dsp/fixmath"
	"github.com/cwbudde/algo-drc/fixed"
)

// ExampleLinearToDecibels demonstrates converting a linear magnitude to
// decibels and back, entirely in fixed point.
func ExampleLinearToDecibels() {
	linear := fixed.ToQ26(0.5)

	db := fixmath.LinearToDecibels(linear)
	back := fixmath.DecibelsToLinear(fixed.Q24(fixed.ShiftLeft(int32(db), 21, 24)))

	fmt.Printf("0.5 linear = %.3f dB\n", db.Float64())
	fmt.Printf("round trip = %.3f\n", back.Float64())
	// Output:
	// 0.5 linear = -6.021 dB
	// round trip = 0.500
}

// ExamplePow demonstrates the fixed-point power function used by the DRC
// gain stage.
func ExamplePow() {
	x := fixed.ToQ26(4.0)
	half := fixed.ToQ30(0.5)

	fmt.Printf("4.0^0.5 = %.3f\n", fixmath.Pow(x, half).Float64())
	// Output:
	// 4.0^0.5 = 2.000
}

// ExampleInv demonstrates the generic reciprocal with caller-chosen formats:
// Q6.26 in, Q11.21 out, so reciprocals above the Q6.26 ceiling still fit.
func ExampleInv() {
	x := fixed.ConvertFloat(0.01, 26)

	inv := fixmath.Inv(x, 26, 21)

	fmt.Printf("1/0.01 = %.2f\n", float64(inv)/(1<<21))
	// Output:
	// 1/0.01 = 100.00
}
