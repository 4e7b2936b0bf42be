package fixmath

import "github.com/cwbudde/algo-drc/fixed"

// Coefficients obtained from:
// If x <= 1/sqrt(2), then
//   fpminimax(asin(x), [|1,3,5,7|], [|SG...|], [-1e-30;1/sqrt(2)], absolute)
//   max err ~= 1.89936e-5
// Else then
//   fpminimax(asin(x), [|1,3,5,7|], [|SG...|], [1/sqrt(2);1], absolute)
//   max err ~= 3.085226e-2
//
// The high-branch coefficients are large, so that branch evaluates in Q6.26
// after a precision downshift of the argument to keep multiply headroom.
const (
	asinFracLow  = 30
	asinFracHigh = 26
)

var (
	twoOverPi = fixed.ConvertFloat(0.63661977236758134, asinFracLow)

	asinA7L = fixed.ConvertFloat(0.1181826665997505187988281, asinFracLow)
	asinA5L = fixed.ConvertFloat(4.0224377065896987915039062e-2, asinFracLow)
	asinA3L = fixed.ConvertFloat(0.1721895635128021240234375, asinFracLow)
	asinA1L = fixed.ConvertFloat(0.99977016448974609375, asinFracLow)

	asinA7H = fixed.ConvertFloat(14.12774658203125, asinFracHigh)
	asinA5H = fixed.ConvertFloat(-30.1692714691162109375, asinFracHigh)
	asinA3H = fixed.ConvertFloat(21.4760608673095703125, asinFracHigh)
	asinA1H = fixed.ConvertFloat(-3.894591808319091796875, asinFracHigh)
)

// Asin approximates asin(x)*(2/pi) for x in Q2.30, |x| <= 1, returning Q2.30
// with value range [-1, 1]: the arcsine expressed as a fraction of pi/2.
//
// Branch selection is a single comparison of |x| against 1/sqrt(2); the two
// coefficient sets work on different internal formats and are both rescaled
// by 2/pi into the common Q2.30 output.
func Asin(x fixed.Q30) fixed.Q30 {
	v := int32(x)

	var a7, a5, a3, a1 int32
	var q uint
	if fixed.Abs(v) <= oneOverSqrt2 {
		a7, a5, a3, a1 = asinA7L, asinA5L, asinA3L, asinA1L
		q = asinFracLow
	} else {
		a7, a5, a3, a1 = asinA7H, asinA5H, asinA3H, asinA1H
		q = asinFracHigh
		v = fixed.ShiftRnd(v, asinFracLow, asinFracHigh) // Q6.26
	}

	v2 := fixed.MultSR(v, v, q, q, q)
	v4 := fixed.MultSR(v2, v2, q, q, q)

	a3v2 := fixed.MultSR(a3, v2, q, q, q)
	a7v2 := fixed.MultSR(a7, v2, q, q, q)

	asinv := fixed.MultSR(v, fixed.MultSR(v4, a7v2+a5, q, q, q)+a3v2+a1, q, q, q)
	return fixed.Q30(fixed.MultSR(asinv, twoOverPi, q, asinFracLow, 30))
}
