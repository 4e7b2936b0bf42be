package fixmath

import "github.com/cwbudde/algo-drc/fixed"

// Coefficients obtained from:
// fpminimax(sin(x*pi/2), [|1,3,5,7|], [|SG...|], [-1e-30;1], absolute)
// max err ~= 5.901e-7
var (
	sinA7 = fixed.ConvertFloat(-4.3330336920917034149169921875e-3, 30)
	sinA5 = fixed.ConvertFloat(7.9434238374233245849609375e-2, 30)
	sinA3 = fixed.ConvertFloat(-0.645892798900604248046875, 30)
	sinA1 = fixed.ConvertFloat(1.5707910060882568359375, 30)
)

// Sin approximates sin(x*pi/2) for x in Q2.30, i.e. the input encodes an
// angle as a multiple of pi/2. Output is Q2.30 with value range [-1, 1].
//
// There is no domain reduction: the caller guarantees the input stays within
// the fitted range (-2, 2), which the DRC envelope shaping does by
// construction.
func Sin(x fixed.Q30) fixed.Q30 {
	v := int32(x)
	v2 := fixed.MultSR(v, v, 30, 30, 30)
	v4 := fixed.MultSR(v2, v2, 30, 30, 30)

	a3v2 := fixed.MultSR(sinA3, v2, 30, 30, 30)
	a7v2 := fixed.MultSR(sinA7, v2, 30, 30, 30)

	return fixed.Q30(fixed.MultSR(v, fixed.MultSR(v4, a7v2+sinA5, 30, 30, 30)+a3v2+sinA1, 30, 30, 30))
}
