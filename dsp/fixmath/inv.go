package fixmath

import "github.com/cwbudde/algo-drc/fixed"

// Coefficients obtained from:
// fpminimax(1/x, 5, [|SG...|], [sqrt(2)/2;1], absolute);
// max err ~= 1.00388e-6
const invFrac = 25

var (
	invA5 = fixed.ConvertFloat(-2.742647647857666015625, invFrac)
	invA4 = fixed.ConvertFloat(14.01327800750732421875, invFrac)
	invA3 = fixed.ConvertFloat(-29.74465179443359375, invFrac)
	invA2 = fixed.ConvertFloat(33.57208251953125, invFrac)
	invA1 = fixed.ConvertFloat(-21.25031280517578125, invFrac)
	invA0 = fixed.ConvertFloat(7.152250766754150390625, invFrac)
)

// Inv approximates the reciprocal of a positive fixed-point value.
// The input carries precisionX fractional bits; the result is rescaled into
// precisionY fractional bits. Both formats are the caller's choice, and the
// caller must pick precisionY so that 1/x is representable in it.
//
// Precondition: x > 0.
func Inv(x int32, precisionX, precisionY int) int32 {
	m, e := Rexp(x, precisionX) // Q2.30

	// Keep the polynomial on its fitted domain [1/sqrt(2), 1): a mantissa
	// below it is scaled up by sqrt(2), and since 1/(m*sqrt(2)) is then
	// 1/sqrt(2) short of 1/m, the same factor is multiplied back in after
	// evaluation. Two multiplications by sqrt(2), both deliberate.
	sqrt2Extracted := false
	if m < oneOverSqrt2 {
		m = fixed.MultSR(m, sqrt2, 30, 30, 30)
		sqrt2Extracted = true
	}

	m2 := fixed.MultSR(m, m, 30, 30, 30)
	m4 := fixed.MultSR(m2, m2, 30, 30, 30)
	a5m := fixed.MultSR(invA5, m, invFrac, 30, invFrac)
	a3m := fixed.MultSR(invA3, m, invFrac, 30, invFrac)

	inv := fixed.MultSR(a5m+invA4, m4, invFrac, 30, invFrac) +
		fixed.MultSR(a3m+invA2, m2, invFrac, 30, invFrac) +
		fixed.MultSR(invA1, m, invFrac, 30, invFrac) +
		invA0

	if sqrt2Extracted {
		inv = fixed.MultSR(inv, sqrt2, invFrac, 30, invFrac)
	}

	// Fold the extracted exponent into the working format: inv currently
	// represents (1/mant) in Q7.25, so treating it as having 25+e
	// fractional bits yields 1/x exactly.
	e += invFrac
	switch {
	case e > precisionY:
		return fixed.ShiftRnd(inv, uint(e), uint(precisionY))
	case e < precisionY:
		return fixed.ShiftLeft(inv, uint(e), uint(precisionY))
	default:
		return inv
	}
}
