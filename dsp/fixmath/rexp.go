package fixmath

import (
	"math/bits"

	"github.com/cwbudde/algo-drc/fixed"
)

var (
	// 1/sqrt(2) and sqrt(2) in Q2.30, shared by the domain-reduction steps
	// of Log10, Asin, and Inv.
	oneOverSqrt2 = fixed.ConvertFloat(0.70710678118654752, 30)
	sqrt2        = fixed.ConvertFloat(1.4142135623730950488, 30)
)

// Rexp normalizes a positive fixed-point value with precision fractional bits
// into a mantissa in [0.5, 1), regulated to Q2.30, and a binary exponent e
// such that x = mant * 2^e relative to the declared format.
//
// Precondition: x > 0. For x == 0 the bit scan finds nothing and the result
// is mantissa 0 with exponent -precision; callers must guard zero and
// negative inputs before calling. For negative x the sign bit is ignored.
func Rexp(x int32, precision int) (mant int32, e int) {
	// bitlen is the number of fractional bits that would place the highest
	// set bit exactly at the 0.5 boundary, i.e. highest-set-bit index + 1.
	bitlen := bits.Len32(uint32(x) & 0x7fffffff)
	e = bitlen - precision

	switch {
	case bitlen > 30:
		mant = fixed.ShiftRnd(x, uint(bitlen), 30)
	case bitlen < 30:
		mant = fixed.ShiftLeft(x, uint(bitlen), 30)
	default:
		mant = x
	}
	return mant, e
}
