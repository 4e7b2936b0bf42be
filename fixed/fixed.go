// Package fixed provides 32-bit signed Q-format fixed-point primitives for
// deterministic, allocation-free DSP arithmetic.
//
// A Q-format value is a plain int32 whose fractional-bit count is part of the
// caller's contract, not of the value itself. Every operation in this package
// therefore takes the formats of its operands (and of its result) explicitly.
// The named types in formats.go pin the fractional-bit count at compile time
// for the formats used on public API surfaces, so that mixing, say, a Q8.24
// decibel value with a Q6.26 linear magnitude is a type error instead of
// silent corruption.
package fixed

import "math"

// ConvertFloat converts a real literal to a fixed-point integer with frac
// fractional bits, rounding to nearest and saturating to the int32 range.
//
// Intended for converting offline-computed constants (polynomial
// coefficients, scale factors) at package initialization; it is exact
// whenever v*2^frac is an integer within range.
func ConvertFloat(v float64, frac uint) int32 {
	return Sat32(int64(math.Round(v * float64(int64(1)<<frac))))
}

// ShiftRnd rescales x from src fractional bits to dst fractional bits with
// round-to-nearest semantics. Requires src > dst (narrowing).
func ShiftRnd(x int32, src, dst uint) int32 {
	return ((x >> (src - dst - 1)) + 1) >> 1
}

// ShiftLeft rescales x from src fractional bits to dst fractional bits by
// exact zero fill. Requires dst > src (widening). Overflow wraps; the caller
// guarantees headroom.
func ShiftLeft(x int32, src, dst uint) int32 {
	return x << (dst - src)
}

// MultSR multiplies two fixed-point values with a 64-bit intermediate and
// rescales the product to qy fractional bits, rounding to nearest.
// a carries qa fractional bits, b carries qb; requires qa+qb > qy.
func MultSR(a, b int32, qa, qb, qy uint) int32 {
	p := int64(a) * int64(b)
	return int32(((p >> (qa + qb - qy - 1)) + 1) >> 1)
}

// Sat32 saturates a 64-bit intermediate into the int32 range.
func Sat32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

// Abs returns the absolute value of x. Abs(MinInt32) wraps, as in all
// two's-complement fixed-point pipelines; callers keep one bit of headroom.
func Abs(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
