package fixmath

import "github.com/cwbudde/algo-drc/fixed"

var (
	// log2(e) in Q2.30, for exp(x) = 2^(x*log2(e)).
	log2OfE = fixed.ConvertFloat(1.4426950408889634, 30)
	// log2(10)/20 in Q2.30, for 10^(db/20) = 2^(db*log2(10)/20).
	dbToLog2 = fixed.ConvertFloat(0.1660964047443681, 30)
)

// exp2Q26 computes 2^y for y in Q6.26, returning Q12.20 saturated to the
// representable maximum. The integer part of y selects the octave; the
// fractional part is looked up in the exp2 table with linear interpolation.
func exp2Q26(y int32) fixed.Q20 {
	k := int(y >> 26)         // floor of y
	f := y - int32(k)<<26     // fraction in [0, 1), Q0.26

	idx := f >> 19            // top 7 bits: table segment
	rem := int64(f & (1<<19 - 1))

	base := exp2Table[idx]
	delta := int64(exp2Table[idx+1] - base)
	v := int64(base) + (delta*rem)>>19 // 2^f in Q2.30, [1, 2)

	// Scale by 2^k while moving from Q2.30 to Q12.20.
	shift := 10 - k
	switch {
	case shift <= 0:
		return fixed.Q20(fixed.Sat32(v << uint(-shift)))
	case shift > 31:
		return 0
	default:
		return fixed.Q20(fixed.Sat32(((v >> uint(shift-1)) + 1) >> 1))
	}
}

// Exp approximates e^x for x in Q5.27 (max 16.0), returning Q12.20 saturated
// at max 2048.0. Results below the Q12.20 resolution flush to zero.
func Exp(x fixed.Q27) fixed.Q20 {
	return exp2Q26(fixed.MultSR(int32(x), log2OfE, 27, 30, 26))
}

// DecibelsToLinear converts Q8.24 decibels (max 128.0) to a Q12.20 linear
// magnitude (max 2048.0).
func DecibelsToLinear(db fixed.Q24) fixed.Q20 {
	return exp2Q26(fixed.MultSR(int32(db), dbToLog2, 24, 30, 26))
}

// KneeExp computes the exponential used by the DRC knee transfer curve.
// Input is Q5.27 (max 16.0), output Q12.20 (max 2048.0). It is a
// format-contract wrapper over Exp: the knee computation owns the Q5.27
// argument scaling.
func KneeExp(input fixed.Q27) fixed.Q20 {
	return Exp(input)
}
