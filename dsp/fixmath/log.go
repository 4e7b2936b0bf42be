package fixmath

import "github.com/cwbudde/algo-drc/fixed"

// Coefficients obtained from:
// fpminimax(log10(x), 5, [|SG...|], [1/2;sqrt(2)/2], absolute);
// max err ~= 6.088e-8
const log10Frac = 26

var (
	log10A5 = fixed.ConvertFloat(1.131880283355712890625, log10Frac)
	log10A4 = fixed.ConvertFloat(-4.258677959442138671875, log10Frac)
	log10A3 = fixed.ConvertFloat(6.81631565093994140625, log10Frac)
	log10A2 = fixed.ConvertFloat(-6.1185703277587890625, log10Frac)
	log10A1 = fixed.ConvertFloat(3.6505267620086669921875, log10Frac)
	log10A0 = fixed.ConvertFloat(-1.217894077301025390625, log10Frac)

	log10Of2 = fixed.ConvertFloat(0.301029995663981195214, log10Frac)
	lnOf10   = fixed.ConvertFloat(2.3025850929940457, 29)

	logSentinel = fixed.ToQ26(-30.0)
	dbSentinel  = fixed.ToQ21(-1000.0)
)

// Log10 approximates log10(x) for a positive Q6.26 input, returning Q6.26.
// The result is valid on (-inf, 1.505) and saturates into the representable
// range.
//
// Precondition: x > 0. The public callers (Log, LinearToDecibels) guard the
// non-positive case with sentinels; anyone calling Log10 directly owns it.
func Log10(x fixed.Q26) fixed.Q26 {
	m, e := Rexp(int32(x), log10Frac) // Q2.30
	exp := int32(e) << 1              // exponent in Q31.1, half-exponent units

	// Fold the [1/sqrt(2), 1) sqrt(2) boundary into the exponent so the
	// polynomial only ever sees its fitted domain.
	if m > oneOverSqrt2 {
		m = fixed.MultSR(m, oneOverSqrt2, 30, 30, 30)
		exp++ // +0.5 in Q31.1
	}

	m2 := fixed.MultSR(m, m, 30, 30, 30)
	m4 := fixed.MultSR(m2, m2, 30, 30, 30)
	a5m := fixed.MultSR(log10A5, m, log10Frac, 30, log10Frac)
	a3m := fixed.MultSR(log10A3, m, log10Frac, 30, log10Frac)

	poly := fixed.MultSR(a5m+log10A4, m4, log10Frac, 30, log10Frac) +
		fixed.MultSR(a3m+log10A2, m2, log10Frac, 30, log10Frac) +
		fixed.MultSR(log10A1, m, log10Frac, 30, log10Frac) +
		log10A0
	return fixed.Q26(poly + fixed.MultSR(exp, log10Of2, 1, log10Frac, log10Frac))
}

// Log approximates the natural logarithm of a Q6.26 input, returning Q6.26
// with range ~(-inf, 3.47) saturated to (-32, 32). Non-positive inputs map to
// the -30.0 sentinel instead of failing, keeping the call real-time safe.
func Log(x fixed.Q26) fixed.Q26 {
	if x <= 0 {
		return logSentinel
	}
	// log(x) = log(10) * log10(x)
	return fixed.Q26(fixed.MultSR(lnOf10, int32(Log10(x)), 29, 26, 26))
}

// LinearToDecibels converts a positive Q6.26 linear magnitude to Q11.21
// decibels, range ~(-inf, 30.1) saturated to (-1024, 1024). Non-positive
// inputs map to exactly -1000.0 dB, the practical silence floor of the
// decibel scale.
func LinearToDecibels(linear fixed.Q26) fixed.Q21 {
	if linear <= 0 {
		return dbSentinel
	}
	return fixed.Q21(fixed.MultSR(20, int32(Log10(linear)), 0, 26, 21))
}
