package fixed

// Named Q-format types for the formats that appear on public API surfaces.
// Each type is named after its fractional-bit count; the integer part is the
// remaining bits of an int32 (one of them the sign), so Q26 is a Q6.26 value
// and so on. Keeping these distinct defined types makes cross-format mixups
// compile errors while staying free at runtime.

// Q20 is a Q12.20 value: range (-2048, 2048).
type Q20 int32

// Q21 is a Q11.21 value: range (-1024, 1024).
type Q21 int32

// Q24 is a Q8.24 value: range (-128, 128).
type Q24 int32

// Q26 is a Q6.26 value: range (-32, 32).
type Q26 int32

// Q27 is a Q5.27 value: range (-16, 16).
type Q27 int32

// Q30 is a Q2.30 value: range (-2, 2).
type Q30 int32

// Q31 is a Q1.31 value: range (-1, 1). Used for audio samples.
type Q31 int32

// FracBits per type, for callers that need the format as a runtime quantity.
const (
	FracQ20 = 20
	FracQ21 = 21
	FracQ24 = 24
	FracQ26 = 26
	FracQ27 = 27
	FracQ30 = 30
	FracQ31 = 31
)

// Float64 returns the real value represented by q.
func (q Q20) Float64() float64 { return float64(q) / (1 << FracQ20) }

// Float64 returns the real value represented by q.
func (q Q21) Float64() float64 { return float64(q) / (1 << FracQ21) }

// Float64 returns the real value represented by q.
func (q Q24) Float64() float64 { return float64(q) / (1 << FracQ24) }

// Float64 returns the real value represented by q.
func (q Q26) Float64() float64 { return float64(q) / (1 << FracQ26) }

// Float64 returns the real value represented by q.
func (q Q27) Float64() float64 { return float64(q) / (1 << FracQ27) }

// Float64 returns the real value represented by q.
func (q Q30) Float64() float64 { return float64(q) / (1 << FracQ30) }

// Float64 returns the real value represented by q.
func (q Q31) Float64() float64 { return float64(q) / (1 << FracQ31) }

// ToQ20 converts v to Q12.20, rounding to nearest and saturating.
func ToQ20(v float64) Q20 { return Q20(ConvertFloat(v, FracQ20)) }

// ToQ21 converts v to Q11.21, rounding to nearest and saturating.
func ToQ21(v float64) Q21 { return Q21(ConvertFloat(v, FracQ21)) }

// ToQ24 converts v to Q8.24, rounding to nearest and saturating.
func ToQ24(v float64) Q24 { return Q24(ConvertFloat(v, FracQ24)) }

// ToQ26 converts v to Q6.26, rounding to nearest and saturating.
func ToQ26(v float64) Q26 { return Q26(ConvertFloat(v, FracQ26)) }

// ToQ27 converts v to Q5.27, rounding to nearest and saturating.
func ToQ27(v float64) Q27 { return Q27(ConvertFloat(v, FracQ27)) }

// ToQ30 converts v to Q2.30, rounding to nearest and saturating.
func ToQ30(v float64) Q30 { return Q30(ConvertFloat(v, FracQ30)) }

// ToQ31 converts v to Q1.31, rounding to nearest and saturating.
func ToQ31(v float64) Q31 { return Q31(ConvertFloat(v, FracQ31)) }
