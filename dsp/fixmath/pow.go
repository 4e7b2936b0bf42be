package fixmath

import "github.com/cwbudde/algo-drc/fixed"

// Pow approximates x^y as exp(y * log(x)) for x in Q6.26 (domain (0, 32))
// and y in Q2.30 (domain (-2, 2)), returning Q12.20 (max 2048.0).
//
// Precondition: x > 0 and y*log(x) within the Q5.27 range of Exp. A
// non-positive x hits the -30 Log sentinel, which overflows the Q5.27
// intermediate once |y| > 16/30; the output is then bounded but meaningless.
func Pow(x fixed.Q26, y fixed.Q30) fixed.Q20 {
	return Exp(fixed.Q27(fixed.MultSR(int32(y), int32(Log(x)), 30, 26, 27)))
}
