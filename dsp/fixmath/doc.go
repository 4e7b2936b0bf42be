// Package fixmath provides fixed-point transcendental approximations for
// dynamic-range-compression audio processing.
//
// Every function is a pure mapping from bounded-domain Q-format integers to
// bounded-range Q-format integers: no allocation, no state, no I/O, and a
// constant worst-case instruction count (the only loop is the bit scan inside
// Rexp, bounded at 31 iterations). All functions are reentrant and safe to
// call concurrently from multiple processing pipelines.
//
// # Accuracy Characteristics
//
// Log10: degree-5 minimax on [1/sqrt(2), 1), max abs error ~6.1e-8
//
// Sin: degree-7 odd minimax for sin(x*pi/2) on [-1, 1], max abs error ~5.9e-7
//
// Asin: piecewise degree-7 odd minimax, max abs error ~1.9e-5 for
// |x| <= 1/sqrt(2) and ~3.1e-2 above it
//
// Inv: degree-5 minimax for 1/x on [1/sqrt(2), 1), max rel error ~1.0e-6
//
// Exp: 129-entry 2^x table with linear interpolation, max rel error ~5e-5
//
// # Error Policy
//
// The kernel reports no errors. Non-positive arguments to the logarithmic and
// decibel functions return documented saturation sentinels; every other
// domain restriction is a caller precondition, and violating one yields a
// bounded-time result with no accuracy guarantee. There is deliberately no
// runtime validation: this code runs inside hard-real-time audio callbacks.
package fixmath
