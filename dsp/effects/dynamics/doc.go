// Package dynamics provides a fixed-point dynamic-range compressor built on
// the dsp/fixmath transcendental kernel.
//
// The gain path runs entirely on 32-bit Q-format integers: level detection,
// the dB-domain soft-knee gain computer, and the decibel/linear conversions
// all use fixmath, so per-sample processing is deterministic, allocation-free
// and bounded-time. Floating point appears only in parameter setters, where
// derived coefficients are recomputed outside the audio path.
//
// The compressor is mono; for stereo, instantiate two compressors or link
// detectors externally. Instances are not thread-safe: parameter changes must
// not race Process calls.
package dynamics
