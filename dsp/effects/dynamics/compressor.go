package dynamics

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-drc/dsp/fixmath"
	"github.com/cwbudde/algo-drc/fixed"
)

const (
	// Default compressor parameters
	defaultThresholdDB = -20.0
	defaultRatio       = 4.0
	defaultKneeDB      = 6.0
	defaultAttackMs    = 10.0
	defaultReleaseMs   = 100.0
	defaultMakeupDB    = 0.0

	// Parameter validation ranges
	minRatio     = 1.0
	maxRatio     = 100.0
	minAttackMs  = 0.1
	maxAttackMs  = 1000.0
	minReleaseMs = 1.0
	maxReleaseMs = 5000.0
	minKneeDB    = 0.0
	maxKneeDB    = 24.0
	maxMakeupDB  = 24.0

	// Below this knee width 1/(2*knee) no longer fits Q2.30, and a knee
	// that narrow is indistinguishable from a hard one anyway.
	hardKneeLimitDB = 0.5
)

// Compressor is a mono soft-knee downward compressor whose gain computation
// runs entirely in fixed point.
//
// Audio samples are Q1.31. The detector envelope feeds a dB-domain gain
// computer with a quadratic soft knee; gains are converted back to linear
// through the fixmath exp table. All per-sample state fits in two int32
// values.
type Compressor struct {
	// User-configurable parameters
	thresholdDB  float64
	ratio        float64
	kneeDB       float64
	attackMs     float64
	releaseMs    float64
	makeupGainDB float64
	autoMakeup   bool

	sampleRate float64

	// Cached fixed-point coefficients, recomputed on parameter change
	threshold    fixed.Q21 // threshold in dB
	halfKnee     fixed.Q21 // knee/2 in dB
	inv2Knee     fixed.Q30 // 1/(2*knee), zero for a hard knee
	slopeMinus1  fixed.Q30 // 1/ratio - 1, in (-1, 0]
	makeupGain   fixed.Q20 // linear makeup gain
	attackAlpha  fixed.Q30 // one-pole smoothing per sample
	releaseAlpha fixed.Q30

	// Envelope follower state
	envelope fixed.Q31
	lastGain fixed.Q20
}

// NewCompressor creates a fixed-point soft-knee compressor.
//
// Sample rate must be positive and finite.
//
// Default parameters:
//   - Threshold: -20 dB
//   - Ratio: 4:1
//   - Knee: 6 dB
//   - Attack: 10 ms
//   - Release: 100 ms
//   - Auto makeup gain: enabled
func NewCompressor(sampleRate float64) (*Compressor, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("compressor sample rate must be positive and finite: %f", sampleRate)
	}

	c := &Compressor{
		thresholdDB:  defaultThresholdDB,
		ratio:        defaultRatio,
		kneeDB:       defaultKneeDB,
		attackMs:     defaultAttackMs,
		releaseMs:    defaultReleaseMs,
		makeupGainDB: defaultMakeupDB,
		autoMakeup:   true,
		sampleRate:   sampleRate,
	}

	c.updateCoefficients()
	c.Reset()
	return c, nil
}

// SetThreshold sets the compression threshold in dB.
// Typical range: -60 to 0 dB. Signals above this level will be compressed.
func (c *Compressor) SetThreshold(dB float64) error {
	if math.IsNaN(dB) || math.IsInf(dB, 0) {
		return fmt.Errorf("compressor threshold must be finite: %f", dB)
	}
	c.thresholdDB = dB
	c.updateCoefficients()
	return nil
}

// SetRatio sets the compression ratio, 1.0 to 100.0.
func (c *Compressor) SetRatio(ratio float64) error {
	if math.IsNaN(ratio) || ratio < minRatio || ratio > maxRatio {
		return fmt.Errorf("compressor ratio out of range [%g, %g]: %f", minRatio, maxRatio, ratio)
	}
	c.ratio = ratio
	c.updateCoefficients()
	return nil
}

// SetKnee sets the soft-knee width in dB, 0 to 24. Widths below 0.5 dB are
// treated as a hard knee.
func (c *Compressor) SetKnee(dB float64) error {
	if math.IsNaN(dB) || dB < minKneeDB || dB > maxKneeDB {
		return fmt.Errorf("compressor knee out of range [%g, %g]: %f", minKneeDB, maxKneeDB, dB)
	}
	c.kneeDB = dB
	c.updateCoefficients()
	return nil
}

// SetAttack sets the attack time in milliseconds, 0.1 to 1000.
func (c *Compressor) SetAttack(ms float64) error {
	if math.IsNaN(ms) || ms < minAttackMs || ms > maxAttackMs {
		return fmt.Errorf("compressor attack out of range [%g, %g]: %f", minAttackMs, maxAttackMs, ms)
	}
	c.attackMs = ms
	c.updateCoefficients()
	return nil
}

// SetRelease sets the release time in milliseconds, 1 to 5000.
func (c *Compressor) SetRelease(ms float64) error {
	if math.IsNaN(ms) || ms < minReleaseMs || ms > maxReleaseMs {
		return fmt.Errorf("compressor release out of range [%g, %g]: %f", minReleaseMs, maxReleaseMs, ms)
	}
	c.releaseMs = ms
	c.updateCoefficients()
	return nil
}

// SetMakeupGain sets the manual makeup gain in dB, -24 to 24. Only used when
// auto makeup is disabled.
func (c *Compressor) SetMakeupGain(dB float64) error {
	if math.IsNaN(dB) || dB < -maxMakeupDB || dB > maxMakeupDB {
		return fmt.Errorf("compressor makeup gain out of range [%g, %g]: %f", -maxMakeupDB, maxMakeupDB, dB)
	}
	c.makeupGainDB = dB
	c.updateCoefficients()
	return nil
}

// SetAutoMakeup enables or disables automatic makeup gain compensation.
func (c *Compressor) SetAutoMakeup(enabled bool) {
	c.autoMakeup = enabled
	c.updateCoefficients()
}

// Threshold returns the threshold in dB.
func (c *Compressor) Threshold() float64 { return c.thresholdDB }

// Ratio returns the compression ratio.
func (c *Compressor) Ratio() float64 { return c.ratio }

// Knee returns the knee width in dB.
func (c *Compressor) Knee() float64 { return c.kneeDB }

// Attack returns the attack time in milliseconds.
func (c *Compressor) Attack() float64 { return c.attackMs }

// Release returns the release time in milliseconds.
func (c *Compressor) Release() float64 { return c.releaseMs }

// MakeupGain returns the manual makeup gain in dB.
func (c *Compressor) MakeupGain() float64 { return c.makeupGainDB }

// AutoMakeup reports whether automatic makeup gain is enabled.
func (c *Compressor) AutoMakeup() bool { return c.autoMakeup }

// SampleRate returns the configured sample rate.
func (c *Compressor) SampleRate() float64 { return c.sampleRate }

// Reset clears the envelope follower state.
func (c *Compressor) Reset() {
	c.envelope = 0
	c.lastGain = c.makeupGain
}

// LastGain returns the most recently applied linear gain (Q12.20), including
// makeup. Useful for gain-reduction metering.
func (c *Compressor) LastGain() fixed.Q20 { return c.lastGain }

func (c *Compressor) updateCoefficients() {
	c.threshold = fixed.ToQ21(c.thresholdDB)
	c.halfKnee = fixed.ToQ21(c.kneeDB / 2)

	if c.kneeDB < hardKneeLimitDB {
		c.inv2Knee = 0
	} else {
		c.inv2Knee = fixed.Q30(fixmath.Inv(fixed.ConvertFloat(2*c.kneeDB, 21), 21, 30))
	}

	// slope - 1 = 1/ratio - 1; the reciprocal comes from the kernel so the
	// whole static curve stays consistent with the fixed-point math.
	invRatio := fixmath.Inv(fixed.ConvertFloat(c.ratio, 24), 24, 30)
	c.slopeMinus1 = fixed.Q30(invRatio - 1<<30)

	// One-pole smoothing coefficients. The exp call is parameter-time only.
	c.attackAlpha = fixed.ToQ30(1 - mathExp(-1000/(c.attackMs*c.sampleRate)))
	c.releaseAlpha = fixed.ToQ30(1 - mathExp(-1000/(c.releaseMs*c.sampleRate)))

	if c.autoMakeup {
		// Half-way compensation: makeup = gain(0 dBFS)^-0.5.
		g0 := fixmath.DecibelsToLinear(fixed.Q24(fixed.ShiftLeft(int32(c.gainDB(0)), 21, 24)))
		c.makeupGain = fixmath.Pow(fixed.Q26(fixed.ShiftLeft(int32(g0), 20, 26)), fixed.ToQ30(-0.5))
	} else {
		c.makeupGain = fixmath.DecibelsToLinear(fixed.ToQ24(c.makeupGainDB))
	}
}

// gainDB computes the static gain in Q11.21 dB for a detector level in
// Q11.21 dB: zero below the knee, the quadratic transition inside it, and
// (slope-1)*(level-threshold) above it.
func (c *Compressor) gainDB(levelDB fixed.Q21) fixed.Q21 {
	over := int32(levelDB) - int32(c.threshold)

	if c.inv2Knee == 0 { // hard knee
		if over <= 0 {
			return 0
		}
		return fixed.Q21(fixed.MultSR(over, int32(c.slopeMinus1), 21, 30, 21))
	}

	d := over + int32(c.halfKnee)
	switch {
	case d <= 0:
		return 0
	case over >= int32(c.halfKnee):
		return fixed.Q21(fixed.MultSR(over, int32(c.slopeMinus1), 21, 30, 21))
	default:
		// (slope-1) * (over + knee/2)^2 / (2*knee)
		d2 := fixed.MultSR(d, d, 21, 21, 21)
		q := fixed.MultSR(d2, int32(c.inv2Knee), 21, 30, 21)
		return fixed.Q21(fixed.MultSR(q, int32(c.slopeMinus1), 21, 30, 21))
	}
}

// GainForLevel returns the static-curve linear gain (Q12.20, makeup
// included) for a linear detector level in Q6.26.
func (c *Compressor) GainForLevel(level fixed.Q26) fixed.Q20 {
	if level <= 0 {
		return c.makeupGain
	}
	gdb := c.gainDB(fixmath.LinearToDecibels(level))
	gain := fixmath.DecibelsToLinear(fixed.Q24(fixed.ShiftLeft(int32(gdb), 21, 24)))
	return fixed.Q20(fixed.MultSR(int32(gain), int32(c.makeupGain), 20, 20, 20))
}

// ProcessSample compresses one Q1.31 sample.
func (c *Compressor) ProcessSample(sample fixed.Q31) fixed.Q31 {
	level := fixed.Abs(int32(sample)) // Q1.31

	// Peak envelope with separate attack/release smoothing.
	alpha := c.releaseAlpha
	if level > int32(c.envelope) {
		alpha = c.attackAlpha
	}
	c.envelope += fixed.Q31(fixed.MultSR(int32(alpha), level-int32(c.envelope), 30, 31, 31))

	gain := c.GainForLevel(fixed.Q26(fixed.ShiftRnd(int32(c.envelope), 31, 26)))
	c.lastGain = gain

	out := (int64(sample) * int64(gain)) >> 20
	return fixed.Q31(fixed.Sat32(out))
}

// Process compresses a buffer of Q1.31 samples in place.
func (c *Compressor) Process(buf []fixed.Q31) {
	for i, s := range buf {
		buf[i] = c.ProcessSample(s)
	}
}
