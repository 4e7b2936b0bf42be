package dynamics_test

import (
	"fmt"

	"github.com/cwbudde/algo-drc/dsp/effects/dynamics"
	"github.com/cwbudde/algo-drc/fixed"
)

// ExampleCompressor demonstrates the static transfer curve with default
// settings and manual unity makeup.
func ExampleCompressor() {
	comp, err := dynamics.NewCompressor(48000)
	if err != nil {
		panic(err)
	}
	comp.SetAutoMakeup(false)

	gain := comp.GainForLevel(fixed.ToQ26(1.0))

	fmt.Printf("gain at 0 dBFS: %.3f\n", gain.Float64())
	// Output:
	// gain at 0 dBFS: 0.178
}

// ExampleCompressor_configuration demonstrates configuring parameters and
// processing a buffer of fixed-point samples.
func ExampleCompressor_configuration() {
	comp, _ := dynamics.NewCompressor(48000)

	_ = comp.SetThreshold(-10.0) // Compress above -10 dB
	_ = comp.SetRatio(8.0)       // 8:1 ratio
	_ = comp.SetKnee(3.0)        // 3 dB soft knee
	_ = comp.SetAttack(5.0)      // Fast 5 ms attack
	_ = comp.SetRelease(50.0)    // 50 ms release

	buf := make([]fixed.Q31, 256)
	for i := range buf {
		buf[i] = fixed.ToQ31(0.3)
	}
	comp.Process(buf)

	fmt.Printf("Threshold: %.1f dB\n", comp.Threshold())
	fmt.Printf("Ratio: %.1f:1\n", comp.Ratio())
	fmt.Printf("Knee: %.1f dB\n", comp.Knee())
	// Output:
	// Threshold: -10.0 dB
	// Ratio: 8.0:1
	// Knee: 3.0 dB
}
