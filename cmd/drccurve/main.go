// Command drccurve prints the static transfer curve of the fixed-point
// compressor alongside the ideal floating-point curve, so the quantization
// error of the Q-format gain path can be inspected at a glance.
//
// Usage:
//
//	drccurve [flags]
//
// Examples:
//
//	drccurve
//	drccurve -threshold -24 -ratio 8 -knee 3
//	drccurve -from -80 -to 0 -step 2
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-drc/dsp/effects/dynamics"
	"github.com/cwbudde/algo-drc/fixed"
)

func main() {
	threshold := flag.Float64("threshold", -20, "compression threshold in dB")
	ratio := flag.Float64("ratio", 4, "compression ratio")
	knee := flag.Float64("knee", 6, "soft-knee width in dB")
	makeup := flag.Float64("makeup", 0, "manual makeup gain in dB")
	auto := flag.Bool("auto", false, "use automatic makeup gain instead of -makeup")
	from := flag.Float64("from", -60, "curve start level in dB")
	to := flag.Float64("to", 0, "curve end level in dB")
	step := flag.Float64("step", 3, "level step in dB")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: drccurve [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the fixed-point compressor static curve against the ideal curve.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *step <= 0 || *from > *to {
		fmt.Fprintf(os.Stderr, "error: need -step > 0 and -from <= -to\n")
		os.Exit(1)
	}

	comp, err := dynamics.NewCompressor(48000)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	for _, e := range []error{
		comp.SetThreshold(*threshold),
		comp.SetRatio(*ratio),
		comp.SetKnee(*knee),
		comp.SetMakeupGain(*makeup),
	} {
		if e != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", e)
			os.Exit(1)
		}
	}
	comp.SetAutoMakeup(*auto)

	printCurve(comp, *from, *to, *step)
}

// idealGainDB is the floating-point soft-knee gain computer the fixed-point
// curve is measured against.
func idealGainDB(c *dynamics.Compressor, levelDB float64) float64 {
	over := levelDB - c.Threshold()
	half := c.Knee() / 2
	slope := 1/c.Ratio() - 1

	switch {
	case over <= -half:
		return 0
	case over >= half && half > 0:
		return slope * over
	case half == 0:
		if over <= 0 {
			return 0
		}
		return slope * over
	default:
		d := over + half
		return slope * d * d / (2 * c.Knee())
	}
}

func printCurve(comp *dynamics.Compressor, from, to, step float64) {
	makeupDB := 20 * math.Log10(comp.GainForLevel(0).Float64())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "In [dB]\tOut [dB]\tGain [dB]\tIdeal [dB]\tError [dB]\n")
	fmt.Fprintf(tw, "-------\t--------\t---------\t----------\t----------\n")

	for levelDB := from; levelDB <= to+step/2; levelDB += step {
		level := math.Pow(10, levelDB/20)
		gain := comp.GainForLevel(fixed.ToQ26(level)).Float64()
		if gain <= 0 {
			continue
		}

		gainDB := 20 * math.Log10(gain)
		ideal := idealGainDB(comp, levelDB) + makeupDB
		fmt.Fprintf(tw, "%.1f\t%.2f\t%.3f\t%.3f\t%+.4f\n",
			levelDB, levelDB+gainDB, gainDB, ideal, gainDB-ideal)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
