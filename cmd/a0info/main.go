// Command a0info inspects outer-ear transmission (a0) compensation
// curves and the FIR filters synthesized from them.
//
// Usage:
//
//	a0info [flags]
//
// Examples:
//
//	a0info -fs 44100 -n 4096
//	a0info -type fastl2007df -table
//	a0info -fs 48000 -n 8192 -csv response.csv
//	a0info -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-auditory/firdesign"
	"github.com/cwbudde/algo-auditory/outerear"
)

func main() {
	fs := flag.Float64("fs", 48000, "sample rate in Hz")
	n := flag.Int("n", 4096, "transform length (sets frequency resolution fs/n)")
	typ := flag.String("type", "fastl2007ff", "curve variant (see -list)")
	order := flag.Int("order", 0, "FIR filter order (0 = transform length)")
	list := flag.Bool("list", false, "list available curve variants")
	dumpTable := flag.Bool("table", false, "print the calibration table of the selected variant")
	csvPath := flag.String("csv", "", "write a target-vs-achieved response report to FILE")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: a0info [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Inspects outer-ear transmission (a0) compensation curves.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  a0info -fs 44100 -n 4096\n")
		fmt.Fprintf(os.Stderr, "  a0info -type fastl2007df -table\n")
		fmt.Fprintf(os.Stderr, "  a0info -csv response.csv\n")
	}
	flag.Parse()

	if *list {
		for _, name := range outerear.Variants() {
			fmt.Println(name)
		}
		return
	}

	variant, err := outerear.ParseVariant(*typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v (use -list to see available variants)\n", err)
		os.Exit(1)
	}

	if *dumpTable {
		printTable(variant)
		return
	}

	res, err := outerear.Compute(*fs, *n,
		outerear.WithVariant(variant),
		outerear.WithFilterOrder(*order),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printSummary(res)

	if *csvPath != "" {
		if err := writeReport(res, *csvPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("response report written to %s\n", *csvPath)
	}
}

func printTable(v outerear.Variant) {
	pts, err := outerear.Table(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bark\tGain [dB]\n")
	fmt.Fprintf(tw, "----\t---------\n")
	for _, p := range pts {
		fmt.Fprintf(tw, "%g\t%g\n", p.Bark, p.GainDB)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printSummary(res *outerear.Result) {
	peak := math.Inf(-1)
	peakFreq := 0.0
	for i, g := range res.Gains {
		if g > peak {
			peak = g
			peakFreq = res.Freqs[i]
		}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "variant\t%s\n", res.Variant)
	fmt.Fprintf(tw, "sample rate\t%g Hz\n", res.SampleRate)
	fmt.Fprintf(tw, "transform length\t%d\n", res.Length)
	fmt.Fprintf(tw, "resolution\t%.4f Hz\n", res.SampleRate/float64(res.Length))
	fmt.Fprintf(tw, "grid bins\t%d\n", len(res.Freqs))
	if len(res.Freqs) > 0 {
		fmt.Fprintf(tw, "grid span\t%.2f - %.2f Hz\n", res.Freqs[0], res.Freqs[len(res.Freqs)-1])
		fmt.Fprintf(tw, "peak gain\t%.2f dB @ %.1f Hz\n", 20*math.Log10(peak), peakFreq)
	}
	fmt.Fprintf(tw, "filter taps\t%d\n", len(res.Coefficients))
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func writeReport(res *outerear.Result, path string) error {
	if len(res.Coefficients) == 0 {
		return fmt.Errorf("empty analysis grid, nothing to report")
	}
	rep, err := firdesign.Analyze(res.Coefficients, res.Freqs, res.Gains, res.SampleRate)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := rep.WriteCSV(f); err != nil {
		return err
	}
	return f.Sync()
}
