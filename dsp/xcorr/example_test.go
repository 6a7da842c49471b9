package xcorr_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-xcorr/dsp/xcorr"
)

// round2 rounds to two decimals and clears negative zero.
func round2(v float64) float64 {
	return math.Round(v*100)/100 + 0
}

func ExampleNew64() {
	e, err := xcorr.New64(3, 3, xcorr.ModeFull)
	if err != nil {
		panic(err)
	}

	out, err := e.Correlate([]float64{1, 2, 3}, []float64{0, 1, 0})
	if err != nil {
		panic(err)
	}

	for _, v := range out {
		fmt.Printf("%.2f ", round2(v))
	}
	fmt.Println()
	// Output:
	// 0.00 1.00 2.00 3.00 0.00
}

func ExampleEngine_CorrelateTo() {
	a := []float64{1, 2, 3, 4}
	b := []float64{1, 1}

	e, err := xcorr.New64(len(a), len(b), xcorr.ModeValid)
	if err != nil {
		panic(err)
	}

	out := make([]float64, e.OutputLen())
	if err := e.CorrelateTo(out, a, b); err != nil {
		panic(err)
	}

	for i := range out {
		out[i] = round2(out[i])
	}
	fmt.Printf("%.2f\n", out)
	// Output:
	// [3.00 5.00 7.00]
}

func ExampleLagFromIndex() {
	b := []float64{1, -1, 2, 0.5}
	a := []float64{0, 0, 1, -1, 2, 0.5, 0, 0}

	corr, err := xcorr.Correlate64(a, b, xcorr.ModeFull)
	if err != nil {
		panic(err)
	}

	idx, _ := xcorr.FindPeak(corr)
	lag, _ := xcorr.LagFromIndex(idx, len(a), len(b), xcorr.ModeFull)
	fmt.Println("lag:", lag)
	// Output:
	// lag: 2
}

func ExampleMode_Window() {
	for _, mode := range []xcorr.Mode{xcorr.ModeFull, xcorr.ModeSame, xcorr.ModeValid} {
		offset, length, _ := mode.Window(8, 3)
		fmt.Printf("%s: offset %d, length %d\n", mode, offset, length)
	}
	// Output:
	// full: offset 0, length 10
	// same: offset 1, length 8
	// valid: offset 2, length 6
}
