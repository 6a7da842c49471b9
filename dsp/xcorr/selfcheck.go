package xcorr

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// selfCheck runs t on an impulse and on a deterministic chirp-like signal
// and compares against the closed-form spectrum and the round trip.
// Failures wrap both ErrBackend and ErrInaccuratePlan.
func selfCheck[C algofft.Complex](t Transform[C]) error {
	n := t.Len()
	tol := checkTolerance[C]()
	buf := make([]C, n)

	// A unit impulse at p transforms to exp(-2πi·k·p/n).
	p := 1 % n
	buf[p] = 1
	if err := t.Forward(buf); err != nil {
		return fmt.Errorf("%w: self-check forward transform: %w", ErrBackend, err)
	}
	for k, v := range buf {
		want := cmplx.Exp(complex(0, -2*math.Pi*float64(k*p%n)/float64(n)))
		if cmplx.Abs(complex128(v)-want) > tol {
			return inaccurate(n, "impulse spectrum", k)
		}
	}

	x := make([]C, n)
	var sum complex128
	for i := range x {
		fi := float64(i)
		v := complex(math.Cos(0.7*fi)+0.25*fi/float64(n), math.Sin(1.3*fi+0.1*fi*fi/float64(n)))
		x[i] = C(v)
		sum += complex128(x[i])
	}

	copy(buf, x)
	if err := t.Forward(buf); err != nil {
		return fmt.Errorf("%w: self-check forward transform: %w", ErrBackend, err)
	}
	if cmplx.Abs(complex128(buf[0])-sum) > tol*float64(n) {
		return inaccurate(n, "DC bin", 0)
	}
	if err := t.Inverse(buf); err != nil {
		return fmt.Errorf("%w: self-check inverse transform: %w", ErrBackend, err)
	}

	scale := 1.0
	if !inverseIsNormalized(t) {
		scale = 1 / float64(n)
	}
	for i, v := range buf {
		if cmplx.Abs(complex128(v)*complex(scale, 0)-complex128(x[i])) > tol {
			return inaccurate(n, "round trip", i)
		}
	}
	return nil
}

func inaccurate(n int, stage string, index int) error {
	return fmt.Errorf("%w: %w: size %d, %s wrong at index %d", ErrBackend, ErrInaccuratePlan, n, stage, index)
}

// checkTolerance is the per-sample absolute error allowed by selfCheck.
func checkTolerance[C algofft.Complex]() float64 {
	var zero C
	if _, ok := any(zero).(complex64); ok {
		return 1e-3
	}
	return 1e-8
}
