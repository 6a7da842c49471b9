package xcorr

import (
	algofft "github.com/MeKo-Christian/algo-fft"
)

// ComplexEngine computes FFT-based cross-correlation of complex signals.
//
// The result at lag k is sum_i a[i+k]*conj(b[i]), with the same lag ordering
// and mode windows as [Engine]. It shares the Engine's concurrency rules.
type ComplexEngine[C algofft.Complex] struct {
	layout
	core *spectralCore[C]
}

// NewComplex creates a complex engine for signals of length lenA and lenB.
func NewComplex[C algofft.Complex](lenA, lenB int, mode Mode, opts ...Option[C]) (*ComplexEngine[C], error) {
	l, err := newLayout(lenA, lenB, mode)
	if err != nil {
		return nil, err
	}

	core, err := buildCore(l, ApplyOptions(opts...))
	if err != nil {
		return nil, err
	}

	return &ComplexEngine[C]{layout: l, core: core}, nil
}

// NewComplexWithTransforms creates a complex engine around caller-supplied
// transforms. See [NewWithTransforms] for the size rules.
func NewComplexWithTransforms[C algofft.Complex](lenA, lenB int, mode Mode, forward, inverse Transform[C]) (*ComplexEngine[C], error) {
	l, err := newLayout(lenA, lenB, mode)
	if err != nil {
		return nil, err
	}

	core, err := newSpectralCore(forward, inverse, linearLen(lenA, lenB))
	if err != nil {
		return nil, err
	}

	return &ComplexEngine[C]{layout: l, core: core}, nil
}

// FFTSize returns the working transform length N.
func (e *ComplexEngine[C]) FFTSize() int { return e.core.fftSize }

// Correlate returns the cross-correlation of a and b in the engine's mode.
func (e *ComplexEngine[C]) Correlate(a, b []C) ([]C, error) {
	if err := e.checkLengths(e.outLen, len(a), len(b)); err != nil {
		return nil, err
	}

	out := make([]C, e.outLen)
	if err := e.CorrelateTo(out, a, b); err != nil {
		return nil, err
	}
	return out, nil
}

// CorrelateTo writes the cross-correlation of a and b into dst, which must
// have length OutputLen(). It does not allocate.
func (e *ComplexEngine[C]) CorrelateTo(dst, a, b []C) error {
	if err := e.checkLengths(len(dst), len(a), len(b)); err != nil {
		return err
	}

	loadComplex(e.core.bufA, a)
	loadComplex(e.core.bufB, b)

	if err := e.core.run(); err != nil {
		return err
	}

	extractComplex(dst, e.core.bufA, e.offset, e.lenB)
	return nil
}
