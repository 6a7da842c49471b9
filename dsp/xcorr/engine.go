package xcorr

import (
	algofft "github.com/MeKo-Christian/algo-fft"
)

// Engine computes FFT-based cross-correlation of real signals with fixed
// lengths lenA and lenB.
//
// The result at lag k is sum_i a[i+k]*b[i]. The full result is ordered from
// lag -(lenB-1) to lag lenA-1; the mode selects a window of it.
//
// The type parameters F and C select precision: float64/complex128 or
// float32/complex64.
//
// An Engine reuses its scratch buffers on every call and is NOT safe for
// concurrent use. Guard shared engines with a mutex or build one per
// goroutine; separate engines may share a concurrency-safe transform.
type Engine[F algofft.Float, C algofft.Complex] struct {
	layout
	core *spectralCore[C]
}

// Engine64 is the float64 specialization of Engine.
type Engine64 = Engine[float64, complex128]

// Engine32 is the float32 specialization of Engine.
type Engine32 = Engine[float32, complex64]

// New creates an engine for signals of length lenA and lenB.
// By default the FFT size is the next power of two >= lenA+lenB-1 and the
// transform is an algo-fft plan.
func New[F algofft.Float, C algofft.Complex](lenA, lenB int, mode Mode, opts ...Option[C]) (*Engine[F, C], error) {
	l, err := newLayout(lenA, lenB, mode)
	if err != nil {
		return nil, err
	}

	core, err := buildCore(l, ApplyOptions(opts...))
	if err != nil {
		return nil, err
	}

	return &Engine[F, C]{layout: l, core: core}, nil
}

// New64 creates a float64 engine.
func New64(lenA, lenB int, mode Mode, opts ...Option[complex128]) (*Engine64, error) {
	return New[float64, complex128](lenA, lenB, mode, opts...)
}

// New32 creates a float32 engine.
func New32(lenA, lenB int, mode Mode, opts ...Option[complex64]) (*Engine32, error) {
	return New[float32, complex64](lenA, lenB, mode, opts...)
}

// NewWithTransforms creates an engine around caller-supplied transforms.
//
// The FFT size is taken from the transforms. It fails with [ErrSizeMismatch]
// if forward and inverse disagree, and with [ErrInsufficientSize] if the size
// is below lenA+lenB-1. The same transform may be passed for both directions
// and may be shared with other engines.
func NewWithTransforms[F algofft.Float, C algofft.Complex](lenA, lenB int, mode Mode, forward, inverse Transform[C]) (*Engine[F, C], error) {
	l, err := newLayout(lenA, lenB, mode)
	if err != nil {
		return nil, err
	}

	core, err := newSpectralCore(forward, inverse, linearLen(lenA, lenB))
	if err != nil {
		return nil, err
	}

	return &Engine[F, C]{layout: l, core: core}, nil
}

// FFTSize returns the working transform length N.
func (e *Engine[F, C]) FFTSize() int { return e.core.fftSize }

// Correlate returns the cross-correlation of a and b in the engine's mode.
func (e *Engine[F, C]) Correlate(a, b []F) ([]F, error) {
	if err := e.checkLengths(e.outLen, len(a), len(b)); err != nil {
		return nil, err
	}

	out := make([]F, e.outLen)
	if err := e.CorrelateTo(out, a, b); err != nil {
		return nil, err
	}
	return out, nil
}

// CorrelateTo writes the cross-correlation of a and b into dst, which must
// have length OutputLen(). It does not allocate.
//
// Lengths are validated before any scratch buffer is touched, so a rejected
// call leaves the engine ready for the next one.
func (e *Engine[F, C]) CorrelateTo(dst, a, b []F) error {
	if err := e.checkLengths(len(dst), len(a), len(b)); err != nil {
		return err
	}

	loadReal(e.core.bufA, a)
	loadReal(e.core.bufB, b)

	if err := e.core.run(); err != nil {
		return err
	}

	extractReal(dst, e.core.bufA, e.offset, e.lenB)
	return nil
}
