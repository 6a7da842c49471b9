package xcorr

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// layout is the length bookkeeping shared by the real and complex engines.
type layout struct {
	mode   Mode
	lenA   int
	lenB   int
	offset int // window start within the full result
	outLen int
}

func newLayout(lenA, lenB int, mode Mode) (layout, error) {
	offset, outLen, err := mode.Window(lenA, lenB)
	if err != nil {
		return layout{}, err
	}
	return layout{mode: mode, lenA: lenA, lenB: lenB, offset: offset, outLen: outLen}, nil
}

// Mode returns the output mode.
func (l *layout) Mode() Mode { return l.mode }

// LenA returns the expected length of the first signal.
func (l *layout) LenA() int { return l.lenA }

// LenB returns the expected length of the second signal.
func (l *layout) LenB() int { return l.lenB }

// OutputLen returns the length of each correlation result.
func (l *layout) OutputLen() int { return l.outLen }

// Window returns the offset and length of the output within the full result.
func (l *layout) Window() (offset, length int) { return l.offset, l.outLen }

// checkLengths validates call-time buffer lengths.
func (l *layout) checkLengths(dstLen, aLen, bLen int) error {
	if aLen != l.lenA {
		return fmt.Errorf("%w: expected %d samples for a, got %d", ErrLengthMismatch, l.lenA, aLen)
	}
	if bLen != l.lenB {
		return fmt.Errorf("%w: expected %d samples for b, got %d", ErrLengthMismatch, l.lenB, bLen)
	}
	if dstLen != l.outLen {
		return fmt.Errorf("%w: expected %d output samples, got %d", ErrLengthMismatch, l.outLen, dstLen)
	}
	return nil
}

// spectralCore owns the transforms and scratch buffers and runs the
// transform, conjugate multiply and inverse steps.
type spectralCore[C algofft.Complex] struct {
	forward Transform[C]
	inverse Transform[C]
	fftSize int
	scale   float64 // 1/N, or 1 when the inverse normalizes

	// Scratch buffers. bufA receives the result.
	bufA []C
	bufB []C
}

func newSpectralCore[C algofft.Complex](forward, inverse Transform[C], minSize int) (*spectralCore[C], error) {
	if forward == nil || inverse == nil {
		return nil, ErrNilTransform
	}

	n := forward.Len()
	if inv := inverse.Len(); inv != n {
		return nil, fmt.Errorf("%w: forward size %d, inverse size %d", ErrSizeMismatch, n, inv)
	}
	if n < minSize {
		return nil, fmt.Errorf("%w: %w: size %d, need at least %d", ErrSizeMismatch, ErrInsufficientSize, n, minSize)
	}

	scale := 1 / float64(n)
	if inverseIsNormalized(inverse) {
		scale = 1
	}

	return &spectralCore[C]{
		forward: forward,
		inverse: inverse,
		fftSize: n,
		scale:   scale,
		bufA:    make([]C, n),
		bufB:    make([]C, n),
	}, nil
}

// minAutoFFTSize keeps automatically sized plans away from the degenerate
// length-1 transform.
const minAutoFFTSize = 2

// AutoFFTSize returns the FFT length engines choose for lenA and lenB when
// no size is configured.
func AutoFFTSize(lenA, lenB int) int {
	return max(NextPowerOf2(linearLen(lenA, lenB)), minAutoFFTSize)
}

// buildCore derives the FFT size and transforms from the config.
func buildCore[C algofft.Complex](l layout, cfg EngineConfig[C]) (*spectralCore[C], error) {
	minSize := linearLen(l.lenA, l.lenB)

	n := cfg.FFTSize
	if n == 0 {
		n = AutoFFTSize(l.lenA, l.lenB)
	} else if n < minSize {
		return nil, fmt.Errorf("%w: %w: size %d, need at least %d", ErrSizeMismatch, ErrInsufficientSize, n, minSize)
	}

	var (
		t   Transform[C]
		err error
	)
	switch {
	case cfg.Cache != nil:
		t, err = cfg.Cache.Get(n)
	case cfg.Factory != nil:
		t, err = cfg.Factory(n)
	default:
		t, err = DefaultFactory[C]()(n)
	}
	if err != nil {
		return nil, err
	}

	return newSpectralCore[C](t, t, minSize)
}

// run correlates the padded contents of bufA and bufB, leaving the circular
// correlation in bufA.
func (c *spectralCore[C]) run() error {
	if err := c.forward.Forward(c.bufA); err != nil {
		return fmt.Errorf("%w: forward transform: %w", ErrBackend, err)
	}
	if err := c.forward.Forward(c.bufB); err != nil {
		return fmt.Errorf("%w: forward transform: %w", ErrBackend, err)
	}

	mulConj(c.bufA, c.bufB, c.scale)

	if err := c.inverse.Inverse(c.bufA); err != nil {
		return fmt.Errorf("%w: inverse transform: %w", ErrBackend, err)
	}
	return nil
}
