package xcorr

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// GonumTransform adapts gonum's complex FFT to [Transform].
//
// The gonum inverse is unnormalized, so engines using it apply 1/N
// themselves. The underlying FFT keeps a work buffer; do not share a
// GonumTransform between goroutines.
type GonumTransform struct {
	fft *fourier.CmplxFFT
}

// NewGonumTransform builds a gonum transform of length n. Any n > 0 works.
func NewGonumTransform(n int) (*GonumTransform, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: gonum FFT size must be positive, got %d", ErrBackend, n)
	}
	return &GonumTransform{fft: fourier.NewCmplxFFT(n)}, nil
}

// GonumFactory returns a [TransformFactory] building gonum transforms.
func GonumFactory() TransformFactory[complex128] {
	return func(n int) (Transform[complex128], error) {
		return NewGonumTransform(n)
	}
}

// Len returns the FFT size.
func (t *GonumTransform) Len() int { return t.fft.Len() }

// Forward computes the forward FFT in place.
func (t *GonumTransform) Forward(data []complex128) error {
	if len(data) != t.fft.Len() {
		return fmt.Errorf("%w: expected %d samples, got %d", ErrLengthMismatch, t.fft.Len(), len(data))
	}
	t.fft.Coefficients(data, data)
	return nil
}

// Inverse computes the unnormalized inverse FFT in place.
func (t *GonumTransform) Inverse(data []complex128) error {
	if len(data) != t.fft.Len() {
		return fmt.Errorf("%w: expected %d samples, got %d", ErrLengthMismatch, t.fft.Len(), len(data))
	}
	t.fft.Sequence(data, data)
	return nil
}

// gonumFallback runs gonum's FFT for either precision behind a mutex.
// [DefaultFactory] returns it for sizes whose algo-fft plan is inaccurate,
// so it must stay safe to share through a [TransformCache].
type gonumFallback[C algofft.Complex] struct {
	mu   sync.Mutex
	fft  *fourier.CmplxFFT
	work []complex128
}

func newGonumFallback[C algofft.Complex](n int) (*gonumFallback[C], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: gonum FFT size must be positive, got %d", ErrBackend, n)
	}
	return &gonumFallback[C]{fft: fourier.NewCmplxFFT(n), work: make([]complex128, n)}, nil
}

func (t *gonumFallback[C]) Len() int { return len(t.work) }

func (t *gonumFallback[C]) Forward(data []C) error {
	return t.apply(data, t.fft.Coefficients)
}

func (t *gonumFallback[C]) Inverse(data []C) error {
	return t.apply(data, t.fft.Sequence)
}

func (t *gonumFallback[C]) apply(data []C, fn func(dst, src []complex128) []complex128) error {
	if len(data) != len(t.work) {
		return fmt.Errorf("%w: expected %d samples, got %d", ErrLengthMismatch, len(t.work), len(data))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i, v := range data {
		t.work[i] = complex128(v)
	}
	fn(t.work, t.work)
	for i, v := range t.work {
		data[i] = C(v)
	}
	return nil
}
