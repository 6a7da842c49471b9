package xcorr

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Transform is a fixed-size complex FFT applied in place.
//
// Forward and Inverse must leave no state behind between calls: the same
// input always yields the same output. Inverse is unnormalized by convention;
// a backend whose inverse already scales by 1/Len() says so by implementing
// [NormalizedInverse].
//
// Whether a Transform may be shared across goroutines is up to the
// implementation. The engine itself never mutates a transform.
type Transform[C algofft.Complex] interface {
	// Len returns the transform length N.
	Len() int

	// Forward replaces data (length N) with its discrete Fourier transform.
	Forward(data []C) error

	// Inverse replaces data (length N) with its inverse transform.
	Inverse(data []C) error
}

// NormalizedInverse is implemented by transforms whose Inverse already
// multiplies by 1/N. The engine then skips its own normalization.
type NormalizedInverse interface {
	InverseNormalized() bool
}

// inverseIsNormalized reports whether t scales its inverse output by 1/N.
func inverseIsNormalized[C algofft.Complex](t Transform[C]) bool {
	n, ok := t.(NormalizedInverse)
	return ok && n.InverseNormalized()
}

// TransformFactory builds a transform of length n. The returned transform is
// used for both directions.
type TransformFactory[C algofft.Complex] func(n int) (Transform[C], error)

// DefaultFactory returns the factory used by [New]: algo-fft plans, with a
// gonum transform standing in for sizes whose plan fails its self-check.
func DefaultFactory[C algofft.Complex]() TransformFactory[C] {
	return func(n int) (Transform[C], error) {
		t, err := NewPlanTransform[C](n)
		if errors.Is(err, ErrInaccuratePlan) {
			g, gerr := newGonumFallback[C](n)
			if gerr != nil {
				return nil, gerr
			}
			return g, nil
		}
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

// TransformCache shares one transform per length across engines.
//
// Engines built with [WithCache] for the same FFT size reuse the cached plan
// instead of planning again. The cache is safe for concurrent use; whether the
// cached transforms are depends on the factory.
type TransformCache[C algofft.Complex] struct {
	factory TransformFactory[C]

	mu    sync.Mutex
	plans map[int]Transform[C]
}

// NewTransformCache returns an empty cache. A nil factory selects
// [DefaultFactory].
func NewTransformCache[C algofft.Complex](factory TransformFactory[C]) *TransformCache[C] {
	if factory == nil {
		factory = DefaultFactory[C]()
	}
	return &TransformCache[C]{
		factory: factory,
		plans:   make(map[int]Transform[C]),
	}
}

// Get returns the cached transform for length n, building it on first use.
func (c *TransformCache[C]) Get(n int) (Transform[C], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.plans[n]; ok {
		return t, nil
	}

	t, err := c.factory(n)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: factory returned nil for size %d", ErrNilTransform, n)
	}
	if t.Len() != n {
		return nil, fmt.Errorf("%w: factory built size %d, requested %d", ErrSizeMismatch, t.Len(), n)
	}

	c.plans[n] = t
	return t, nil
}

// Len returns the number of cached transforms.
func (c *TransformCache[C]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.plans)
}
