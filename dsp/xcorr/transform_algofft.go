package xcorr

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// PlanTransform adapts an algo-fft Plan to [Transform].
//
// Plans are safe for concurrent use, so one PlanTransform can back any number
// of engines. The algo-fft inverse is normalized.
type PlanTransform[C algofft.Complex] struct {
	plan *algofft.Plan[C]
}

// NewPlanTransform plans an algo-fft transform of length n.
//
// The plan is checked against known transforms before it is returned. Some
// mixed-radix sizes plan without error yet compute wrong spectra; those fail
// with an error wrapping [ErrBackend] and [ErrInaccuratePlan].
func NewPlanTransform[C algofft.Complex](n int) (*PlanTransform[C], error) {
	plan, err := algofft.NewPlanT[C](n)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create FFT plan of size %d: %w", ErrBackend, n, err)
	}
	t := &PlanTransform[C]{plan: plan}
	if err := selfCheck[C](t); err != nil {
		return nil, err
	}
	return t, nil
}

// WrapPlan adapts an existing algo-fft plan, e.g. one built by a Planner.
func WrapPlan[C algofft.Complex](plan *algofft.Plan[C]) *PlanTransform[C] {
	return &PlanTransform[C]{plan: plan}
}

// Len returns the FFT size.
func (t *PlanTransform[C]) Len() int { return t.plan.Len() }

// Forward computes the forward FFT in place.
func (t *PlanTransform[C]) Forward(data []C) error {
	return t.plan.Forward(data, data)
}

// Inverse computes the normalized inverse FFT in place.
func (t *PlanTransform[C]) Inverse(data []C) error {
	return t.plan.Inverse(data, data)
}

// InverseNormalized reports true: algo-fft scales the inverse by 1/N.
func (t *PlanTransform[C]) InverseNormalized() bool { return true }

// FastTransform adapts an algo-fft FastPlan to [Transform].
//
// Fast plans skip all validation and keep one scratch buffer, so a
// FastTransform must not be shared between goroutines. Only sizes with a
// registered codelet are available.
type FastTransform[C algofft.Complex] struct {
	plan *algofft.FastPlan[C]
}

// NewFastTransform builds a codelet-backed transform of length n.
// Sizes without a codelet fail with an error wrapping both [ErrBackend] and
// algofft.ErrNotImplemented; callers typically fall back to [NewPlanTransform].
func NewFastTransform[C algofft.Complex](n int) (*FastTransform[C], error) {
	plan, err := algofft.NewFastPlan[C](n)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create fast FFT plan of size %d: %w", ErrBackend, n, err)
	}
	t := &FastTransform[C]{plan: plan}
	if err := selfCheck[C](t); err != nil {
		return nil, err
	}
	return t, nil
}

// FastFactory returns a factory preferring fast plans and falling back to
// [DefaultFactory] for sizes without a working codelet.
func FastFactory[C algofft.Complex]() TransformFactory[C] {
	fallback := DefaultFactory[C]()
	return func(n int) (Transform[C], error) {
		fast, err := NewFastTransform[C](n)
		if err == nil {
			return fast, nil
		}
		return fallback(n)
	}
}

// Len returns the FFT size.
func (t *FastTransform[C]) Len() int { return t.plan.Len() }

// Forward computes the forward FFT in place.
func (t *FastTransform[C]) Forward(data []C) error {
	if len(data) != t.plan.Len() {
		return fmt.Errorf("%w: expected %d samples, got %d", ErrLengthMismatch, t.plan.Len(), len(data))
	}
	t.plan.InPlace(data)
	return nil
}

// Inverse computes the normalized inverse FFT in place.
func (t *FastTransform[C]) Inverse(data []C) error {
	if len(data) != t.plan.Len() {
		return fmt.Errorf("%w: expected %d samples, got %d", ErrLengthMismatch, t.plan.Len(), len(data))
	}
	t.plan.InverseInPlace(data)
	return nil
}

// InverseNormalized reports true: fast-plan inverse codelets scale by 1/N.
func (t *FastTransform[C]) InverseNormalized() bool { return true }
