package xcorr

import (
	"errors"
	"math"
	"math/cmplx"
)

// dftTransform is an O(N^2) reference transform with an unnormalized
// inverse, so engines using it exercise their own 1/N scaling.
type dftTransform struct {
	n       int
	scratch []complex128
	calls   int
}

func newDFT(n int) *dftTransform {
	return &dftTransform{n: n, scratch: make([]complex128, n)}
}

func (d *dftTransform) Len() int { return d.n }

func (d *dftTransform) Forward(data []complex128) error { return d.apply(data, -1) }

func (d *dftTransform) Inverse(data []complex128) error { return d.apply(data, 1) }

func (d *dftTransform) apply(data []complex128, sign float64) error {
	if len(data) != d.n {
		return ErrLengthMismatch
	}
	d.calls++
	for k := range d.scratch {
		var sum complex128
		for j, v := range data {
			angle := sign * 2 * math.Pi * float64(j*k) / float64(d.n)
			sum += v * cmplx.Exp(complex(0, angle))
		}
		d.scratch[k] = sum
	}
	copy(data, d.scratch)
	return nil
}

// dftTransform32 is the complex64 counterpart of dftTransform.
type dftTransform32 struct {
	inner *dftTransform
	tmp   []complex128
}

func newDFT32(n int) *dftTransform32 {
	return &dftTransform32{inner: newDFT(n), tmp: make([]complex128, n)}
}

func (d *dftTransform32) Len() int { return d.inner.n }

func (d *dftTransform32) Forward(data []complex64) error { return d.apply(data, -1) }

func (d *dftTransform32) Inverse(data []complex64) error { return d.apply(data, 1) }

func (d *dftTransform32) apply(data []complex64, sign float64) error {
	if len(data) != d.inner.n {
		return ErrLengthMismatch
	}
	for i, v := range data {
		d.tmp[i] = complex128(v)
	}
	if err := d.inner.apply(d.tmp, sign); err != nil {
		return err
	}
	for i, v := range d.tmp {
		data[i] = complex64(v)
	}
	return nil
}

// normalizedDFT wraps dftTransform and scales its inverse by 1/N.
type normalizedDFT struct {
	*dftTransform
}

func (d normalizedDFT) Inverse(data []complex128) error {
	if err := d.dftTransform.Inverse(data); err != nil {
		return err
	}
	s := complex(1/float64(d.n), 0)
	for i := range data {
		data[i] *= s
	}
	return nil
}

func (d normalizedDFT) InverseNormalized() bool { return true }

var errInjected = errors.New("injected backend failure")

// failingTransform fails the forward or inverse direction on demand.
type failingTransform struct {
	n           int
	failForward bool
	failInverse bool
}

func (f *failingTransform) Len() int { return f.n }

func (f *failingTransform) Forward([]complex128) error {
	if f.failForward {
		return errInjected
	}
	return nil
}

func (f *failingTransform) Inverse([]complex128) error {
	if f.failInverse {
		return errInjected
	}
	return nil
}

// sizedTransform only reports a length.
type sizedTransform struct{ n int }

func (s sizedTransform) Len() int                   { return s.n }
func (s sizedTransform) Forward([]complex128) error { return nil }
func (s sizedTransform) Inverse([]complex128) error { return nil }

// directComplex is the time-domain reference for complex correlation:
// full[i-j+lenB-1] += a[i]*conj(b[j]).
func directComplex(a, b []complex128, mode Mode) ([]complex128, error) {
	offset, length, err := mode.Window(len(a), len(b))
	if err != nil {
		return nil, err
	}
	full := make([]complex128, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			full[i-j+len(b)-1] += av * cmplx.Conj(bv)
		}
	}
	return full[offset : offset+length], nil
}

// tolerance scales an absolute tolerance by the magnitude of want.
func tolerance(want []float64, rel float64) float64 {
	m := 1.0
	for _, v := range want {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return rel * m
}
