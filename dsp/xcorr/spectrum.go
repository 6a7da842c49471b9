package xcorr

import (
	algofft "github.com/MeKo-Christian/algo-fft"
)

// The builtins real, imag and complex do not accept type parameters, so the
// kernels below dispatch once per call on the concrete slice type.

// loadReal zero-pads src into dst with zero imaginary parts.
func loadReal[F algofft.Float, C algofft.Complex](dst []C, src []F) {
	switch d := any(dst).(type) {
	case []complex128:
		for i, v := range src {
			d[i] = complex(float64(v), 0)
		}
		clear(d[len(src):])
	case []complex64:
		for i, v := range src {
			d[i] = complex(float32(v), 0)
		}
		clear(d[len(src):])
	}
}

// loadComplex zero-pads src into dst.
func loadComplex[C algofft.Complex](dst, src []C) {
	copy(dst, src)
	clear(dst[len(src):])
}

// mulConj computes dst[k] = dst[k] * conj(other[k]) * scale.
// The conjugate turns the convolution theorem into correlation.
func mulConj[C algofft.Complex](dst, other []C, scale float64) {
	switch d := any(dst).(type) {
	case []complex128:
		o := any(other).([]complex128)
		if scale == 1 {
			for k := range d {
				d[k] *= complex(real(o[k]), -imag(o[k]))
			}
			return
		}
		s := complex(scale, 0)
		for k := range d {
			d[k] *= complex(real(o[k]), -imag(o[k])) * s
		}
	case []complex64:
		o := any(other).([]complex64)
		if scale == 1 {
			for k := range d {
				d[k] *= complex(real(o[k]), -imag(o[k]))
			}
			return
		}
		s := complex(float32(scale), 0)
		for k := range d {
			d[k] *= complex(real(o[k]), -imag(o[k])) * s
		}
	}
}

// circularIndex maps index i of the lag-ordered linear result (lag
// i-(lenB-1)) to its position in the circular correlation of size n.
func circularIndex(i, lenB, n int) int {
	idx := i - (lenB - 1)
	if idx < 0 {
		idx += n
	}
	return idx
}

// extractReal copies the real parts of the window starting at offset of the
// linear result held in circ into dst.
func extractReal[F algofft.Float, C algofft.Complex](dst []F, circ []C, offset, lenB int) {
	n := len(circ)
	switch c := any(circ).(type) {
	case []complex128:
		for i := range dst {
			dst[i] = F(real(c[circularIndex(offset+i, lenB, n)]))
		}
	case []complex64:
		for i := range dst {
			dst[i] = F(real(c[circularIndex(offset+i, lenB, n)]))
		}
	}
}

// extractComplex copies the window starting at offset of the linear result
// held in circ into dst.
func extractComplex[C algofft.Complex](dst, circ []C, offset, lenB int) {
	n := len(circ)
	for i := range dst {
		dst[i] = circ[circularIndex(offset+i, lenB, n)]
	}
}
