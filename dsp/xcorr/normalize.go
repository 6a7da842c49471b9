package xcorr

import (
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Normalize divides corr in place by the product of the L2 norms of a and b,
// bringing values into [-1, 1]. corr is left unchanged if either norm is zero.
func Normalize[F algofft.Float](corr, a, b []F) {
	norm := l2Norm(a) * l2Norm(b)
	if norm == 0 {
		return
	}

	inv := 1 / norm
	for i := range corr {
		corr[i] = F(float64(corr[i]) * inv)
	}
}

// l2Norm computes the L2 (Euclidean) norm of x, accumulating in float64.
func l2Norm[F algofft.Float](x []F) float64 {
	var sum float64
	for _, v := range x {
		f := float64(v)
		sum += f * f
	}
	return math.Sqrt(sum)
}

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func splitComplex(re, im []float64, src []complex128) {
	for i, c := range src {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// MagnitudeTo writes |src[k]| into dst, typically the envelope of a
// [ComplexEngine] result. dst must have the same length as src.
func MagnitudeTo(dst []float64, src []complex128) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst has %d samples, src has %d", ErrLengthMismatch, len(dst), len(src))
	}
	if len(src) == 0 {
		return nil
	}

	re, im, buf := getScratch(len(src))
	splitComplex(re, im, src)
	vecmath.Magnitude(dst, re, im)
	scratchPool.Put(buf)
	return nil
}

// PowerTo writes |src[k]|^2 into dst. dst must have the same length as src.
func PowerTo(dst []float64, src []complex128) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst has %d samples, src has %d", ErrLengthMismatch, len(dst), len(src))
	}
	if len(src) == 0 {
		return nil
	}

	re, im, buf := getScratch(len(src))
	splitComplex(re, im, src)
	vecmath.Power(dst, re, im)
	scratchPool.Put(buf)
	return nil
}
