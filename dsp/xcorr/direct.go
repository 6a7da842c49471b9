package xcorr

import algofft "github.com/MeKo-Christian/algo-fft"

// CorrelateDirect computes the cross-correlation of a and b in the time
// domain. It is O(len(a)*len(b)) and returns exactly what an [Engine] with
// the same mode returns, up to rounding.
//
// Useful as a reference and for very short signals.
func CorrelateDirect[F algofft.Float](a, b []F, mode Mode) ([]F, error) {
	offset, length, err := mode.Window(len(a), len(b))
	if err != nil {
		return nil, err
	}

	full := make([]F, linearLen(len(a), len(b)))
	lag0 := len(b) - 1
	for i, av := range a {
		for j, bv := range b {
			full[i-j+lag0] += av * bv
		}
	}

	if offset == 0 && length == len(full) {
		return full, nil
	}
	out := make([]F, length)
	copy(out, full[offset:offset+length])
	return out, nil
}

// Correlate64 is a one-shot float64 correlation. It builds a throwaway
// engine; create an [Engine64] to correlate repeatedly at fixed lengths.
func Correlate64(a, b []float64, mode Mode) ([]float64, error) {
	e, err := New64(len(a), len(b), mode)
	if err != nil {
		return nil, err
	}
	return e.Correlate(a, b)
}

// AutoCorrelate64 computes the full auto-correlation of a.
// The result has length 2*len(a)-1 with zero lag at index len(a)-1.
func AutoCorrelate64(a []float64) ([]float64, error) {
	return Correlate64(a, a, ModeFull)
}
