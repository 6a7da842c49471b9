package xcorr

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FindPeak returns the index and value of the maximum of corr.
// It returns -1 for an empty slice.
func FindPeak[F algofft.Float](corr []F) (index int, value F) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]
	for i, v := range corr {
		if v > value {
			index = i
			value = v
		}
	}
	return index, value
}

// FindPeakAbs returns the index and value of the sample with the largest
// magnitude, which catches anti-correlated alignments.
func FindPeakAbs[F algofft.Float](corr []F) (index int, value F) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]
	best := abs(value)
	for i, v := range corr {
		if m := abs(v); m > best {
			index = i
			value = v
			best = m
		}
	}
	return index, value
}

func abs[F algofft.Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

// LagFromIndex converts an index into a correlation result computed in mode
// to the lag it represents. A positive lag means a is delayed relative to b.
func LagFromIndex(index, lenA, lenB int, mode Mode) (int, error) {
	offset, length, err := mode.Window(lenA, lenB)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= length {
		return 0, fmt.Errorf("%w: index %d outside output of length %d", ErrLengthMismatch, index, length)
	}
	return offset + index - (lenB - 1), nil
}

// IndexFromLag converts a lag to its index in a correlation result computed
// in mode. Lags outside the mode's window are an error.
func IndexFromLag(lag, lenA, lenB int, mode Mode) (int, error) {
	offset, length, err := mode.Window(lenA, lenB)
	if err != nil {
		return 0, err
	}
	index := lag + (lenB - 1) - offset
	if index < 0 || index >= length {
		return 0, fmt.Errorf("%w: lag %d outside %v window", ErrLengthMismatch, lag, mode)
	}
	return index, nil
}
