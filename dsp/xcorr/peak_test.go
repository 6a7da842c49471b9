package xcorr

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-xcorr/internal/testutil"
)

func TestFindPeak(t *testing.T) {
	tests := []struct {
		name    string
		data    []float64
		index   int
		value   float64
		absIdx  int
		absPeak float64
	}{
		{"empty", nil, -1, 0, -1, 0},
		{"single", []float64{2}, 0, 2, 0, 2},
		{"positive", []float64{0, 1, 5, 2}, 2, 5, 2, 5},
		{"negative wins abs", []float64{1, -7, 3}, 2, 3, 1, -7},
		{"first of ties", []float64{4, 4, 1}, 0, 4, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, val := FindPeak(tt.data)
			if idx != tt.index || val != tt.value {
				t.Errorf("FindPeak = (%d, %v), want (%d, %v)", idx, val, tt.index, tt.value)
			}
			idx, val = FindPeakAbs(tt.data)
			if idx != tt.absIdx || val != tt.absPeak {
				t.Errorf("FindPeakAbs = (%d, %v), want (%d, %v)", idx, val, tt.absIdx, tt.absPeak)
			}
		})
	}
}

func TestLagFromIndex(t *testing.T) {
	tests := []struct {
		lenA, lenB int
		mode       Mode
		index      int
		want       int
	}{
		{3, 3, ModeFull, 0, -2},
		{3, 3, ModeFull, 4, 2},
		{4, 2, ModeSame, 0, -1},
		{4, 2, ModeValid, 0, 0},
		{10, 4, ModeValid, 6, 6},
		{4, 10, ModeValid, 0, -6},
		{8, 4, ModeSame, 3, 1},
	}

	for _, tt := range tests {
		got, err := LagFromIndex(tt.index, tt.lenA, tt.lenB, tt.mode)
		if err != nil {
			t.Fatalf("LagFromIndex(%d, %d, %d, %v) failed: %v", tt.index, tt.lenA, tt.lenB, tt.mode, err)
		}
		if got != tt.want {
			t.Errorf("LagFromIndex(%d, %d, %d, %v) = %d, want %d", tt.index, tt.lenA, tt.lenB, tt.mode, got, tt.want)
		}

		back, err := IndexFromLag(got, tt.lenA, tt.lenB, tt.mode)
		if err != nil {
			t.Fatalf("IndexFromLag(%d) failed: %v", got, err)
		}
		if back != tt.index {
			t.Errorf("IndexFromLag(%d) = %d, want %d", got, back, tt.index)
		}
	}
}

func TestLagIndexErrors(t *testing.T) {
	if _, err := LagFromIndex(5, 3, 3, ModeFull); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("index past end: expected ErrLengthMismatch, got %v", err)
	}
	if _, err := LagFromIndex(-1, 3, 3, ModeFull); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("negative index: expected ErrLengthMismatch, got %v", err)
	}
	if _, err := IndexFromLag(-2, 4, 2, ModeValid); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("lag outside valid window: expected ErrLengthMismatch, got %v", err)
	}
	if _, err := LagFromIndex(0, 0, 3, ModeFull); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("empty input: expected ErrInvalidMode, got %v", err)
	}
}

func TestPeakRecoversDelay(t *testing.T) {
	b := testutil.DeterministicNoise(90, 1, 48)

	for _, delay := range []int{0, 3, 11} {
		a := testutil.Delay(b, delay, 80)

		for _, mode := range allModes {
			e, err := New64(len(a), len(b), mode)
			if err != nil {
				t.Fatalf("New64 failed: %v", err)
			}
			corr, err := e.Correlate(a, b)
			if err != nil {
				t.Fatalf("Correlate failed: %v", err)
			}

			idx, _ := FindPeak(corr)
			lag, err := LagFromIndex(idx, len(a), len(b), mode)
			if err != nil {
				t.Fatalf("LagFromIndex failed: %v", err)
			}
			if lag != delay {
				t.Errorf("delay %d, %v: detected lag %d", delay, mode, lag)
			}
		}
	}
}
