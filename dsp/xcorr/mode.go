package xcorr

import (
	"fmt"
	"strings"
)

// Mode specifies which part of the linear cross-correlation is returned.
type Mode int

const (
	// ModeFull returns every lag where the signals overlap at all,
	// with length lenA+lenB-1.
	ModeFull Mode = iota

	// ModeSame returns max(lenA, lenB) samples centered on the full result.
	ModeSame

	// ModeValid returns only the lags where the shorter signal lies entirely
	// inside the longer one, with length max(lenA, lenB) - min(lenA, lenB) + 1.
	ModeValid
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m == ModeFull || m == ModeSame || m == ModeValid
}

// ParseMode converts a mode name ("full", "same", "valid") to a Mode.
// Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return ModeFull, nil
	case "same":
		return ModeSame, nil
	case "valid":
		return ModeValid, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidMode, s)
	}
}

// OutputLen returns the number of samples produced by correlating signals
// of length lenA and lenB in this mode.
func (m Mode) OutputLen(lenA, lenB int) (int, error) {
	_, length, err := m.Window(lenA, lenB)
	return length, err
}

// Window returns the window of the full linear result that this mode keeps.
// offset indexes the full result, which is ordered from lag -(lenB-1) to
// lag lenA-1.
//
// Same mode centers on floor((min-1)/2); for an even shorter length the
// window leans toward negative lags.
func (m Mode) Window(lenA, lenB int) (offset, length int, err error) {
	if lenA <= 0 || lenB <= 0 {
		return 0, 0, fmt.Errorf("%w: %w: lengths %d and %d", ErrInvalidMode, ErrEmptyInput, lenA, lenB)
	}

	longer, shorter := lenA, lenB
	if shorter > longer {
		longer, shorter = shorter, longer
	}

	switch m {
	case ModeFull:
		return 0, lenA + lenB - 1, nil
	case ModeSame:
		return (shorter - 1) / 2, longer, nil
	case ModeValid:
		return shorter - 1, longer - shorter + 1, nil
	default:
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidMode, m)
	}
}

// linearLen is the length of the full correlation and the minimum FFT size.
func linearLen(lenA, lenB int) int {
	return lenA + lenB - 1
}

// NextPowerOf2 returns the smallest power of 2 >= n.
func NextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
