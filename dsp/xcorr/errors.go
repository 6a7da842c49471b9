package xcorr

import "errors"

// Errors returned by correlation functions.
var (
	// ErrInvalidMode is returned for zero-length inputs or an unknown mode.
	ErrInvalidMode = errors.New("xcorr: invalid mode or zero-length input")

	// ErrSizeMismatch is returned when the forward and inverse transforms
	// disagree on their length, or a transform is too short for the inputs.
	ErrSizeMismatch = errors.New("xcorr: transform size mismatch")

	// ErrInsufficientSize is returned when the FFT size is smaller than
	// lenA+lenB-1. Errors wrapping it also match ErrSizeMismatch.
	ErrInsufficientSize = errors.New("xcorr: FFT size too small for linear correlation")

	// ErrLengthMismatch is returned when call-time buffers do not match the
	// lengths the engine was built for.
	ErrLengthMismatch = errors.New("xcorr: buffer length mismatch")

	// ErrBackend wraps failures reported by a transform backend.
	ErrBackend = errors.New("xcorr: transform backend failed")

	// ErrInaccuratePlan is returned when a freshly built plan does not
	// reproduce known transforms. Errors wrapping it also match ErrBackend.
	ErrInaccuratePlan = errors.New("xcorr: FFT plan failed self-check")

	// ErrNilTransform is returned when a nil transform is supplied.
	ErrNilTransform = errors.New("xcorr: nil transform")

	// ErrEmptyInput is returned by one-shot helpers given an empty signal.
	ErrEmptyInput = errors.New("xcorr: empty input")
)
