package cli

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Process exit statuses. Usage covers anything the caller can fix by
// changing the command line or the signal files.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError carries the status main should exit with alongside the message
// printed to stderr. Err, when set, is appended after the message.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError reports a failure that has no underlying cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches code and a short context message to err.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps err to a process status: 0 for nil, the code of the first
// ExitError in the chain, and ExitFailure for anything else.
func GetExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	default:
		return ExitFailure
	}
}

// textWriter is implemented by results with a human-readable rendering.
type textWriter interface {
	writeText(w io.Writer, digits int) error
}

// OutputFormatter renders command results in the configured format.
type OutputFormatter struct {
	Format string
	Digits int
	Writer io.Writer
}

// Write renders v. JSON and YAML encode the struct; text defers to v.
func (f *OutputFormatter) Write(v textWriter) error {
	switch f.Format {
	case "json":
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return v.writeText(f.Writer, f.Digits)
	}
}

// roundTo rounds v to digits decimal places and clears negative zero, so
// FFT round-off does not leak into printed output.
func roundTo(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}

func roundAll(values []float64, digits int) {
	for i, v := range values {
		values[i] = roundTo(v, digits)
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
