package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xcorr/dsp/xcorr"
)

// ValidBackends lists the FFT backends selectable with --backend.
var ValidBackends = []string{"algofft", "fast", "gonum"}

// SignalOptions holds the engine flags shared by correlate and peak.
type SignalOptions struct {
	Mode      string
	Precision int // 64 or 32
	Backend   string
	Normalize bool
}

func addSignalFlags(cmd *cobra.Command, opts *SignalOptions) {
	cmd.Flags().StringVar(&opts.Mode, "mode", "full", "output mode (full|same|valid)")
	cmd.Flags().IntVar(&opts.Precision, "precision", 64, "sample precision in bits (64|32)")
	cmd.Flags().StringVar(&opts.Backend, "backend", "algofft", "FFT backend (algofft|fast|gonum)")
	cmd.Flags().BoolVar(&opts.Normalize, "normalize", false, "divide by the product of the signal norms")
}

// CorrelationResult is the output of the correlate command.
type CorrelationResult struct {
	Mode      string    `json:"mode" yaml:"mode"`
	Precision int       `json:"precision" yaml:"precision"`
	Backend   string    `json:"backend" yaml:"backend"`
	LenA      int       `json:"len_a" yaml:"len_a"`
	LenB      int       `json:"len_b" yaml:"len_b"`
	FFTSize   int       `json:"fft_size" yaml:"fft_size"`
	FirstLag  int       `json:"first_lag" yaml:"first_lag"`
	Values    []float64 `json:"values" yaml:"values"`
}

func (r *CorrelationResult) writeText(w io.Writer, _ int) error {
	if _, err := fmt.Fprintf(w, "# mode=%s precision=%d backend=%s len_a=%d len_b=%d fft_size=%d\n",
		r.Mode, r.Precision, r.Backend, r.LenA, r.LenB, r.FFTSize); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "lag\tvalue"); err != nil {
		return err
	}
	for i, v := range r.Values {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", r.FirstLag+i, formatValue(v)); err != nil {
			return err
		}
	}
	return nil
}

// NewCorrelateCommand creates the correlate command.
func NewCorrelateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SignalOptions{}

	cmd := &cobra.Command{
		Use:   "correlate <a-file> <b-file>",
		Short: "Print the cross-correlation of two signals",
		Long: `Print the cross-correlation of signal a against signal b.

Each output value is labelled with its lag. A positive lag means a is
delayed relative to b.`,
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCorrelate(rootOpts, opts, args[0], args[1], cmd)
		},
	}
	addSignalFlags(cmd, opts)

	return cmd
}

func runCorrelate(rootOpts *RootOptions, opts *SignalOptions, aPath, bPath string, cmd *cobra.Command) error {
	logger := rootOpts.Logger(cmd.ErrOrStderr())

	a, b, err := loadPair(aPath, bPath, cmd.InOrStdin(), logger)
	if err != nil {
		return err
	}

	result, err := correlate(a, b, opts, logger)
	if err != nil {
		return err
	}
	roundAll(result.Values, rootOpts.Digits)

	formatter := &OutputFormatter{Format: rootOpts.Format, Digits: rootOpts.Digits, Writer: cmd.OutOrStdout()}
	return formatter.Write(result)
}

func loadPair(aPath, bPath string, stdin io.Reader, logger *slog.Logger) (a, b []float64, err error) {
	if aPath == "-" && bPath == "-" {
		return nil, nil, NewExitError(ExitUsage, "only one signal can be read from stdin")
	}

	a, err = LoadSignal(aPath, stdin)
	if err != nil {
		return nil, nil, WrapExitError(ExitUsage, fmt.Sprintf("failed to load %s", aPath), err)
	}
	logger.Debug("loaded signal", "path", aPath, "samples", len(a))

	b, err = LoadSignal(bPath, stdin)
	if err != nil {
		return nil, nil, WrapExitError(ExitUsage, fmt.Sprintf("failed to load %s", bPath), err)
	}
	logger.Debug("loaded signal", "path", bPath, "samples", len(b))

	return a, b, nil
}

// correlate runs a and b through an engine configured by opts.
func correlate(a, b []float64, opts *SignalOptions, logger *slog.Logger) (*CorrelationResult, error) {
	mode, err := xcorr.ParseMode(opts.Mode)
	if err != nil {
		return nil, WrapExitError(ExitUsage, "invalid --mode", err)
	}
	if !slices.Contains(ValidBackends, opts.Backend) {
		return nil, NewExitError(ExitUsage, fmt.Sprintf("invalid backend %q: must be one of %v", opts.Backend, ValidBackends))
	}

	var (
		values  []float64
		fftSize int
	)
	switch opts.Precision {
	case 64:
		values, fftSize, err = correlate64(a, b, mode, opts)
	case 32:
		values, fftSize, err = correlate32(a, b, mode, opts)
	default:
		return nil, NewExitError(ExitUsage, fmt.Sprintf("invalid precision %d: must be 64 or 32", opts.Precision))
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("correlated", "mode", mode, "backend", opts.Backend, "precision", opts.Precision, "fft_size", fftSize)

	if opts.Normalize {
		xcorr.Normalize(values, a, b)
	}

	offset, _, err := mode.Window(len(a), len(b))
	if err != nil {
		return nil, WrapExitError(ExitFailure, "correlation failed", err)
	}

	return &CorrelationResult{
		Mode:      mode.String(),
		Precision: opts.Precision,
		Backend:   opts.Backend,
		LenA:      len(a),
		LenB:      len(b),
		FFTSize:   fftSize,
		FirstLag:  offset - (len(b) - 1),
		Values:    values,
	}, nil
}

func correlate64(a, b []float64, mode xcorr.Mode, opts *SignalOptions) ([]float64, int, error) {
	var factory xcorr.TransformFactory[complex128]
	switch opts.Backend {
	case "fast":
		factory = xcorr.FastFactory[complex128]()
	case "gonum":
		factory = xcorr.GonumFactory()
	}

	e, err := xcorr.New64(len(a), len(b), mode, xcorr.WithFactory(factory))
	if err != nil {
		return nil, 0, WrapExitError(ExitFailure, "failed to create engine", err)
	}
	out, err := e.Correlate(a, b)
	if err != nil {
		return nil, 0, WrapExitError(ExitFailure, "correlation failed", err)
	}
	return out, e.FFTSize(), nil
}

func correlate32(a, b []float64, mode xcorr.Mode, opts *SignalOptions) ([]float64, int, error) {
	var factory xcorr.TransformFactory[complex64]
	switch opts.Backend {
	case "fast":
		factory = xcorr.FastFactory[complex64]()
	case "gonum":
		return nil, 0, NewExitError(ExitFailure, "the gonum backend only supports --precision 64")
	}

	e, err := xcorr.New32(len(a), len(b), mode, xcorr.WithFactory(factory))
	if err != nil {
		return nil, 0, WrapExitError(ExitFailure, "failed to create engine", err)
	}
	out, err := e.Correlate(toFloat32(a), toFloat32(b))
	if err != nil {
		return nil, 0, WrapExitError(ExitFailure, "correlation failed", err)
	}

	values := make([]float64, len(out))
	for i, v := range out {
		values[i] = float64(v)
	}
	return values, e.FFTSize(), nil
}

func toFloat32(x []float64) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(v)
	}
	return out
}
