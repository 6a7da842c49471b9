package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xcorr/dsp/xcorr"
)

// PeakResult is the output of the peak command.
type PeakResult struct {
	Mode      string  `json:"mode" yaml:"mode"`
	Lag       int     `json:"lag" yaml:"lag"`
	Index     int     `json:"index" yaml:"index"`
	Value     float64 `json:"value" yaml:"value"`
	Magnitude bool    `json:"magnitude" yaml:"magnitude"`
}

func (r *PeakResult) writeText(w io.Writer, _ int) error {
	_, err := fmt.Fprintf(w, "lag %d (index %d, mode %s): %s\n", r.Lag, r.Index, r.Mode, formatValue(r.Value))
	return err
}

// NewPeakCommand creates the peak command.
func NewPeakCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SignalOptions{}
	var magnitude bool

	cmd := &cobra.Command{
		Use:   "peak <a-file> <b-file>",
		Short: "Print the lag with the strongest correlation",
		Long: `Correlate two signals and print the lag of the maximum value.

With --abs the largest magnitude wins, which also finds
anti-correlated alignments.`,
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeak(rootOpts, opts, magnitude, args[0], args[1], cmd)
		},
	}
	addSignalFlags(cmd, opts)
	cmd.Flags().BoolVar(&magnitude, "abs", false, "pick the largest magnitude instead of the largest value")

	return cmd
}

func runPeak(rootOpts *RootOptions, opts *SignalOptions, magnitude bool, aPath, bPath string, cmd *cobra.Command) error {
	logger := rootOpts.Logger(cmd.ErrOrStderr())

	a, b, err := loadPair(aPath, bPath, cmd.InOrStdin(), logger)
	if err != nil {
		return err
	}

	corr, err := correlate(a, b, opts, logger)
	if err != nil {
		return err
	}

	var (
		index int
		value float64
	)
	if magnitude {
		index, value = xcorr.FindPeakAbs(corr.Values)
	} else {
		index, value = xcorr.FindPeak(corr.Values)
	}

	result := &PeakResult{
		Mode:      corr.Mode,
		Lag:       corr.FirstLag + index,
		Index:     index,
		Value:     roundTo(value, rootOpts.Digits),
		Magnitude: magnitude,
	}
	logger.Debug("peak", "lag", result.Lag, "index", index)

	formatter := &OutputFormatter{Format: rootOpts.Format, Digits: rootOpts.Digits, Writer: cmd.OutOrStdout()}
	return formatter.Write(result)
}
