package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	Digits  int    // decimal places kept in printed values

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

const defaultDigits = 6

// NewRootCommand creates the root command for the xcorr CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "xcorr",
		Short: "FFT-based cross-correlation of signal files",
		Long: `Cross-correlate two discrete signals using FFT-based convolution.

Signals are read from text files (numbers separated by whitespace or commas,
'#' starts a comment) or YAML files with a "samples" list.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log diagnostics to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().IntVar(&opts.Digits, "precision-digits", defaultDigits, "decimal places in printed values")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitUsage, "invalid flags", err)
	})

	cmd.AddCommand(NewCorrelateCommand(opts))
	cmd.AddCommand(NewPeakCommand(opts))
	cmd.AddCommand(NewModesCommand(opts))

	return cmd
}

func (o *RootOptions) validate() error {
	if !slices.Contains(ValidFormats, o.Format) {
		return NewExitError(ExitUsage, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}
	if o.Digits < 0 || o.Digits > 15 {
		return NewExitError(ExitUsage, fmt.Sprintf("invalid precision-digits %d: must be in [0, 15]", o.Digits))
	}
	return nil
}

// Logger returns the diagnostic logger writing to w. Debug records are
// emitted only in verbose mode.
func (o *RootOptions) Logger(w io.Writer) *slog.Logger {
	if o.logger != nil {
		return o.logger
	}

	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return o.logger
}

// exactArgs is cobra.ExactArgs reporting a usage exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return WrapExitError(ExitUsage, "invalid arguments", err)
		}
		return nil
	}
}
