package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xcorr/dsp/xcorr"
)

// ModeWindow describes where one mode's output sits in the full result.
type ModeWindow struct {
	Mode     string `json:"mode" yaml:"mode"`
	Length   int    `json:"length" yaml:"length"`
	Offset   int    `json:"offset" yaml:"offset"`
	FirstLag int    `json:"first_lag" yaml:"first_lag"`
	LastLag  int    `json:"last_lag" yaml:"last_lag"`
}

// ModesResult is the output of the modes command.
type ModesResult struct {
	LenA    int          `json:"len_a" yaml:"len_a"`
	LenB    int          `json:"len_b" yaml:"len_b"`
	FFTSize int          `json:"fft_size" yaml:"fft_size"`
	Modes   []ModeWindow `json:"modes" yaml:"modes"`
}

func (r *ModesResult) writeText(w io.Writer, _ int) error {
	if _, err := fmt.Fprintf(w, "# len_a=%d len_b=%d fft_size=%d\n", r.LenA, r.LenB, r.FFTSize); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "mode\tlength\toffset\tfirst_lag\tlast_lag"); err != nil {
		return err
	}
	for _, m := range r.Modes {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", m.Mode, m.Length, m.Offset, m.FirstLag, m.LastLag); err != nil {
			return err
		}
	}
	return nil
}

// NewModesCommand creates the modes command.
func NewModesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "modes <a-len> <b-len>",
		Short:         "Show output lengths and lag ranges of every mode",
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModes(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runModes(rootOpts *RootOptions, aArg, bArg string, cmd *cobra.Command) error {
	lenA, err := parseLength(aArg)
	if err != nil {
		return err
	}
	lenB, err := parseLength(bArg)
	if err != nil {
		return err
	}

	windows, err := modeWindows(lenA, lenB)
	if err != nil {
		return WrapExitError(ExitUsage, "invalid lengths", err)
	}

	result := &ModesResult{
		LenA:    lenA,
		LenB:    lenB,
		FFTSize: xcorr.AutoFFTSize(lenA, lenB),
		Modes:   windows,
	}

	formatter := &OutputFormatter{Format: rootOpts.Format, Digits: rootOpts.Digits, Writer: cmd.OutOrStdout()}
	return formatter.Write(result)
}

func parseLength(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, NewExitError(ExitUsage, fmt.Sprintf("invalid length %q: must be a positive integer", s))
	}
	return n, nil
}

func modeWindows(lenA, lenB int) ([]ModeWindow, error) {
	modes := []xcorr.Mode{xcorr.ModeFull, xcorr.ModeSame, xcorr.ModeValid}
	windows := make([]ModeWindow, 0, len(modes))

	for _, mode := range modes {
		offset, length, err := mode.Window(lenA, lenB)
		if err != nil {
			return nil, err
		}
		first, err := xcorr.LagFromIndex(0, lenA, lenB, mode)
		if err != nil {
			return nil, err
		}
		windows = append(windows, ModeWindow{
			Mode:     mode.String(),
			Length:   length,
			Offset:   offset,
			FirstLag: first,
			LastLag:  first + length - 1,
		})
	}
	return windows, nil
}
