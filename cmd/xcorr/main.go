// Command xcorr cross-correlates signal files from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-xcorr/cmd/xcorr/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
