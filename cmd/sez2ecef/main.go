// cmd/sez2ecef/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yackko/sez2ecef/internal/config"
	"github.com/yackko/sez2ecef/internal/geodesy"
	"github.com/yackko/sez2ecef/internal/input"
	"github.com/yackko/sez2ecef/internal/report"
	"github.com/yackko/sez2ecef/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newRootCmd builds the sez2ecef command. Flag parsing is disabled so that
// negative coordinates such as -104.8 reach RunE as positional values.
func newRootCmd(program string) *cobra.Command {
	return &cobra.Command{
		Use:   program + " o_lat_deg o_lon_deg o_hae_km s_km e_km z_km",
		Short: "Convert an SEZ vector at an observatory into ECEF coordinates.",
		Long: `Converts a topocentric South-East-Zenith vector, observed from a location on the
reference ellipsoid, into an Earth-Centered-Earth-Fixed position.

Prints the ECEF x, y and z components in km, one per line.

Examples:
  sez2ecef 0 0 0 0 0 1
  sez2ecef 38.8339 -104.8214 1.9 100 -250 500`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			obs, sez, err := input.Parse(args)
			if errors.Is(err, input.ErrUsage) {
				fmt.Fprintln(cmd.OutOrStdout(), config.Usage(program))
				return nil
			}
			if err != nil {
				return err
			}
			return report.WriteECEF(cmd.OutOrStdout(), geodesy.SEZToECEF(obs, sez))
		},
	}
}

// execute runs cmd with args. cobra routes a leading __complete or
// __completeNoDesc to its hidden completion command, so those go straight
// to RunE as positional values.
func execute(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		return cmd.RunE(cmd, args)
	}
	cmd.SetArgs(args)
	return cmd.Execute()
}

// printError writes err to w, styled when w is an interactive terminal.
func printError(w io.Writer, styled bool, err error) {
	msg := "Error: " + err.Error()
	if styled {
		msg = tui.ErrorStyle.Render(msg)
	}
	fmt.Fprintln(w, msg)
}

func programName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return config.DefaultProgramName
	}
	return filepath.Base(os.Args[0])
}

func main() {
	rootCmd := newRootCmd(programName())
	if err := execute(rootCmd, os.Args[1:]); err != nil {
		printError(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), err)
		os.Exit(1)
	}
}
